package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/conquerblocks/nft-marketplace/internal/api/shared/errors"
	"github.com/conquerblocks/nft-marketplace/internal/auth"
	"github.com/conquerblocks/nft-marketplace/internal/logger"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	// AUTH_SUBJECT_KEY holds the wallet address of the session
	AUTH_SUBJECT_KEY contextKey = "auth_subject"
)

var (
	errMissingAuthHeader = errors.New("missing Authorization header")
	errMalformedHeader   = errors.New("invalid Authorization header format")
)

// Authenticate resolves the wallet of a "Bearer <session token>" header
func Authenticate(authHeader string, service auth.Service) (common.Address, error) {
	if authHeader == "" {
		return common.Address{}, errMissingAuthHeader
	}

	scheme, token, found := strings.Cut(authHeader, " ")
	if !found {
		return common.Address{}, errMalformedHeader
	}
	if scheme = strings.ToLower(scheme); scheme != "bearer" {
		return common.Address{}, fmt.Errorf("unsupported authorization type: %s", scheme)
	}

	return service.Verify(strings.TrimSpace(token))
}

// Auth returns a gin middleware requiring a wallet session
// Requests that pass carry the wallet in the gin context and in their log lines
func Auth(service auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		wallet, err := Authenticate(c.GetHeader("Authorization"), service)
		if err != nil {
			logger.WarnCtx(ctx, "Authentication failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			apiErr := apierrors.NewUnauthorizedError("Authentication failed", err.Error())
			c.AbortWithStatusJSON(apiErr.StatusCode(), apiErr)
			return
		}

		c.Set(AUTH_SUBJECT_KEY, wallet)
		c.Request = c.Request.WithContext(logger.WithFields(ctx, zap.String("wallet", wallet.Hex())))

		c.Next()
	}
}

// GetAuthSubject returns the wallet address set by Auth
func GetAuthSubject(c *gin.Context) (common.Address, bool) {
	value, ok := c.Get(AUTH_SUBJECT_KEY)
	if !ok {
		return common.Address{}, false
	}
	address, ok := value.(common.Address)
	return address, ok
}
