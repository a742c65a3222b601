package rest

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/conquerblocks/nft-marketplace/internal/api/shared/errors"
	"github.com/conquerblocks/nft-marketplace/internal/logger"
)

// respondError maps an executor error onto the error envelope.
// Internal errors are logged since their text stays out of the response.
func respondError(c *gin.Context, err error, message string) {
	apiErr := apierrors.FromError(err)
	if apiErr.Code == apierrors.ErrCodeInternalError {
		logger.ErrorCtx(c.Request.Context(), err, zap.String("message", message), zap.String("path", c.Request.URL.Path))
		apiErr = apierrors.NewInternalError(message)
	}
	c.JSON(apiErr.StatusCode(), apiErr)
}

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	apiErr := apierrors.NewBadRequestError(message, details...)
	c.JSON(apiErr.StatusCode(), apiErr)
}

// respondNotFound responds with a not found error
func respondNotFound(c *gin.Context, message string, details ...string) {
	apiErr := apierrors.NewNotFoundError(message, details...)
	c.JSON(apiErr.StatusCode(), apiErr)
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	apiErr := apierrors.NewValidationError(message)
	c.JSON(apiErr.StatusCode(), apiErr)
}

// respondUnauthorized responds with an unauthorized error
func respondUnauthorized(c *gin.Context, message string) {
	apiErr := apierrors.NewUnauthorizedError(message)
	c.JSON(apiErr.StatusCode(), apiErr)
}
