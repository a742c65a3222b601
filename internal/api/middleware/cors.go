package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/conquerblocks/nft-marketplace/internal/api/shared/constants"
)

// SetupCORS allows the marketplace frontend, served from any origin, to call the API
// with a wallet session in the Authorization header
func SetupCORS() gin.HandlerFunc {
	config := cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", constants.HEADER_REQUEST_ID},
		ExposeHeaders:    []string{"Content-Length", "Retry-After", constants.HEADER_REQUEST_ID},
		AllowCredentials: false,
		MaxAge:           time.Hour,
	}
	return cors.New(config)
}
