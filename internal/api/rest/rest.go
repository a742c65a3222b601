package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/conquerblocks/nft-marketplace/internal/api/middleware"
	"github.com/conquerblocks/nft-marketplace/internal/auth"
	"github.com/conquerblocks/nft-marketplace/internal/ratelimit"
)

// SetupRoutes configures all REST API routes.
// Writes need a wallet session and are rate limited per wallet.
func SetupRoutes(router *gin.Engine, handler Handler, authService auth.Service, limiter ratelimit.Limiter) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	write := []gin.HandlerFunc{middleware.Auth(authService), middleware.RateLimit(limiter)}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Wallet sessions
		v1.POST("/auth/nonce", middleware.RateLimit(limiter), handler.CreateNonce)
		v1.POST("/auth/login", middleware.RateLimit(limiter), handler.Login)

		// Deployment artifacts
		v1.GET("/contracts", handler.GetContracts)

		// Home view
		v1.GET("/items", handler.ListItems)
		v1.GET("/items/:id", handler.GetItem)
		v1.GET("/items/:id/total-price", handler.GetTotalPrice)
		v1.POST("/items", append(write, handler.CreateItem)...)
		v1.POST("/items/:id/purchase", append(write, handler.PurchaseItem)...)

		// Mint view
		v1.POST("/uploads", append(write, handler.Upload)...)
		v1.POST("/tokens", append(write, handler.MintToken)...)
		v1.POST("/mint", append(write, handler.MintAndList)...)
		v1.GET("/tokens/:id", handler.GetToken)
		v1.POST("/tokens/approval-for-all", append(write, handler.SetApprovalForAll)...)

		// My listed items and my purchases views
		v1.GET("/accounts/:address", handler.GetAccount)
		v1.GET("/accounts/:address/listed-items", handler.ListListedItems)
		v1.GET("/accounts/:address/purchases", handler.ListPurchases)

		// Event logs
		v1.GET("/events", handler.ListEvents)
	}
}
