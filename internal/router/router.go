package router

import (
	"fmt"
	"strings"

	"github.com/scentora-shop/internal/cache"
	"github.com/scentora-shop/internal/config"
	adminhandlers "github.com/scentora-shop/internal/http/handlers/admin"
	publichandlers "github.com/scentora-shop/internal/http/handlers/public"
	"github.com/scentora-shop/internal/logger"
	"github.com/scentora-shop/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter builds the HTTP routing tree.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "sc"
	}
	checkoutRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:checkout", redisPrefix),
		WindowSeconds: cfg.Security.CheckoutRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.CheckoutRateLimit.MaxRequests,
		Message:       "too many checkout attempts",
	}
	redisClient := cache.Client()

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// Product imagery uploaded through the admin panel.
	r.Static("/uploads", "./uploads")

	apiV1 := r.Group("/api/v1")
	{
		public := apiV1.Group("/public")
		{
			public.GET("/products", publicHandler.ListProducts)
			public.GET("/products/:slug", publicHandler.GetProduct)
			public.GET("/categories", publicHandler.ListCategories)
			public.GET("/gift-tiers", publicHandler.ListGiftTiers)
			public.GET("/quiz", publicHandler.GetQuiz)
			public.POST("/quiz/match", publicHandler.MatchQuiz)
		}

		cart := apiV1.Group("/cart")
		{
			cart.GET("", publicHandler.GetCart)
			cart.POST("/items", publicHandler.AddCartItem)
			cart.PUT("/items", publicHandler.UpdateCartItem)
			cart.DELETE("/items", publicHandler.RemoveCartItem)
			cart.DELETE("", publicHandler.ClearCart)
			cart.POST("/offer-mode", publicHandler.SelectOfferMode)
			cart.POST("/gift/claim", publicHandler.ClaimGift)
			cart.DELETE("/gift/claim", publicHandler.UnclaimGift)
			cart.POST("/checkout", RateLimitMiddleware(redisClient, checkoutRule, KeyByCartToken), publicHandler.BuildCheckout)
		}

		admin := apiV1.Group("/admin")
		{
			admin.GET("/products", adminHandler.ListProducts)
			admin.POST("/products", adminHandler.CreateProduct)
			admin.PUT("/products/:id", adminHandler.UpdateProduct)
			admin.DELETE("/products/:id", adminHandler.DeleteProduct)

			admin.GET("/categories", adminHandler.ListCategories)
			admin.POST("/categories", adminHandler.CreateCategory)
			admin.PUT("/categories/:id", adminHandler.UpdateCategory)
			admin.DELETE("/categories/:id", adminHandler.DeleteCategory)

			admin.GET("/gift-tiers", adminHandler.ListGiftTiers)
			admin.POST("/gift-tiers", adminHandler.CreateGiftTier)
			admin.PUT("/gift-tiers/:id", adminHandler.UpdateGiftTier)
			admin.DELETE("/gift-tiers/:id", adminHandler.DeleteGiftTier)

			admin.GET("/settings/cart", adminHandler.GetCartSettings)
			admin.PUT("/settings/cart", adminHandler.UpdateCartSettings)

			admin.GET("/tracking-events", adminHandler.ListTrackingEvents)
		}
	}

	return r
}
