package main

import (
	"context"
	"net/http"
	"time"

	"house-hunter-server/internal/middleware"
	"house-hunter-server/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRoutes configures all routes
func (a *App) setupRoutes() {
	a.setupStaticRoutes()
	a.setupHealthCheck()
	a.setupAPIRoutes()
}

// setupStaticRoutes configures the greeting and operational endpoints
func (a *App) setupStaticRoutes() {
	a.Router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello from House Hunter Server..")
	})

	// Expose Prometheus metrics endpoint
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// setupHealthCheck configures health check endpoint
func (a *App) setupHealthCheck() {
	a.Router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := a.MongoClient.Ping(ctx, nil); err != nil {
			logger.GlobalLogger.Errorf("MongoDB ping failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "MongoDB unavailable"})
			return
		}

		if _, err := a.RedisClient.Ping(ctx).Result(); err != nil {
			logger.GlobalLogger.Errorf("Redis ping failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "Redis unavailable"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// setupAPIRoutes configures API routes
func (a *App) setupAPIRoutes() {
	api := a.Router.Group("/house-hunter/api/v1")
	{
		// Public routes
		api.POST("/register", a.UserHandler.Register)
		api.POST("/login", a.UserHandler.Login)
		api.GET("/logout", a.UserHandler.Logout)
		api.GET("/allHouses", a.HouseHandler.AllHouses)
		api.GET("/singleHouse/:id", a.HouseHandler.SingleHouse)

		// Protected routes: every mutating operation and every
		// owner/renter-scoped read runs behind the access guard
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(a.Config.JWT.Secret))
		{
			protected.GET("/myHouses/:email", a.HouseHandler.MyHouses)
			protected.GET("/myBooks/:email", a.BookingHandler.MyBooks)
			protected.POST("/addHouse", a.HouseHandler.AddHouse)
			protected.PUT("/editHouse/:id", a.HouseHandler.EditHouse)
			protected.PATCH("/updateStatus/:id", a.HouseHandler.UpdateStatus)
			protected.POST("/addBook", a.BookingHandler.AddBook)
		}
	}
}
