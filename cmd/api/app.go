package main

import (
	"net/http"
	"os"

	"house-hunter-server/internal/handlers"
	"house-hunter-server/internal/middleware"
	"house-hunter-server/internal/repositories"
	"house-hunter-server/internal/services"
	"house-hunter-server/internal/validators"
	"house-hunter-server/pkg/cache"
	"house-hunter-server/pkg/config"
	"house-hunter-server/pkg/database"
	"house-hunter-server/pkg/logger"
	"house-hunter-server/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/time/rate"
)

// App owns the connection pools and wires every layer together; nothing
// below it reaches for ambient global state.
type App struct {
	Config         *config.Config
	Router         *gin.Engine
	MongoClient    *mongo.Client
	DB             *mongo.Database
	RedisClient    *redis.Client
	UserHandler    *handlers.UserHandler
	HouseHandler   *handlers.HouseHandler
	BookingHandler *handlers.BookingHandler
	RateLimiter    *middleware.RateLimiter
	Server         *http.Server
}

// Create and initialize a new App instance
func NewApp(cfg *config.Config) *App {
	app := &App{Config: cfg}

	// Initialize infrastructure
	app.initializeDatabase()
	app.initializeCache()
	app.initializeMetrics()
	app.initializeRateLimiter()

	// Initialize business logic
	app.initializeDependencies()

	// Initialize web layer
	app.initializeRouter()

	return app
}

// initialize the database connection
func (a *App) initializeDatabase() {
	client, db, err := database.Connect(a.Config)
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize database: %v", err)
		os.Exit(1)
	}
	a.MongoClient = client
	a.DB = db

	if err := database.EnsureIndexes(db); err != nil {
		logger.GlobalLogger.Errorf("Failed to create indexes: %v", err)
	}
}

// initialize the Redis cache
func (a *App) initializeCache() {
	client, err := cache.Connect(a.Config)
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize Redis: %v", err)
		os.Exit(1)
	}
	a.RedisClient = client
}

// initialize Prometheus metrics
func (a *App) initializeMetrics() {
	metrics.Init()
}

// initialize the rate limiter
func (a *App) initializeRateLimiter() {
	a.RateLimiter = middleware.NewRateLimiter(rate.Limit(100/60.0), 10)
	go a.RateLimiter.Cleanup()
}

// initialize all dependencies
func (a *App) initializeDependencies() {
	// repositories
	userRepo := repositories.NewUserRepository(a.DB)
	houseRepo := repositories.NewHouseRepository(a.DB)
	bookingRepo := repositories.NewBookingRepository(a.DB)
	houseCache := repositories.NewHouseCache(a.RedisClient)

	// validators
	userValidator := validators.NewUserValidator()
	houseValidator := validators.NewHouseValidator()

	// services
	userService := services.NewUserService(userRepo, userValidator, a.Config.JWT.Secret)
	houseService := services.NewHouseService(houseRepo, houseCache, houseValidator)
	bookingService := services.NewBookingService(bookingRepo)

	// handlers
	a.UserHandler = handlers.NewUserHandler(userService, a.Config)
	a.HouseHandler = handlers.NewHouseHandler(houseService)
	a.BookingHandler = handlers.NewBookingHandler(bookingService)
}

// set up the Gin router with middleware and routes
func (a *App) initializeRouter() {
	a.Router = gin.New()
	a.setupMiddleware()
	a.setupRoutes()
}

// cleanup operations
func (a *App) cleanup() {
	database.Close(a.MongoClient)
	cache.Close(a.RedisClient)
}
