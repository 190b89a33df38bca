package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/rdyansyah/skygate/internal/adminapi"
	"github.com/rdyansyah/skygate/internal/cache"
	"github.com/rdyansyah/skygate/internal/handler"
	"github.com/rdyansyah/skygate/internal/ratelimit"
	"github.com/rdyansyah/skygate/internal/skyapi"
)

type Config struct {
	Port              string
	SkyAPIBaseURL     string
	SkyAPIKey         string
	SkyAPIHost        string
	AdminAPIBaseURL   string
	SessionCookieName string
	CacheEnabled      bool
	RedisHost         string
	RedisPort         string
	RedisTTL          time.Duration
}

func main() {
	cfg := loadConfig()
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	rateLimiter := ratelimit.NewEndpointLimiterWithDefaults()
	rateLimiter.SetEndpointLimit("/searchFlights", 3, 6)
	rateLimiter.SetEndpointLimit("/getFlightDetails", 3, 6)

	skyClient := skyapi.NewClient(skyapi.Config{
		BaseURL: cfg.SkyAPIBaseURL,
		APIKey:  cfg.SkyAPIKey,
		APIHost: cfg.SkyAPIHost,
		Limiter: rateLimiter,
	})

	var responseCache cache.Cache
	if cfg.CacheEnabled {
		redisCache, err := cache.NewRedisCache(cache.RedisConfig{
			Host: cfg.RedisHost,
			Port: cfg.RedisPort,
			TTL:  cfg.RedisTTL,
		})
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		responseCache = redisCache
		log.Printf("Redis cache enabled (host: %s:%s, TTL: %v)", cfg.RedisHost, cfg.RedisPort, cfg.RedisTTL)
	} else {
		responseCache = cache.NewNoOpCache()
		log.Println("Cache disabled")
	}

	flightHandler := handler.NewFlightHandler(skyClient, responseCache)
	adminHandler := handler.NewAdminHandler(
		adminapi.NewClient(cfg.AdminAPIBaseURL, nil),
		cfg.SessionCookieName,
	)

	api := e.Group("/api/v1")
	api.GET("/airports/search", flightHandler.SearchAirports)
	api.GET("/flights/search", flightHandler.SearchFlights)
	api.GET("/flights/price-calendar", flightHandler.PriceCalendar)
	api.GET("/flights/details", flightHandler.FlightDetails)

	api.POST("/auth/login", adminHandler.Login)
	api.POST("/auth/logout", adminHandler.Logout)
	api.GET("/users/me", adminHandler.Me)
	api.GET("/roles", adminHandler.Roles)

	admin := api.Group("/admin")
	admin.GET("/users", adminHandler.ListUsers)
	admin.PUT("/users/:id", adminHandler.UpdateUser)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
	admin.POST("/users/invite", adminHandler.InviteUser)
	admin.GET("/stats", adminHandler.Stats)
	admin.GET("/site/list", adminHandler.ListSites)
	admin.POST("/site/apply-ban", adminHandler.ApplyBan)

	e.GET("/health", handler.HealthHandler)

	log.Printf("Starting flight gateway server on port %s", cfg.Port)

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func loadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	return Config{
		Port:              getEnv("PORT", "8080"),
		SkyAPIBaseURL:     getEnv("SKY_API_BASE_URL", "https://sky-scrapper.p.rapidapi.com/api/v1/flights"),
		SkyAPIKey:         getEnv("SKY_API_KEY", ""),
		SkyAPIHost:        getEnv("SKY_API_HOST", "sky-scrapper.p.rapidapi.com"),
		AdminAPIBaseURL:   getEnv("ADMIN_API_BASE_URL", "http://localhost:3000"),
		SessionCookieName: getEnv("SESSION_COOKIE_NAME", "token"),
		CacheEnabled:      getEnvBool("CACHE_ENABLED", true),
		RedisHost:         getEnv("REDIS_HOST", "localhost"),
		RedisPort:         getEnv("REDIS_PORT", "6379"),
		RedisTTL:          getEnvDuration("REDIS_TTL", 5*time.Minute),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
