package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/harutrip/harutrip/backend/go-services/handlers"
	"github.com/harutrip/harutrip/backend/go-services/internal/cache"
	"github.com/harutrip/harutrip/backend/go-services/internal/config"
	contentrepo "github.com/harutrip/harutrip/backend/go-services/internal/content/repository"
	contentsvc "github.com/harutrip/harutrip/backend/go-services/internal/content/service"
	"github.com/harutrip/harutrip/backend/go-services/internal/database"
	"github.com/harutrip/harutrip/backend/go-services/internal/fortune"
	"github.com/harutrip/harutrip/backend/go-services/internal/shopping"
	"github.com/harutrip/harutrip/backend/go-services/internal/storage"
	"github.com/harutrip/harutrip/backend/go-services/internal/weather"
	"github.com/harutrip/harutrip/backend/go-services/pkg/logger"
	"github.com/harutrip/harutrip/backend/go-services/pkg/metrics"
	"github.com/harutrip/harutrip/backend/go-services/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// logging first (LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: env=%s mongo=%v redis=%v weather_key_set=%v",
		cfg.Server.Environment, cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.Weather.APIKey != "")

	dev := !cfg.IsProduction()
	if !dev {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Lightweight CORS middleware for dev/test: set common headers and respond to OPTIONS.
	// (Keep this intentionally simple — production should use a stricter policy.)
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})

	// Connect to Redis early so the cache and rate limiter can use it
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v, caching disabled", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		} else {
			logger.Infof("connected to Redis at %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}
	responseCache := cache.New(redisClient, "harutrip:")

	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	// Connect to MongoDB with retry/backoff to tolerate startup races.
	// Falls back to memory-backed repositories when no store is reachable
	// (useful for local development).
	ctx := context.Background()
	var mongoClient *mongo.Client
	if cfg.MongoDB.URI != "" {
		const maxAttempts = 5
		backoff := time.Second
		var errConn error
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			mongoClient, errConn = database.SharedClient(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
			if errConn == nil {
				break
			}
			logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, errConn)
			if attempt < maxAttempts {
				time.Sleep(backoff)
				backoff *= 2
			}
		}
		if errConn != nil {
			logger.Warnf("could not connect to MongoDB after %d attempts: %v", maxAttempts, errConn)
			mongoClient = nil
		}
	}

	var contentRepo contentrepo.Repository
	var productRepo shopping.Repository
	var fortuneRepo fortune.Repository
	if mongoClient != nil {
		defer func() { _ = mongoClient.Disconnect(ctx) }()
		db := mongoClient.Database(cfg.MongoDB.Database)
		contentRepo = contentrepo.NewMongoRepo(db.Collection("prepared_contents"))
		productRepo = shopping.NewMongoRepo(db.Collection("products"))
		fortuneRepo = fortune.NewMongoRepo(db.Collection("fortunes"))
	} else {
		logger.Warn("running with memory-backed repositories; data will not persist")
		contentRepo = contentrepo.NewMemoryRepo()
		productRepo = shopping.NewMemoryRepo()
		fortuneRepo = fortune.NewMemoryRepo()
	}

	contentService := contentsvc.New(contentRepo)
	fortuneService := fortune.NewService(fortuneRepo, responseCache)
	weatherClient := weather.NewClient(cfg.Weather.APIKey, cfg.Weather.BaseURL, cfg.Weather.Timeout, responseCache, cfg.Weather.CacheTTL)

	var images *storage.ImageStore
	if cfg.MinIO.Endpoint != "" {
		images, err = storage.NewImageStore(&storage.MinIOConfig{
			Endpoint:  cfg.MinIO.Endpoint,
			AccessKey: cfg.MinIO.AccessKey,
			SecretKey: cfg.MinIO.SecretKey,
			Bucket:    cfg.MinIO.Bucket,
			UseSSL:    cfg.MinIO.UseSSL,
			PublicURL: cfg.MinIO.PublicURL,
		})
		if err != nil {
			logger.Warnf("image storage unavailable: %v", err)
			images = nil
		}
	}

	handlers.NewContentHandler(contentService, dev).Register(r)
	handlers.NewShoppingHandler(productRepo, dev).Register(r)
	handlers.NewHomeHandler(fortuneService, weatherClient, dev).Register(r)
	handlers.NewWeatherHandler(weatherClient, dev).Register(r)
	if dev {
		handlers.NewAdminHandler(contentService, images, dev).Register(r)
	}
	handlers.RegisterSwagger(r)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness: 200 only when the document store is reachable
	r.GET("/ready", func(c *gin.Context) {
		deps := map[string]bool{
			// memory-backed mode (no URI configured) counts as ready
			"mongo": mongoClient != nil || cfg.MongoDB.URI == "",
			"redis": redisClient != nil || cfg.Redis.Host == "",
		}
		if mongoClient != nil {
			pingCtx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			deps["mongo"] = mongoClient.Ping(pingCtx, nil) == nil
		}
		status := http.StatusOK
		state := "ready"
		if !deps["mongo"] {
			status = http.StatusServiceUnavailable
			state = "not_ready"
		}
		c.JSON(status, gin.H{"status": state, "deps": deps, "uptime": time.Since(startTime).String()})
	})

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("starting harutrip API on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
