package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"retire-explorer/internal/catalog"
	"retire-explorer/internal/config"
	"retire-explorer/internal/db"
	apihttp "retire-explorer/internal/http"
	"retire-explorer/internal/repository"
	"retire-explorer/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cat := catalog.Default()
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer pool.Close()

		catalogRepo := repository.NewPgCatalogRepository(pool)
		if err := catalogRepo.EnsureSchema(ctx); err != nil {
			logger.Fatal("catalog schema", zap.Error(err))
		}
		cat, err = catalog.Load(ctx, catalogRepo, cat)
		if err != nil {
			logger.Fatal("catalog load", zap.Error(err))
		}
		logger.Info("catalog loaded from database")
	}
	for _, problem := range cat.Validate() {
		logger.Warn("catalog inconsistency", zap.String("problem", problem))
	}

	var shuffler service.Shuffler
	if cfg.ShuffleCombos {
		seed := cfg.ShuffleSeed
		if seed == 0 {
			if seed, err = service.NewSeed(); err != nil {
				logger.Fatal("shuffle seed", zap.Error(err))
			}
		}
		shuffler = service.NewLockedShuffler(seed)
	}

	scoreModel := service.NewScoreModel(cat, cfg.ScoringStrict)
	composer := service.NewOutcomeComposer(scoreModel, cat)
	generator := service.NewCombinationGenerator(cat, shuffler, logger)
	explorerSvc := service.NewExplorerService(cat, scoreModel, composer, generator, logger)
	if !cfg.ScoringStrict {
		logger.Warn("lenient scoring enabled: unknown ids fall back to neutral scores")
	}

	var limiter service.RateLimiter
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			limiter = service.NewRedisRateLimiter(redisClient, time.Minute, cfg.RateLimitPerMinute)
		}
		cancel()
	}
	if limiter == nil && cfg.RateLimitPerMinute > 0 {
		limiter = service.NewMemoryRateLimiter(time.Minute, cfg.RateLimitPerMinute)
	}

	explorerHandler := apihttp.NewExplorerHandler(logger, explorerSvc)
	router := apihttp.NewRouter(logger, explorerHandler, limiter)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
