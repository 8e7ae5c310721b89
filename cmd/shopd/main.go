package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/tracykish1/T-T-Botanica-Shop/internal/catalog"
	h "github.com/tracykish1/T-T-Botanica-Shop/internal/http"
	"github.com/tracykish1/T-T-Botanica-Shop/internal/persist"
	"github.com/tracykish1/T-T-Botanica-Shop/internal/rules"
	"github.com/tracykish1/T-T-Botanica-Shop/internal/shop"
)

type Config struct {
	HTTPPort        string
	RedisAddr       string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	cfg := loadConfig()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	store := newPersistStore(cfg, log)

	svc := shop.New(context.Background(), log, rules.Default(), store, catalog.Seed())
	handler := h.NewShopHandler(svc, log)
	router := h.NewRouter(handler, cfg.RequestTimeout)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("shop starting", zap.String("port", cfg.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exited")
}

// newPersistStore prefers Redis when configured and reachable, falling
// back to in-memory persistence so the shop always starts.
func newPersistStore(cfg *Config, log *zap.Logger) persist.Store {
	if cfg.RedisAddr == "" {
		log.Info("no REDIS_ADDR set, persisting in memory only")
		return persist.NewMemoryStore()
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("redis unreachable, persisting in memory only", zap.Error(err))
		return persist.NewMemoryStore()
	}

	log.Info("persisting to redis", zap.String("addr", cfg.RedisAddr))
	return persist.NewRedisStore(client)
}
