package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bookwell/scheduler-api/internal/cache"
	"github.com/bookwell/scheduler-api/internal/config"
	dbpkg "github.com/bookwell/scheduler-api/internal/db"
	"github.com/bookwell/scheduler-api/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	var statusCache cache.Cache = cache.NewNoop()
	if cfg.RedisAddr != "" {
		redisCache := cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisCache.Ping(ctx); err != nil {
			log.Printf("redis unreachable, running without cache: %v", err)
		} else {
			statusCache = redisCache
		}
		cancel()
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, statusCache)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
