package main

import (
	"log"
	"net/http"

	"quickbite-api/config"
	"quickbite-api/logger"
	"quickbite-api/middleware"
	"quickbite-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer zl.Sync()

	gin.SetMode(cfg.GinMode)

	if err := config.InitDB(cfg.DBPath); err != nil {
		zl.Fatal("failed to connect database", zap.Error(err))
	}
	zl.Info("database connected and migrated", zap.String("path", cfg.DBPath))

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(zl), middleware.Metrics())

	// CORS for the dashboard frontends
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "QuickBite Marketplace API",
			"version": "1.0.0",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes.SetupRoutes(r)

	zl.Info("server listening", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		zl.Fatal("server exited", zap.Error(err))
	}
}
