package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/tanjid017/membership-registration-backend/config"
	"github.com/tanjid017/membership-registration-backend/routes"
)

func main() {
	cfg := config.Load()

	// Create storage layout up front so the first request never races
	// directory creation.
	for _, dir := range []string{
		filepath.Join(cfg.StoragePath, "submissions"),
		filepath.Join(cfg.StoragePath, "photos"),
		filepath.Join(cfg.PublicPath, "images"),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			panic(fmt.Sprintf("❌ Failed to create directory %s: %v", dir, err))
		}
	}
	log.Println("✅ Storage directories ready")

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Admin-Token", "Content-Length", "X-Requested-With", "Cache-Control", "Pragma"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(router, cfg)

	log.Printf("🚀 Membership registration backend starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Server failed to start: %v", err)
	}
}
