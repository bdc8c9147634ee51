package routes

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/tanjid017/membership-registration-backend/config"
	"github.com/tanjid017/membership-registration-backend/internal/admin"
	"github.com/tanjid017/membership-registration-backend/internal/export"
	"github.com/tanjid017/membership-registration-backend/internal/form"
	"github.com/tanjid017/membership-registration-backend/internal/pdf"
	"github.com/tanjid017/membership-registration-backend/internal/photo"
	"github.com/tanjid017/membership-registration-backend/internal/settings"
	"github.com/tanjid017/membership-registration-backend/internal/submission"
	"github.com/tanjid017/membership-registration-backend/middleware"
	"github.com/tanjid017/membership-registration-backend/utils"
)

// SetupRoutes wires every store, service and handler and mounts the HTTP
// surface on r.
func SetupRoutes(r *gin.Engine, cfg *config.Config) {
	sessionTTL := time.Duration(cfg.AdminSessionTTL) * time.Hour

	// Token store backend: Redis when configured, otherwise a file store so
	// admin sessions survive restarts.
	var tokenStore admin.TokenStore
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		tokenStore = admin.NewRedisTokenStore(client, sessionTTL)
		log.Println("✅ Admin tokens: Redis store")
	} else {
		tokenStore = admin.NewFileTokenStore(cfg.StoragePath)
		log.Println("✅ Admin tokens: file store")
	}

	schema := form.DefaultSchema()
	validator := form.NewValidator(schema)
	settingsStore := settings.NewStore(cfg.StoragePath, cfg.PublicPath)
	photoProcessor := photo.NewProcessor(cfg.StoragePath)
	generator := pdf.NewGenerator(cfg.PDFMaxConcurrent, cfg.PDFFontPath, settingsStore)

	repo := submission.NewFileRepository(cfg.StoragePath)
	submissionSvc := submission.NewService(repo, validator, generator, photoProcessor,
		func(id, name string) { utils.NotifySubmission(cfg, id, name) })
	adminSvc := admin.NewService(cfg.AdminUsername, cfg.AdminPasswordHash, sessionTTL, tokenStore)

	formHandler := form.NewHandler(schema, validator)
	submissionHandler := submission.NewHandler(submissionSvc, export.NewExporter())
	photoHandler := photo.NewHandler(photoProcessor)
	settingsHandler := settings.NewHandler(settingsStore)
	adminHandler := admin.NewHandler(adminSvc)

	// Health checks
	healthCheck := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"message":   "API is running",
			"timestamp": time.Now().Format("2006-01-02 15:04:05"),
		})
	}
	r.GET("/health", healthCheck)
	r.GET("/api/health", healthCheck)

	// Static assets: uploaded photos and the organization logo.
	r.Static("/storage/photos", cfg.StoragePath+"/photos")
	r.Static("/images", cfg.PublicPath+"/images")

	api := r.Group("/api")
	api.Use(middleware.RateLimiter())

	// Public endpoints
	api.GET("/config", formHandler.GetConfig)
	api.POST("/validate", formHandler.Validate)
	api.POST("/submit", submissionHandler.Submit)
	api.POST("/upload-photo", photoHandler.Upload)
	api.GET("/download/:id", submissionHandler.Download)
	api.GET("/settings", settingsHandler.Get)

	// Admin endpoints
	adminRoutes := api.Group("/admin")
	adminRoutes.POST("/login", middleware.LoginRateLimiter(), adminHandler.Login)

	protected := adminRoutes.Group("")
	protected.Use(middleware.AdminAuth(adminSvc))
	{
		protected.POST("/logout", adminHandler.Logout)
		protected.GET("/verify", adminHandler.Verify)

		protected.GET("/submissions", submissionHandler.List)
		protected.GET("/submissions/:id", submissionHandler.Get)
		protected.GET("/submissions/:id/pdf", submissionHandler.DownloadPDF)
		protected.GET("/search", submissionHandler.Search)
		protected.GET("/export", submissionHandler.Export)

		protected.GET("/settings", settingsHandler.Get)
		protected.POST("/settings", settingsHandler.Update)
		protected.POST("/upload-logo", settingsHandler.UploadLogo)
	}
}
