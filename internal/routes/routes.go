package routes

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/maisonbelle/salon-api/internal/audit"
	"github.com/maisonbelle/salon-api/internal/cache"
	"github.com/maisonbelle/salon-api/internal/config"
	"github.com/maisonbelle/salon-api/internal/handlers"
	"github.com/maisonbelle/salon-api/internal/middleware"
	"github.com/maisonbelle/salon-api/internal/storage"
	"github.com/maisonbelle/salon-api/internal/store"
)

func RegisterRoutes(r *gin.Engine, st *store.Store, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	responseCache := cache.New(cfg.RedisURL)

	auditLogger := audit.New(st)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	fileStorage, err := storage.New(cfg)
	if err != nil {
		// the rest of the API works without uploads
		log.Printf("storage disabled: %v", err)
	}

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(st, cfg)
	blogHandler := handlers.NewBlogHandler(st, responseCache, auditDispatcher, fileStorage)
	formsHandler := handlers.NewFormsHandler(st, cfg, auditDispatcher)
	analyticsHandler := handlers.NewAnalyticsHandler(st)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.Identity(cfg, st))
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.GET("/auth/me", authHandler.Me)
		api.POST("/auth/logout", authHandler.Logout)
		api.POST("/auth/login", authHandler.Login)
		api.GET("/oauth/callback", authHandler.Callback)

		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/blog", blogHandler.List)
		api.GET("/blog/:slug", blogHandler.GetBySlug)
		api.POST("/forms", formsHandler.Submit)
		api.POST("/analytics/track", analyticsHandler.TrackView)

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/")
		admin.Use(middleware.RequireAdmin())
		{
			admin.POST("/blog", blogHandler.Create)
			admin.PATCH("/blog/:id", blogHandler.Update)
			admin.DELETE("/blog/:id", blogHandler.Delete)

			admin.GET("/forms", formsHandler.List)
			admin.PATCH("/forms/:id/status", formsHandler.UpdateStatus)

			admin.GET("/analytics/dashboard", analyticsHandler.Dashboard)

			if fileStorage != nil {
				uploadHandler := handlers.NewUploadHandler(fileStorage)
				admin.POST("/upload", uploadHandler.Upload)
			}
		}
	}
}
