package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/maisonbelle/salon-api/internal/config"
	"github.com/maisonbelle/salon-api/internal/middleware"
	"github.com/maisonbelle/salon-api/internal/routes"
	"github.com/maisonbelle/salon-api/internal/store"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	cfg := config.Load()
	st := store.New(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "database": st.Available()})
	})

	routes.RegisterRoutes(r, st, cfg)

	if cfg.StorageType == "local" {
		r.Static("/uploads", cfg.StorageLocal)
	}

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
