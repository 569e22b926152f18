package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/gtnglobal/gtn-backend/config"
	"github.com/gtnglobal/gtn-backend/database"
	"github.com/gtnglobal/gtn-backend/routes"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg)

	// Auto-migrate models
	log.Println("🔄 Running database migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatalf("❌ DB AutoMigrate failed: %v", err)
	}
	log.Println("✅ Database migrations completed")

	// Create uploads directory
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Content-Length", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.Setup(router, cfg, db)

	// Start server
	fmt.Printf("🚀 Server starting on port %s\n", cfg.Port)
	fmt.Printf("📁 Upload directory: %s\n", cfg.UploadDir)
	fmt.Printf("🌐 Uploaded files served at /uploads/{filename}\n")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
