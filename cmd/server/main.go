package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nabilassungkar/MoodMelt/internal/config"
	"github.com/nabilassungkar/MoodMelt/internal/handlers"
	"github.com/nabilassungkar/MoodMelt/internal/store"
)

func main() {
	cfg := config.Load()

	log.Printf("Configuration:")
	log.Printf("  Port: %s", cfg.Port)
	log.Printf("  Max upload size: %d bytes", cfg.MaxUploadBytes)

	gin.SetMode(cfg.GinMode)
	router := gin.Default()
	router.MaxMultipartMemory = cfg.MaxUploadBytes

	reportStore := store.NewStore()
	reportHandler := handlers.NewReportHandler(reportStore)

	v1 := router.Group("/api/v1")
	reportHandler.Register(v1)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	log.Printf("Starting MoodMelt dashboard service on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start MoodMelt dashboard service: %v", err)
	}
}
