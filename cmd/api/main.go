package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trimhub/booking-api/internal/cache"
	"github.com/trimhub/booking-api/internal/config"
	dbpkg "github.com/trimhub/booking-api/internal/db"
	"github.com/trimhub/booking-api/internal/jobs"
	"github.com/trimhub/booking-api/internal/middleware"
	"github.com/trimhub/booking-api/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	cc := cache.New(cfg)

	jobs.NewRetentionJob(db).Start()

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, cc)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
