package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/bloggy-app/bloggy-backend/internal/config"
	"github.com/bloggy-app/bloggy-backend/internal/database"
	"github.com/bloggy-app/bloggy-backend/internal/router"
)

func main() {
	_ = godotenv.Load()

	cfg := config.LoadConfig()
	if cfg.DBUrl == "" {
		log.Fatal("DATABASE_URL is not set")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	db := database.Connect(cfg.DBUrl)

	r := router.Setup(db, cfg)

	log.Printf("Server is running on PORT %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
