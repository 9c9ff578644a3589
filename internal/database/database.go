package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bloggy-app/bloggy-backend/internal/post"
	"github.com/bloggy-app/bloggy-backend/internal/user"
)

// Connect opens the postgres connection and runs migrations.
// The returned handle is passed to handlers explicitly, there is no
// package-level singleton.
func Connect(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&user.User{}, &post.Post{}, &post.Comment{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}
