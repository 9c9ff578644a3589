package post

import (
	"time"

	"github.com/bloggy-app/bloggy-backend/internal/user"
)

type Post struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	User         user.User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"user"`
	Title        string    `gorm:"not null" json:"title"`
	Description  string    `gorm:"type:text;not null" json:"description"`
	CommentCount int       `gorm:"not null;default:0" json:"comment_count"`
	Comments     []Comment `gorm:"foreignKey:PostID" json:"comments,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
