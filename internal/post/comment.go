package post

import (
	"time"

	"github.com/bloggy-app/bloggy-backend/internal/user"
)

type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      user.User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"user"`
	Content   string    `json:"comment" gorm:"column:comment;type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
