package post

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bloggy-app/bloggy-backend/internal/response"
)

// CreateComment POST /api/comment/addcomment
//
// The parent post's comment_count and the comment row move together inside
// one transaction, keeping the denormalized counter consistent.
func (h *Handler) CreateComment(c *gin.Context) {
	userID := c.GetUint("user_id")

	var input struct {
		PostID  uint   `json:"post_id"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if input.PostID == 0 || input.Comment == "" {
		response.Error(c, http.StatusBadRequest, "post_id and comment are required")
		return
	}

	var p Post
	if err := h.db.First(&p, input.PostID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "Post not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	newComment := Comment{
		PostID:  input.PostID,
		UserID:  userID,
		Content: input.Comment,
	}
	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&Post{}).Where("id = ?", input.PostID).
			UpdateColumn("comment_count", gorm.Expr("comment_count + ?", 1)).Error; err != nil {
			return err
		}
		return tx.Create(&newComment).Error
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.JSON(c, http.StatusCreated, newComment, "Comment created successfully.")
}

// ShowComment GET /api/comment/:id
func (h *Handler) ShowComment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid comment id")
		return
	}

	var cm Comment
	if err := h.db.Preload("User").First(&cm, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "Comment not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.JSON(c, http.StatusOK, cm, "Comment retrieved successfully")
}

// FetchComments GET /api/comment/post/:postId
func (h *Handler) FetchComments(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("postId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid post id")
		return
	}

	var comments []Comment
	if err := h.db.Preload("User").Where("post_id = ?", postID).Find(&comments).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.JSON(c, http.StatusOK, comments, "Comments fetched successfully")
}

// DeleteComment DELETE /api/comment/:id
func (h *Handler) DeleteComment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid comment id")
		return
	}
	userID := c.GetUint("user_id")

	var input struct {
		PostID uint `json:"post_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	var p Post
	if err := h.db.First(&p, input.PostID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "Post not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	// Scoped to the given post so a mismatched post_id cannot touch
	// another post's counter.
	var cm Comment
	if err := h.db.First(&cm, "id = ? AND post_id = ?", id, input.PostID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusForbidden, "Forbidden: Not the comment owner")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if cm.UserID != userID {
		response.Error(c, http.StatusForbidden, "Forbidden: Not the comment owner")
		return
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&Post{}).Where("id = ?", input.PostID).
			UpdateColumn("comment_count", gorm.Expr("comment_count - ?", 1)).Error; err != nil {
			return err
		}
		return tx.Delete(&cm).Error
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.JSON(c, http.StatusOK, nil, "Comment deleted successfully")
}
