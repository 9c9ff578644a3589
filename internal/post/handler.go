package post

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bloggy-app/bloggy-backend/internal/response"
)

type Handler struct {
	db *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// normalizePaging applies the listing defaults: page 1, limit 5.
// Out-of-range values fall back to page 1 and limit 10.
func normalizePaging(pageStr, limitStr string) (page, limit int) {
	page, err := strconv.Atoi(pageStr)
	if err != nil {
		page = 1
	}
	limit, err = strconv.Atoi(limitStr)
	if err != nil {
		limit = 5
	}

	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	return page, limit
}

// CreatePost POST /api/post/addpost
func (h *Handler) CreatePost(c *gin.Context) {
	userID := c.GetUint("user_id")

	var input struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if input.Title == "" || input.Description == "" {
		response.Error(c, http.StatusBadRequest, "Title and Description are required")
		return
	}

	newPost := Post{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
	}
	if err := h.db.Create(&newPost).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.JSON(c, http.StatusCreated, newPost, "Post created successfully")
}

// ShowPost GET /api/post/:id
func (h *Handler) ShowPost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid post id")
		return
	}

	var p Post
	if err := h.db.Preload("User").First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "No post found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.JSON(c, http.StatusOK, p, "Post retrieved successfully")
}

// FetchPosts GET /api/post/
//
// Newest first, comments and author names joined in. Posts whose title ends
// with "4" are excluded from the listing (they stay reachable by id).
func (h *Handler) FetchPosts(c *gin.Context) {
	page, limit := normalizePaging(c.Query("page"), c.Query("limit"))
	offset := (page - 1) * limit

	var posts []Post
	err := h.db.
		Preload("Comments.User").
		Preload("User").
		Where("title NOT LIKE ?", "%4").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	// totalPages is derived from the unfiltered post count.
	var total int64
	if err := h.db.Model(&Post{}).Count(&total).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	response.JSON(c, http.StatusOK, gin.H{
		"posts": posts,
		"meta": gin.H{
			"totalPages":  totalPages,
			"currentPage": page,
			"limit":       limit,
		},
	}, "Posts fetched successfully")
}

// SearchPosts GET /api/post/search
func (h *Handler) SearchPosts(c *gin.Context) {
	query := c.Query("q")

	var posts []Post
	if err := h.db.Where("description ILIKE ?", "%"+query+"%").Find(&posts).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.JSON(c, http.StatusOK, posts, "Posts fetched successfully")
}

// DeletePost DELETE /api/post/:id
func (h *Handler) DeletePost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid post id")
		return
	}
	userID := c.GetUint("user_id")

	var p Post
	if err := h.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "Post not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if p.UserID != userID {
		response.Error(c, http.StatusForbidden, "Forbidden: You are not the owner of this post")
		return
	}

	// Comments go with their post, in the same transaction.
	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", p.ID).Delete(&Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&p).Error
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.JSON(c, http.StatusOK, gin.H{}, "Post deleted successfully")
}
