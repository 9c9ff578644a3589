package user

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bloggy-app/bloggy-backend/internal/config"
	"github.com/bloggy-app/bloggy-backend/internal/logs"
	"github.com/bloggy-app/bloggy-backend/internal/response"
	"github.com/bloggy-app/bloggy-backend/internal/utils"
)

type Handler struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewHandler(db *gorm.DB, cfg *config.Config) *Handler {
	return &Handler{db: db, cfg: cfg}
}

// CreateUser POST /api/user/adduser
func (h *Handler) CreateUser(c *gin.Context) {
	route := c.FullPath()

	var input struct {
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if input.Name == "" || input.Password == "" {
		response.Error(c, http.StatusBadRequest, "Name and Password are required")
		return
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal Server Error")
		logs.LogJSON("ERROR", "Password hashing failed", map[string]interface{}{
			"error":     err.Error(),
			"route":     route,
			"requestID": c.GetString("request_id"),
		})
		return
	}

	newUser := User{
		Name:     input.Name,
		Password: hash,
	}
	if err := h.db.Create(&newUser).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal Server Error")
		logs.LogJSON("ERROR", "User creation failed", map[string]interface{}{
			"error":     err.Error(),
			"route":     route,
			"requestID": c.GetString("request_id"),
		})
		return
	}

	response.JSON(c, http.StatusCreated, newUser, "User created successfully")
	logs.LogJSON("INFO", "User created successfully", map[string]interface{}{
		"route":     route,
		"userID":    newUser.ID,
		"requestID": c.GetString("request_id"),
	})
}

// Login POST /api/user/login
func (h *Handler) Login(c *gin.Context) {
	route := c.FullPath()

	var input struct {
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if input.Name == "" || input.Password == "" {
		response.Error(c, http.StatusBadRequest, "Name and Password are required")
		return
	}

	u, err := FindByName(h.db, input.Name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Internal Server Error")
		logs.LogJSON("ERROR", "User lookup failed", map[string]interface{}{
			"error":     err.Error(),
			"route":     route,
			"requestID": c.GetString("request_id"),
		})
		return
	}

	if !utils.CheckPasswordHash(input.Password, u.Password) {
		response.Error(c, http.StatusUnauthorized, "Invalid credentials")
		logs.LogJSON("WARN", "Login with wrong password", map[string]interface{}{
			"route":     route,
			"userID":    u.ID,
			"requestID": c.GetString("request_id"),
		})
		return
	}

	token, err := utils.GenerateToken(u.ID, []byte(h.cfg.JWTSecret), h.cfg.JWTExpiry)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal Server Error")
		logs.LogJSON("ERROR", "Token generation failed", map[string]interface{}{
			"error":     err.Error(),
			"route":     route,
			"userID":    u.ID,
			"requestID": c.GetString("request_id"),
		})
		return
	}

	c.SetCookie(utils.AuthCookieName, token, int(h.cfg.JWTExpiry.Seconds()), "/", "", false, true)
	response.JSON(c, http.StatusOK, gin.H{"user": u, "token": token}, "Login successful")
	logs.LogJSON("INFO", "User logged in", map[string]interface{}{
		"route":     route,
		"userID":    u.ID,
		"requestID": c.GetString("request_id"),
	})
}

// Logout POST /api/user/logout
func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(utils.AuthCookieName, "", -1, "/", "", false, true)
	response.JSON(c, http.StatusOK, nil, "Logout successful")
}

// FetchUsers GET /api/user/
func (h *Handler) FetchUsers(c *gin.Context) {
	var users []User
	if err := h.db.Find(&users).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal Server Error")
		logs.LogJSON("ERROR", "User list failed", map[string]interface{}{
			"error":     err.Error(),
			"route":     c.FullPath(),
			"requestID": c.GetString("request_id"),
		})
		return
	}

	response.JSON(c, http.StatusOK, users, "Users fetched successfully")
}

// ShowUser GET /api/user/:id
func (h *Handler) ShowUser(c *gin.Context) {
	route := c.FullPath()

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	var u User
	if err := h.db.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "User not found")
			logs.LogJSON("WARN", "User not found", map[string]interface{}{
				"route":     route,
				"requestID": c.GetString("request_id"),
				"extra":     fmt.Sprintf("User not found : %d", id),
			})
			return
		}
		response.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.JSON(c, http.StatusOK, u, "User retrieved successfully")
}

// UpdateUser PUT /api/user/update
//
// Only the authenticated user's own record can be touched.
func (h *Handler) UpdateUser(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetUint("user_id")

	var input struct {
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	var u User
	if err := h.db.First(&u, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	updates := map[string]interface{}{}
	if input.Name != "" {
		updates["name"] = input.Name
	}
	if input.Password != "" {
		hash, err := utils.HashPassword(input.Password)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		updates["password"] = hash
	}
	if len(updates) == 0 {
		response.Error(c, http.StatusBadRequest, "No fields to update")
		return
	}

	if err := h.db.Model(&u).Updates(updates).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal Server Error")
		logs.LogJSON("ERROR", "User update failed", map[string]interface{}{
			"error":     err.Error(),
			"route":     route,
			"userID":    userID,
			"requestID": c.GetString("request_id"),
		})
		return
	}

	response.JSON(c, http.StatusOK, u, "User updated successfully")
	logs.LogJSON("INFO", "User updated successfully", map[string]interface{}{
		"route":     route,
		"userID":    userID,
		"requestID": c.GetString("request_id"),
	})
}

// DeleteUser DELETE /api/user/delete
func (h *Handler) DeleteUser(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetUint("user_id")

	if err := h.db.Delete(&User{}, userID).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal Server Error")
		logs.LogJSON("ERROR", "User deletion failed", map[string]interface{}{
			"error":     err.Error(),
			"route":     route,
			"userID":    userID,
			"requestID": c.GetString("request_id"),
		})
		return
	}

	c.SetCookie(utils.AuthCookieName, "", -1, "/", "", false, true)
	response.JSON(c, http.StatusOK, nil, "User deleted successfully")
	logs.LogJSON("INFO", "User deleted successfully", map[string]interface{}{
		"route":     route,
		"userID":    userID,
		"requestID": c.GetString("request_id"),
	})
}
