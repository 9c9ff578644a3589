package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bloggy-app/bloggy-backend/internal/config"
	"github.com/bloggy-app/bloggy-backend/internal/middleware"
	"github.com/bloggy-app/bloggy-backend/internal/post"
	"github.com/bloggy-app/bloggy-backend/internal/user"
)

// Setup wires the route table. Handlers receive the DB handle explicitly.
func Setup(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestID())

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	userHandler := user.NewHandler(db, cfg)
	postHandler := post.NewHandler(db)
	auth := middleware.AuthRequired(db, []byte(cfg.JWTSecret))

	api := r.Group("/api")

	u := api.Group("/user")
	u.POST("/adduser", userHandler.CreateUser)
	u.POST("/login", userHandler.Login)
	u.POST("/logout", auth, userHandler.Logout)
	u.GET("/", userHandler.FetchUsers)
	u.GET("/:id", userHandler.ShowUser)
	u.PUT("/update", auth, userHandler.UpdateUser)
	u.DELETE("/delete", auth, userHandler.DeleteUser)

	p := api.Group("/post")
	p.POST("/addpost", auth, postHandler.CreatePost)
	p.GET("/search", postHandler.SearchPosts)
	p.GET("/:id", postHandler.ShowPost)
	p.DELETE("/:id", auth, postHandler.DeletePost)
	p.GET("/", postHandler.FetchPosts)

	cm := api.Group("/comment")
	cm.POST("/addcomment", auth, postHandler.CreateComment)
	cm.GET("/post/:postId", postHandler.FetchComments)
	cm.GET("/:id", postHandler.ShowComment)
	cm.DELETE("/:id", auth, postHandler.DeleteComment)

	return r
}
