package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Sowraj28/GreenGrocerNew/auth"
)

// SetupAuthRoutes registers all "/auth/*" endpoints. The customer and admin
// realms each have their own login issuing their own session cookie.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.RegisterHandler(db))
		authGroup.POST("/login", auth.LoginHandler(db))
		authGroup.POST("/admin/login", auth.AdminLoginHandler(db))
	}
}
