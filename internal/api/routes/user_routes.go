package routes

import (
	"jobboard-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers signup, login and session routes.
func RegisterUserRoutes(rg *gin.RouterGroup, userHandler *handlers.UserHandler, authMiddleware gin.HandlerFunc) {
	user := rg.Group("/user")
	{
		user.POST("/signup", userHandler.Signup)
		user.POST("/login", userHandler.Login)

		// Logout needs the presented token, so it runs behind auth.
		user.POST("/logout", authMiddleware, userHandler.Logout)
		user.POST("/logout-all", authMiddleware, userHandler.LogoutAll)
	}
}
