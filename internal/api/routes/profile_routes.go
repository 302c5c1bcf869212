package routes

import (
	"jobboard-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterProfileRoutes registers the caller's own account routes plus the
// public profile view.
func RegisterProfileRoutes(rg *gin.RouterGroup, profileHandler *handlers.ProfileHandler, authMiddleware gin.HandlerFunc) {
	profile := rg.Group("/profile")
	{
		profile.GET("/public/:userId", profileHandler.GetPublicProfile)

		authed := profile.Group("")
		authed.Use(authMiddleware)
		{
			authed.GET("", profileHandler.GetProfile)
			authed.PUT("", profileHandler.UpdateProfile)
			authed.DELETE("", profileHandler.DeleteAccount)
			authed.PUT("/change-password", profileHandler.ChangePassword)
			authed.PUT("/profile-picture", profileHandler.UpdateProfilePicture)
			authed.POST("/resume", profileHandler.UploadResume)
			authed.DELETE("/resume", profileHandler.DeleteResume)
			authed.GET("/resume/download", profileHandler.DownloadResume)
		}
	}
}
