package routes

import (
	"github.com/gin-gonic/gin"

	config "github.com/jandvorak/donation-admin-go/config"
	controllers "github.com/jandvorak/donation-admin-go/controllers"
	liststate "github.com/jandvorak/donation-admin-go/liststate"
	middleware "github.com/jandvorak/donation-admin-go/middleware"
)

func SetupRoutes(r *gin.Engine, cfg *config.Config, donations *liststate.Donations, notifications *liststate.Notifications) {
	// public
	r.POST("/auth/login", controllers.Login(cfg))

	// protected
	auth := middleware.AuthMiddleware(cfg)

	r.GET("/auth/session", auth, controllers.Session())

	dons := r.Group("/donations")
	dons.Use(auth)
	{
		dons.GET("", controllers.ListDonations(donations))
		dons.GET("/export", controllers.ExportDonations(donations))
		dons.PATCH("/:id/status", controllers.UpdateDonationStatus(donations))
		dons.DELETE("/:id", controllers.DeleteDonation(donations))
		dons.POST("/reload", controllers.ReloadDonations(donations))
	}

	notifs := r.Group("/notifications")
	notifs.Use(auth)
	{
		notifs.GET("", controllers.ListNotifications(notifications))
		notifs.POST("", controllers.CreateNotification(notifications))
		notifs.DELETE("/:id", controllers.DeleteNotification(notifications))
		notifs.POST("/reload", controllers.ReloadNotifications(notifications))
	}
}
