package routes

import (
	"os"
	"serenityspa-backend/config"
	"serenityspa-backend/controllers"
	"serenityspa-backend/models"
	"serenityspa-backend/utils"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000", "http://localhost:5173"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
		auth.PUT("/change-password", controllers.ChangePassword)
		auth.POST("/avatar", controllers.UploadAvatar)
	}

	api := r.Group("/api")
	{
		// Public catalog, content, and chat
		api.GET("/services", controllers.GetCatalog)
		api.GET("/services/:id", controllers.GetService)
		api.GET("/therapists", controllers.GetTherapists)
		api.GET("/blogs", controllers.GetBlogs)
		api.GET("/blogs/:id", controllers.GetBlog)
		api.GET("/reviews", controllers.GetReviews)
		api.POST("/messages", controllers.CreateMessage)

		chat := api.Group("/chat")
		{
			chat.POST("/sessions", controllers.CreateChatSession)
			chat.GET("/sessions/:id", controllers.GetChatSession)
			chat.POST("/sessions/:id/messages", controllers.PostChatMessage)
		}

		// Signed-in customers
		authed := api.Group("")
		authed.Use(utils.AuthMiddleware())
		{
			authed.POST("/appointments", controllers.BookAppointment)
			authed.GET("/appointments/mine", controllers.GetMyAppointments)
			authed.PUT("/appointments/:id/cancel", controllers.CancelMyAppointment)

			authed.POST("/reviews", controllers.CreateReview)

			notifications := authed.Group("/notifications")
			{
				notifications.GET("", controllers.GetNotifications)
				notifications.PUT("/:id/read", controllers.MarkNotificationRead)
				notifications.PUT("/read-all", controllers.MarkAllNotificationsRead)
				notifications.DELETE("/:id", controllers.DeleteNotification)
			}
		}

		// Admin back-office
		admin := api.Group("/admin")
		admin.Use(utils.AuthMiddleware(), utils.RequireRole(models.RoleAdmin))
		{
			admin.GET("/dashboard", controllers.GetDashboardOverview)

			adminServices := admin.Group("/services")
			{
				adminServices.GET("", controllers.GetServices)
				adminServices.POST("", controllers.CreateService)
				adminServices.PUT("/:id", controllers.UpdateService)
				adminServices.DELETE("/:id", controllers.DeleteService)
			}

			appointments := admin.Group("/appointments")
			{
				appointments.GET("", controllers.GetAppointments)
				appointments.POST("", controllers.CreateAppointment)
				appointments.PUT("/:id/status", controllers.UpdateAppointmentStatus)
				appointments.DELETE("/:id", controllers.DeleteAppointment)
			}

			therapists := admin.Group("/therapists")
			{
				therapists.GET("", controllers.GetAllTherapists)
				therapists.POST("", controllers.CreateTherapist)
				therapists.PUT("/:id", controllers.UpdateTherapist)
				therapists.DELETE("/:id", controllers.DeleteTherapist)
			}

			users := admin.Group("/users")
			{
				users.GET("", controllers.GetUsers)
				users.PUT("/:id", controllers.UpdateUser)
				users.DELETE("/:id", controllers.DeleteUser)
			}

			blogs := admin.Group("/blogs")
			{
				blogs.GET("", controllers.GetAllBlogs)
				blogs.POST("", controllers.CreateBlog)
				blogs.POST("/image", controllers.UploadBlogImage)
				blogs.PUT("/:id", controllers.UpdateBlog)
				blogs.DELETE("/:id", controllers.DeleteBlog)
			}

			messages := admin.Group("/messages")
			{
				messages.GET("", controllers.GetMessages)
				messages.GET("/:id", controllers.GetMessage)
				messages.POST("/:id/replies", controllers.ReplyToMessage)
				messages.PUT("/:id/read", controllers.MarkMessageRead)
				messages.DELETE("/:id", controllers.DeleteMessage)
			}

			reviews := admin.Group("/reviews")
			{
				reviews.GET("", controllers.GetAllReviews)
				reviews.PUT("/:id/approve", controllers.ApproveReview)
				reviews.DELETE("/:id", controllers.DeleteReview)
			}
		}
	}

	return r
}
