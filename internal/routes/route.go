package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/motomeet/mm/internal/container"
	"github.com/motomeet/mm/internal/handlers"
	"github.com/motomeet/mm/internal/middleware"
	"github.com/motomeet/mm/internal/models"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(c *container.Container) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	if err := models.RegisterCustomValidators(); err != nil {
		c.Logger.Error("Failed to register custom validators", "error", err)
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(c.Logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.ErrorHandler(c.Logger))
	r.Use(gin.Recovery())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{
			"status":  "OK",
			"service": "motomeet-api",
		})
	})

	requireAuth := middleware.RequireAuth(c.TokenVerifier, c.Profiles, c.Logger)
	optionalAuth := middleware.OptionalAuth(c.TokenVerifier, c.Profiles)

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/phone", handlers.StartPhoneAuth(c.AuthService))
		auth.POST("/verify", handlers.VerifyPhoneAuth(c.AuthService))
		auth.POST("/refresh", handlers.RefreshSession(c.AuthService))
		auth.POST("/logout", handlers.Logout(c.AuthService))
	}

	profiles := api.Group("/profiles")
	{
		profiles.GET("/handle-check", handlers.CheckHandle(c.ProfileService))
		profiles.GET("/:id", handlers.GetProfile(c.ProfileService))
		profiles.POST("", requireAuth, handlers.CreateProfile(c.ProfileService))
		profiles.GET("/me", requireAuth, handlers.GetMyProfile(c.ProfileService))
		profiles.PATCH("/me", requireAuth, handlers.UpdateMyProfile(c.ProfileService))
		profiles.POST("/me/avatar", requireAuth, handlers.UploadAvatar(c.ProfileService))
		profiles.GET("/me/bookings", requireAuth, handlers.ListMyBookings(c.BookingService))
	}

	rides := api.Group("/rides")
	{
		rides.GET("", optionalAuth, handlers.ListRides(c.RideService))
		rides.GET("/:id", optionalAuth, handlers.GetRide(c.RideService))
		rides.POST("", requireAuth, handlers.CreateRide(c.RideService))
		rides.PATCH("/:id", requireAuth, handlers.UpdateRide(c.RideService))
		rides.PATCH("/:id/cancel", requireAuth, handlers.CancelRide(c.RideService))
		rides.DELETE("/:id", requireAuth, handlers.DeleteRide(c.RideService))
		rides.POST("/:id/bookings", requireAuth, handlers.JoinRide(c.BookingService))
		rides.GET("/:id/bookings", requireAuth, handlers.ListRideBookings(c.BookingService))
	}

	bookings := api.Group("/bookings")
	bookings.Use(requireAuth)
	{
		bookings.PATCH("/:id", handlers.UpdateBooking(c.BookingService))
	}

	garages := api.Group("/garages")
	garages.Use(requireAuth)
	{
		garages.POST("", handlers.CreateGarage(c.GarageService))
		garages.GET("/me", handlers.GetMyGarage(c.GarageService))
		garages.PATCH("/:id", handlers.UpdateGarage(c.GarageService))
		garages.GET("/:id/dashboard", handlers.GarageDashboard(c.GarageService))

		garages.POST("/:id/motorcycles", handlers.AddMotorcycle(c.GarageService))
		garages.GET("/:id/motorcycles", handlers.ListMotorcycles(c.GarageService))

		garages.POST("/:id/tasks", handlers.AddGarageTask(c.GarageService))
		garages.GET("/:id/tasks", handlers.ListGarageTasks(c.GarageService))
		garages.DELETE("/:id/tasks/:taskId", handlers.DeleteGarageTask(c.GarageService))

		garages.POST("/:id/documents", handlers.AddGarageDocument(c.GarageService))
		garages.GET("/:id/documents", handlers.ListGarageDocuments(c.GarageService))
		garages.DELETE("/:id/documents/:docId", handlers.DeleteGarageDocument(c.GarageService))
	}

	motorcycles := api.Group("/motorcycles")
	motorcycles.Use(requireAuth)
	{
		motorcycles.GET("/:id", handlers.GetMotorcycle(c.GarageService))
		motorcycles.PATCH("/:id", handlers.UpdateMotorcycle(c.GarageService))
		motorcycles.DELETE("/:id", handlers.DeleteMotorcycle(c.GarageService))
		motorcycles.POST("/:id/maintenance", handlers.AddMaintenanceLog(c.GarageService))
		motorcycles.GET("/:id/maintenance", handlers.ListMaintenanceLogs(c.GarageService))
	}

	return r
}
