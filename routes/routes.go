package routes

import (
	"closetable-api/handlers"
	"closetable-api/middleware"
	"closetable-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/signup", handlers.Signup)
		public.POST("/login", handlers.Login)
		public.POST("/refresh", handlers.Refresh)
		public.POST("/auth/google", handlers.ExternalLogin)

		// Discovery (no auth needed)
		public.GET("/restaurants", handlers.ListRestaurants)
		public.GET("/restaurants/:id", handlers.GetRestaurant)
		public.GET("/menu-items", handlers.ListMenuItems)
		public.GET("/reviews", handlers.ListReviews)
		public.GET("/images/:id", handlers.GetImage)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.POST("/logout", handlers.Logout)
		auth.GET("/profile", handlers.GetProfile)
		auth.PUT("/profile", handlers.UpdateProfile)

		// Restaurants
		auth.POST("/restaurants", handlers.CreateRestaurant)
		auth.PUT("/restaurants/:id", handlers.UpdateRestaurant)
		auth.DELETE("/restaurants/:id", handlers.DeleteRestaurant)

		// Reservations
		auth.GET("/reservations", handlers.ListReservations)
		auth.POST("/reservations", handlers.CreateReservation)
		auth.PUT("/reservations/:id", handlers.UpdateReservation)
		auth.DELETE("/reservations/:id", handlers.CancelReservation)

		// Menu items
		auth.POST("/menu-items", handlers.CreateMenuItem)
		auth.PUT("/menu-items/:id", handlers.UpdateMenuItem)
		auth.DELETE("/menu-items/:id", handlers.DeleteMenuItem)

		// Reviews
		auth.POST("/reviews", handlers.CreateReview)
		auth.DELETE("/reviews/:id", handlers.DeleteReview)

		// Images
		auth.POST("/images", handlers.UploadImage)

		// Saved restaurants
		auth.POST("/saved-restaurants", handlers.SaveRestaurant)
		auth.GET("/saved-restaurants", handlers.ListSavedRestaurants)
		auth.DELETE("/saved-restaurants", handlers.UnsaveRestaurant)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/users", handlers.AdminListUsers)
		admin.PUT("/users/:id/role", handlers.AdminUpdateUserRole)
		admin.DELETE("/users/:id", handlers.AdminDeleteUser)
		admin.GET("/restaurants", handlers.AdminListRestaurants)
		admin.PUT("/restaurants/:id/approve", handlers.AdminApproveRestaurant)
		admin.PUT("/restaurants/:id/reject", handlers.AdminRejectRestaurant)
	}
}
