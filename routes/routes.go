package routes

import (
	"inspekta/internal/handlers"
	"inspekta/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up authentication and account routes
func SetupAuthRoutes(r *gin.RouterGroup, authHandler *handlers.AuthHandler, jwtSecret string) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/wallet-login", authHandler.WalletLogin)
		auth.POST("/refresh", authHandler.RefreshToken)
	}

	account := r.Group("/account")
	account.Use(middleware.AuthRequired(jwtSecret))
	{
		account.GET("/profile", authHandler.GetProfile)
		account.PUT("/profile", authHandler.UpdateProfile)
		account.PUT("/password", authHandler.ChangePassword)
		account.POST("/google-link", authHandler.LinkGoogleAccount)
		account.POST("/pin", authHandler.SetPIN)
		account.POST("/pin/verify", authHandler.VerifyPIN)
	}

	users := r.Group("/admin/users")
	users.Use(middleware.AuthRequired(jwtSecret), middleware.AdminRequired())
	{
		users.GET("/", authHandler.ListUsers)
		users.DELETE("/:id", authHandler.DeleteUser)
	}
}

// SetupInspectionRoutes sets up inspection and photo routes
func SetupInspectionRoutes(
	r *gin.RouterGroup,
	inspectionHandler *handlers.InspectionHandler,
	photoHandler *handlers.PhotoHandler,
	jwtSecret string,
) {
	// Public: archived report lookups
	public := r.Group("/inspections")
	{
		public.GET("/latest-archived", inspectionHandler.GetLatestArchived)
		public.GET("/plate/:platNomor", inspectionHandler.GetPlateHistory)
	}

	// Inspector routes
	inspections := r.Group("/inspections")
	inspections.Use(middleware.AuthRequired(jwtSecret))
	{
		inspections.POST("/", inspectionHandler.CreateInspection)
		inspections.GET("/mine", inspectionHandler.ListMyInspections)
		inspections.GET("/:id", inspectionHandler.GetInspection)
		inspections.PUT("/:id", inspectionHandler.UpdateInspection)
		inspections.DELETE("/:id", inspectionHandler.DeleteInspection)

		// Photos
		inspections.POST("/:id/photos", photoHandler.UploadPhotos)
		inspections.GET("/:id/photos", photoHandler.GetInspectionPhotos)
	}

	photos := r.Group("/photos")
	photos.Use(middleware.AuthRequired(jwtSecret))
	{
		photos.GET("/:photoId/url", photoHandler.GetPhotoURL)
		photos.PUT("/:photoId", photoHandler.UpdatePhoto)
		photos.DELETE("/:photoId", photoHandler.DeletePhoto)
	}

	// Admin routes for review and anchoring
	admin := r.Group("/admin/inspections")
	admin.Use(middleware.AuthRequired(jwtSecret), middleware.AdminRequired())
	{
		admin.GET("/", inspectionHandler.ListInspections)
		admin.PUT("/:id/approve", inspectionHandler.ApproveInspection)
		admin.PUT("/:id/deactivate", inspectionHandler.DeactivateInspection)
		admin.POST("/:id/mint", inspectionHandler.MintInspection)
	}
}

// SetupDashboardRoutes sets up admin dashboard routes
func SetupDashboardRoutes(r *gin.RouterGroup, dashboardHandler *handlers.DashboardHandler, jwtSecret string) {
	dashboard := r.Group("/admin/dashboard")
	dashboard.Use(middleware.AuthRequired(jwtSecret), middleware.AdminRequired())
	{
		dashboard.GET("/stats", dashboardHandler.GetStats)
	}
}
