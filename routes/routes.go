package routes

import (
	"net/http"
	"time"

	"doctorsportal/handlers"
	"doctorsportal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers public catalog and availability endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/service", hb.GetServicesHandler)
	r.GET("/available", hb.GetAvailableHandler)
}

// RegisterBookingRoutes registers booking and payment endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/booking", hb.CreateBookingHandler)

	// Protected routes (Require Authentication)
	protected := r.Group("")
	protected.Use(middleware.JWTAuthMiddleware())
	protected.GET("/booking", hb.ListBookingsHandler)
	protected.GET("/booking/:id", hb.GetBookingHandler)
	protected.PATCH("/booking/:id", hb.ConfirmPaymentHandler)
	protected.POST("/create-payment-intent", hb.CreatePaymentIntentHandler)
}

// RegisterUserRoutes registers sign-in and user management endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.PUT("/user/:email", hb.LoginHandler)
	r.GET("/admin/:email", hb.CheckAdminHandler)

	auth := middleware.JWTAuthMiddleware()
	admin := middleware.AdminOnlyMiddleware(hb.UserService)
	r.GET("/user", auth, hb.GetAllUsersHandler)
	r.PUT("/user/admin/:email", auth, admin, hb.MakeAdminHandler)
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/doctor")
	{
		adminGroup.Use(middleware.JWTAuthMiddleware(), middleware.AdminOnlyMiddleware(hb.UserService))
		adminGroup.GET("", hb.AdminHandler.GetDoctorsHandler)
		adminGroup.POST("", hb.AdminHandler.AddDoctorHandler)
		adminGroup.DELETE("/:email", hb.AdminHandler.DeleteDoctorHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Doctors portal is helping people")
	})
	r.GET("/health", func(c *gin.Context) {
		if hb.Health == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
			return
		}
		status := hb.Health.Status()
		code := http.StatusOK
		if !status.Mongo {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{"status": http.StatusText(code), "checks": status})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, allowedOrigins []string) {
	corsConfig := cors.Config{
		AllowOrigins:  allowedOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(allowedOrigins) == 1 && allowedOrigins[0] == "*" {
		corsConfig.AllowOrigins = nil
		corsConfig.AllowAllOrigins = true
	}
	r.Use(cors.New(corsConfig))

	RegisterHealthRoute(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
