// File: doctorsportal/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctorsportal/config"
	"doctorsportal/database"
	"doctorsportal/database/repository"
	"doctorsportal/handlers"
	"doctorsportal/middleware"
	"doctorsportal/routes"
	"doctorsportal/services/availability"
	"doctorsportal/services/booking"
	"doctorsportal/services/doctor"
	"doctorsportal/services/payment"
	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()
	utils.SetJWTSecret(config.AppConfig.JWTSecret)

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	mongoClient, err := database.Connect(rootCtx, config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Fatal("main: database unavailable", zap.Error(err))
	}
	logger.Info("Connected to MongoDB successfully")

	authCache, err := utils.NewAuthCacheClient(rootCtx)
	if err != nil {
		logger.Fatal("main: redis unavailable", zap.Error(err))
	}

	identity, err := utils.NewFirebaseIdentityVerifier(rootCtx, config.AppConfig.FirebaseCredentialsFile, config.AppConfig.FirebaseProjectID)
	if err != nil {
		logger.Fatal("main: identity provider unavailable", zap.Error(err))
	}

	health := utils.NewHealthMonitor(mongoClient, authCache, 60*time.Second)
	health.Start(rootCtx)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	if err := router.SetTrustedProxies(config.TrustedProxies()); err != nil {
		logger.Fatal("main: invalid TRUSTED_PROXIES", zap.Error(err))
	}
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	// repositories.
	repos := repository.NewMongoRepositories(mongoClient.Database(config.AppConfig.DatabaseName))

	// services.
	gateway := payment.NewStripeGateway(config.AppConfig.StripeKey, logger)
	availabilityService := &availability.DefaultAvailabilityService{
		Catalog:  repos.Catalog,
		Bookings: repos.Bookings,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:     repos.Bookings,
		Payments: repos.Payments,
		Gateway:  gateway,
		Logger:   logger,
	}
	userService := &user.DefaultUserService{
		Repo:     repos.Users,
		Identity: identity,
		Cache:    authCache,
		TokenTTL: config.AppConfig.TokenTTL,
	}
	doctorService := &doctor.DefaultDoctorService{Repo: repos.Doctors}

	catalogHandler := handlers.NewCatalogHandler(availabilityService)
	bookingHandler := handlers.NewBookingHandler(bookingService, gateway, config.AppConfig.PaymentCurrency)
	userHandler := handlers.NewUserHandler(userService)
	adminHandler := handlers.NewAdminHandler(doctorService)

	handlerBundle := &handlers.HandlerBundle{
		UserService: userService,
		Health:      health,

		GetServicesHandler:  catalogHandler.GetServicesHandler,
		GetAvailableHandler: catalogHandler.GetAvailableHandler,

		CreateBookingHandler:       bookingHandler.CreateBookingHandler,
		ListBookingsHandler:        bookingHandler.ListBookingsHandler,
		GetBookingHandler:          bookingHandler.GetBookingHandler,
		ConfirmPaymentHandler:      bookingHandler.ConfirmPaymentHandler,
		CreatePaymentIntentHandler: bookingHandler.CreatePaymentIntentHandler,

		LoginHandler:       userHandler.LoginHandler,
		GetAllUsersHandler: userHandler.GetAllUsersHandler,
		MakeAdminHandler:   userHandler.MakeAdminHandler,
		CheckAdminHandler:  userHandler.CheckAdminHandler,

		AdminHandler: adminHandler,
	}

	routes.RegisterRoutes(router, handlerBundle, config.AllowedOrigins())

	port := config.AppConfig.AppPort
	if port == "" {
		port = "5000"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Listening to Doctors Portal on %s", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}

	stop()
	if authCache != nil {
		if err := authCache.Close(); err != nil {
			logger.Warn("main: redis close failed", zap.Error(err))
		}
	}
	if err := database.Disconnect(mongoClient); err != nil {
		logger.Warn("main: mongo disconnect failed", zap.Error(err))
	}
	logger.Info("main: server stopped gracefully")
}
