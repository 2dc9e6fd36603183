// File: parkbay/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"parkbay/config"
	"parkbay/cron"
	"parkbay/database"
	availabilityRepoPkg "parkbay/database/repository/availability"
	bookingRepoPkg "parkbay/database/repository/booking"
	spotRepoPkg "parkbay/database/repository/spot"
	"parkbay/handlers"
	"parkbay/middleware"
	"parkbay/routes"
	"parkbay/services/booking"
	"parkbay/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))
	router.Use(middleware.MetricsMiddleware())

	// repositories.
	spotRepo := spotRepoPkg.NewMongoSpotRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	availabilityRepo := availabilityRepoPkg.NewMongoAvailabilityRepo()

	if err := spotRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure spot indexes: %v", err)
	}
	if err := bookingRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure booking indexes: %v", err)
	}

	// services.
	engine := &booking.DefaultAvailabilityEngine{
		SpotRepo:    spotRepo,
		BookingRepo: bookingRepo,
		Cache:       utils.GetCacheClient(),
	}

	bookingHandler := handlers.NewBookingHandler(engine, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		GetAvailableSlotsHandler: bookingHandler.GetAvailableSlotsHandler,
		CheckAvailabilityHandler: bookingHandler.CheckAvailabilityHandler,
		CreateBookingHandler:     bookingHandler.CreateBookingHandler,
		GetBookingHandler:        bookingHandler.GetBookingHandler,
		ListMyBookingsHandler:    bookingHandler.ListMyBookingsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background lifecycle worker: completion sweeps and index rebuilds.
	cron.InitLifecycleWorker(bookingRepo, availabilityRepo)
	cron.StartCompletionScheduler(6 * time.Hour)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
