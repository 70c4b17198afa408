// File: hotelvoice/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotelvoice/config"
	"hotelvoice/handlers"
	"hotelvoice/middleware"
	"hotelvoice/routes"
	"hotelvoice/services/availability"
	"hotelvoice/services/booking"
	"hotelvoice/services/channel"
	"hotelvoice/services/oracle"
	"hotelvoice/services/quote"
	"hotelvoice/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitCache()
	utils.StartHealthMonitor(utils.GetCacheClient())

	loc, err := time.LoadLocation(config.AppConfig.TimeZone)
	if err != nil {
		logger.Sugar().Warnf("main: unknown time zone %q, using UTC", config.AppConfig.TimeZone)
		loc = time.UTC
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Optional collaborators: the booking flow and the extractor work
	// without either of them.
	var slotOracle oracle.SlotOracle
	if key := config.AppConfig.GeminiAPIKey; key != "" {
		gem, err := oracle.NewGeminiOracle(key, config.AppConfig.GeminiModel)
		if err != nil {
			logger.Sugar().Warnf("main: slot oracle disabled: %v", err)
		} else {
			slotOracle = oracle.NewResilient(gem, utils.GetCacheClient())
		}
	}

	var channelClient booking.ReservationPusher
	if cc := channel.NewClient(); cc != nil {
		channelClient = cc
	}

	// services.
	availabilityEngine := availability.NewEngine()
	quoteEngine := quote.NewEngine()
	bookingService := booking.NewService(channelClient)

	handler := handlers.NewHandler(availabilityEngine, quoteEngine, bookingService, slotOracle, loc)

	// Register routes with the assembled handler.
	routes.RegisterRoutes(router, handler)

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
