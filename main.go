// File: carebridge/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"

	"carebridge/config"
	"carebridge/cron"
	"carebridge/database"
	clientsRepo "carebridge/database/repository/clients"
	providerRepo "carebridge/database/repository/provider"
	rulesRepo "carebridge/database/repository/rules"
	unservedRepo "carebridge/database/repository/unserved"
	"carebridge/handlers"
	"carebridge/middleware"
	"carebridge/routes"
	"carebridge/services/billing"
	"carebridge/services/coverage"
	"carebridge/services/geo"
	"carebridge/services/pricing"
	"carebridge/services/settings"
	"carebridge/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	settingsStore := settings.NewRedisStore()
	settingsService := &settings.Service{Store: settingsStore}
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	ruleRepo := rulesRepo.NewMongoRuleRepo()
	provRepo := providerRepo.NewMongoProviderRepo()
	addressRepo := clientsRepo.NewMongoClientAddressRepo()
	unservedReqRepo := unservedRepo.NewMongoUnservedRepo()

	// services.
	resolver, err := geo.NewTwoTierResolver(logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize geocoding resolver: %v", err)
	}

	pricingService := &pricing.DefaultPricingService{
		RuleRepo: ruleRepo,
		Settings: settingsService,
		Logger:   logger,
	}

	chargeExecutor := &billing.StripeChargeExecutor{
		DryRun: config.AppConfig.BillingDryRun,
		Logger: logger,
	}
	overtimeService := &billing.OvertimeBillingService{
		Providers: provRepo,
		Executor:  chargeExecutor,
		Payroll:   &billing.LogPayrollSink{Logger: logger},
		Currency:  config.AppConfig.DefaultCurrency,
		Logger:    logger,
	}

	coverageService := &coverage.DefaultCoverageService{
		Resolver:  resolver,
		Providers: provRepo,
		Settings:  settingsService,
		Logger:    logger,
	}

	batchGeocoder := &geo.BatchGeocoder{
		Resolver:  resolver,
		Addresses: addressRepo,
		Logger:    logger,
	}
	cron.InitGeocodeWorker(batchGeocoder, logger)
	queueClient := cron.NewQueueClient()
	defer queueClient.Close()

	// Surface settings changes in the log so operators can trace pricing
	// and coverage shifts back to admin edits.
	subCtx, subCancel := context.WithCancel(context.Background())
	defer subCancel()
	settingsStore.Subscribe(subCtx, func(key, value string) {
		logger.Info("setting changed", zap.String("key", key), zap.String("value", value))
	})

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Pricing:  handlers.NewPricingHandler(pricingService),
		Billing:  handlers.NewBillingHandler(overtimeService),
		Coverage: handlers.NewCoverageHandler(coverageService, unservedReqRepo, logger),
		Rules:    handlers.NewRulesHandler(ruleRepo),
		Settings: handlers.NewSettingsHandler(settingsService),
		Geocode:  handlers.NewGeocodeHandler(queueClient),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
