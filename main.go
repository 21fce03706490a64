package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rentwise/config"
	"rentwise/cron"
	"rentwise/database"
	billRepo "rentwise/database/repository/bill"
	leaseRepo "rentwise/database/repository/lease"
	notificationRepo "rentwise/database/repository/notification"
	propertyRepo "rentwise/database/repository/property"
	tenancyRepo "rentwise/database/repository/tenancy"
	"rentwise/database/repository/txn"
	userRepoPkg "rentwise/database/repository/user"
	"rentwise/handlers"
	"rentwise/middleware"
	"rentwise/routes"
	"rentwise/services/billing"
	"rentwise/services/lease"
	"rentwise/services/notification"
	"rentwise/services/reminder"
	"rentwise/services/storage"
	"rentwise/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	database.InitDB()
	cacheClient := utils.GetCacheClient()
	policy := config.Policy()

	// repositories.
	leases := leaseRepo.NewMongoLeaseRepo()
	bills := billRepo.NewMongoBillRepo()
	properties := propertyRepo.NewMongoPropertyRepo()
	users := userRepoPkg.NewMongoUserRepo()
	tenancy := tenancyRepo.NewMongoTenancyRepo()
	notifications := notificationRepo.NewMongoNotificationRepo()

	// notification channels.
	channels := []notification.Channel{&notification.InAppChannel{Repo: notifications}}
	if fcm, err := utils.NewFCMClient(context.Background()); err != nil {
		logger.Warn("main: push notifications disabled", zap.Error(err))
	} else {
		channels = append(channels, &notification.PushChannel{Client: fcm})
	}
	if config.AppConfig.SMSGatewayURL != "" {
		channels = append(channels, notification.NewSMSChannel(
			config.AppConfig.SMSGatewayURL, config.AppConfig.SMSAPIKey, config.AppConfig.SMSSenderName))
	}
	if config.AppConfig.EmailAPIURL != "" {
		channels = append(channels, notification.NewEmailChannel(
			config.AppConfig.EmailAPIURL, config.AppConfig.EmailAPIKey, config.AppConfig.EmailFrom))
	}
	dispatcher := notification.NewAsyncDispatcher(users, logger, config.AppConfig.NotificationQueueSize, channels...)
	dispatcher.Start()

	// reminders and schedule.
	queueClient := asynq.NewClient(utils.ReminderQueueOpt())
	defer queueClient.Close()
	reminders := reminder.NewAsynqScheduler(queueClient, policy.Location, logger)

	scheduleCache := billing.NewRedisScheduleCache(cacheClient, config.AppConfig.ScheduleCacheTTL)
	schedules := billing.NewScheduleService(leases, bills, scheduleCache, policy.Location, logger)

	leaseService := lease.NewDefaultLeaseService(
		lease.Repositories{
			Leases:     leases,
			Bills:      bills,
			Properties: properties,
			Users:      users,
			Tenancy:    tenancy,
		},
		txn.NewMongoRunner(database.MongoClient, logger),
		dispatcher,
		reminders,
		schedules,
		policy,
		config.AppConfig.AppBaseURL,
		logger,
	)

	cld, err := utils.NewCloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}
	contracts := storage.NewCloudinaryDocumentStore(&cld.Upload, config.AppConfig.ContractFolder)

	// background workers.
	worker := cron.InitReminderWorker(&cron.ReminderHandler{
		Leases:   leases,
		Bills:    bills,
		Notifier: dispatcher,
		Location: policy.Location,
		LinkBase: config.AppConfig.AppBaseURL,
		Logger:   logger,
	}, logger)

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	utils.StartHealthMonitor(monitorCtx, map[string]*redis.Client{
		"cache":          cacheClient,
		"reminder_queue": utils.NewReminderQueueClient(),
	}, database.MongoClient, 30*time.Second)

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin, logger))

	handlerBundle := handlers.NewHandlerBundle(
		handlers.NewLeaseHandler(leaseService),
		handlers.NewScheduleHandler(schedules),
		handlers.NewContractHandler(contracts),
		handlers.HealthHandler,
	)
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
	worker.Shutdown()
	dispatcher.Stop()
	if err := database.Close(ctx); err != nil {
		logger.Warn("main: mongo disconnect failed", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
