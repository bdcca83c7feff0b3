package main

import (
	"context"
	"deskwise-service/internal/app/config"
	"deskwise-service/internal/app/delivery/http/controllers"
	"deskwise-service/internal/app/delivery/http/middlewares"
	"deskwise-service/internal/app/delivery/http/routers"
	"deskwise-service/internal/app/drivers/database"
	"deskwise-service/internal/app/drivers/logger"
	"deskwise-service/internal/app/drivers/messaging"
	"deskwise-service/internal/app/services/core/availability"
	"deskwise-service/internal/app/services/core/reminders"
	"deskwise-service/internal/app/services/core/schedules"
	"deskwise-service/internal/app/services/core/technicians"
	"deskwise-service/internal/app/services/shared/locker"
	"deskwise-service/internal/app/services/shared/redis"
	"deskwise-service/internal/app/services/shared/reminderqueue"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitMQConnection,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	// Shared services
	redisRepository := redis.NewRedisRepository(redisClient)
	lockService := locker.NewLockService(redisRepository, zapLogger)
	reminderPublisher, err := reminderqueue.NewReminderQueueService(rabbitMQConnection, zapLogger, internalConfig.Scheduling.ReminderQueue)
	if err != nil {
		log.Fatalf("Failed to initialize reminder queue: %v", err)
	}

	// Repositories
	scheduleEntryRepository := schedules.NewScheduleEntryMongoRepository(mongoClient, driverConfig.MongoDB.DbName)
	technicianRepository := technicians.NewTechnicianMongoRepository(mongoClient, driverConfig.MongoDB.DbName)

	// Usecases
	scheduleUsecase := schedules.NewScheduleUsecase(scheduleEntryRepository, technicianRepository, lockService, internalConfig, zapLogger)
	availabilityUsecase := availability.NewAvailabilityUsecase(scheduleEntryRepository, technicianRepository, internalConfig, zapLogger)
	technicianUsecase := technicians.NewTechnicianUsecase(technicianRepository, zapLogger)

	// Controllers
	scheduleEntryController := controllers.NewScheduleEntryController(scheduleUsecase, zapLogger)
	availabilityController := controllers.NewAvailabilityController(availabilityUsecase, zapLogger)
	technicianController := controllers.NewTechnicianController(technicianUsecase, zapLogger)

	// Reminder worker
	reminderWorker := reminders.NewWorker(zapLogger, internalConfig, lockService, redisRepository, scheduleEntryRepository, reminderPublisher)
	reminderWorker.Start(context.Background())
	bootstrap.ReminderWorkerStop = reminderWorker.Stop

	appMiddlewares := &middlewares.Middlewares{
		Log:            zapLogger,
		InternalConfig: internalConfig,
	}

	routers.SetupRoutes(
		chiRouter,
		internalConfig,
		appMiddlewares,
		scheduleEntryController,
		availabilityController,
		technicianController,
	)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Error while shutting down application dependencies: %v", err)
	}

	log.Println("Server exiting")
}
