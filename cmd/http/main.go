package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"postcare-service/internal/app/config"
	"postcare-service/internal/app/delivery/http/middlewares"
	"postcare-service/internal/app/delivery/http/routers"
	"postcare-service/internal/app/drivers/database"
	"postcare-service/internal/app/drivers/logger"
	"postcare-service/internal/app/drivers/messaging"
	"postcare-service/internal/app/services/core/auth"
	"postcare-service/internal/app/services/core/messages"
	"postcare-service/internal/app/services/core/profiles"
	"postcare-service/internal/app/services/core/users"
	"postcare-service/internal/app/services/shared/alerts"
	"postcare-service/internal/app/services/shared/jwtmanager"
	redisrepo "postcare-service/internal/app/services/shared/redis"
	"postcare-service/internal/app/services/shared/smsgateway"
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

	mongoDB := database.NewMongoDB(driverConfig)
	indexCtx, cancelIndexes := context.WithTimeout(context.Background(), 30*time.Second)
	err = database.EnsureIndexes(indexCtx, mongoDB.Database(driverConfig.MongoDB.DbName))
	cancelIndexes()
	if err != nil {
		log.Fatalf("Failed to ensure mongo indexes: %v", err)
	}

	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrapTheApp(bootstrap)

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
	log.Printf("Server listening on %s", internalConfig.App.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Error while closing application resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap) {
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared services
	jwtManager, err := jwtmanager.NewJWTManager(bootstrap.InternalConfig, bootstrap.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize JWT manager: %v", err)
	}
	redisRepository := redisrepo.NewRedisRepository(bootstrap.Redis)
	smsGateway := smsgateway.NewSMSGatewayService(bootstrap.InternalConfig, bootstrap.Logger)
	alertPublisher, err := alerts.NewAlertPublisher(bootstrap.RabbitMQ, bootstrap.Logger, bootstrap.InternalConfig.Alerts.QueueName)
	if err != nil {
		log.Fatalf("Failed to initialize alert publisher: %v", err)
	}

	// Repositories
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	patientMongoRepository := profiles.NewPatientMongoRepository(bootstrap.MongoDB, dbName)
	providerMongoRepository := profiles.NewProviderMongoRepository(bootstrap.MongoDB, dbName)
	hospitalMongoRepository := profiles.NewHospitalMongoRepository(bootstrap.MongoDB, dbName)
	messageMongoRepository := messages.NewMessageMongoRepository(bootstrap.MongoDB, dbName)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, jwtManager, userMongoRepository, bootstrap.InternalConfig)

	// Auth
	authUsecase := auth.NewAuthUsecase(
		bootstrap.Logger,
		userMongoRepository,
		patientMongoRepository,
		providerMongoRepository,
		hospitalMongoRepository,
		jwtManager,
	)
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase)

	// User
	userUsecase := users.NewUserUsecase(
		bootstrap.Logger,
		userMongoRepository,
		patientMongoRepository,
		providerMongoRepository,
		hospitalMongoRepository,
	)
	userController := users.NewUserController(bootstrap.Logger, userUsecase)

	// Messages
	messageUsecase := messages.NewMessageUsecase(
		bootstrap.Logger,
		messageMongoRepository,
		patientMongoRepository,
		redisRepository,
		smsGateway,
		alertPublisher,
	)
	messageController := messages.NewMessageController(bootstrap.Logger, messageUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		userController,
		messageController,
	)
}
