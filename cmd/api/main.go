package main

import (
	"cinema_reservation/api"
	"cinema_reservation/configs"
	"cinema_reservation/db"
	"cinema_reservation/db/mongodb"
	"cinema_reservation/db/redis"
	"cinema_reservation/internal/handler"
	"cinema_reservation/internal/repository"
	"cinema_reservation/internal/service"
	"cinema_reservation/model"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
)

// @title						Cinema Reservation
// @version					1.0
// @description				Movie reservation and review service backed by the remote movie catalog.
// @contact.name				API Support
// @host						localhost:3000
// @BasePath					/
// @schemes					https
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				Type "Bearer" followed by a space and JWT token.
// @Accept						json
// @Produce					json
func main() {
	configs.LoadEnvVariables()

	err := sentry.Init(sentry.ClientOptions{
		Dsn:     configs.GetConfigs().SentryDns,
		Release: configs.GetConfigs().SentryRelease,
		// Set TracesSampleRate to 1.0 to capture 100%
		// of transactions for performance monitoring.
		// We recommend adjusting this value in production,
		TracesSampleRate: 1,
		EnableTracing:    true,
		Debug:            true,
		AttachStacktrace: true,
	})
	if err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}
	// Flush buffered events before the program terminates.
	defer sentry.Flush(2 * time.Second)

	go redis.ConnectRedis()

	mongoDB, err := mongodb.NewDatabase()
	if err != nil {
		log.Fatalf("could not initialize mongodb database connection: %s", err)
	}
	go configs.LoadDbConfigs(mongoDB.GetDB())

	postgresDB, err := db.NewDatabase()
	if err != nil {
		log.Fatalf("could not initialize postgres database connection: %s", err)
	}
	err = postgresDB.GetDB().AutoMigrate(&model.User{}, &model.Reservation{}, &model.Review{})
	if err != nil {
		log.Fatalf("could not migrate database schema: %s", err)
	}

	eventsSvc, err := service.NewEventsService(configs.GetConfigs().RabbitMqUrl)
	if err != nil {
		log.Fatalf("could not initialize rabbitmq connection: %s", err)
	}
	defer eventsSvc.Close()

	catalogSvc := service.NewCatalogService(configs.GetConfigs().CatalogApiUrl)
	catalogHandler := handler.NewCatalogHandler(catalogSvc)

	userRep := repository.NewUserRepository(postgresDB.GetDB())
	userSvc := service.NewUserService(userRep)
	userHandler := handler.NewUserHandler(userSvc)

	movieRep := repository.NewMovieRepository(mongoDB.GetDB())

	reservationRep := repository.NewReservationRepository(postgresDB.GetDB())
	reservationSvc := service.NewReservationService(reservationRep, movieRep, catalogSvc, eventsSvc)
	reservationHandler := handler.NewReservationHandler(reservationSvc)

	reviewRep := repository.NewReviewRepository(postgresDB.GetDB())
	reviewSvc := service.NewReviewService(reviewRep, movieRep, eventsSvc)
	reviewHandler := handler.NewReviewHandler(reviewSvc)

	api.InitRouter(userHandler, reservationHandler, reviewHandler, catalogHandler)
	api.Start("0.0.0.0:" + configs.GetConfigs().Port)
}
