package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/mrodriguezdev/mytineraries-api/internal/auth"
	"github.com/mrodriguezdev/mytineraries-api/internal/config"
	"github.com/mrodriguezdev/mytineraries-api/internal/handler"
	"github.com/mrodriguezdev/mytineraries-api/internal/repository"
	"github.com/mrodriguezdev/mytineraries-api/internal/usecase"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger = logger.Level(level)

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to mongo")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error().Err(err).Msg("failed to disconnect from mongo")
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logger.Fatal().Err(err).Msg("failed to ping mongo")
	}

	db := client.Database(cfg.MongoDB)

	userRepo := repository.NewUserMongoRepository(ctx, &logger, db)
	itineraryRepo := repository.NewItineraryMongoRepository(db)
	cityRepo := repository.NewCityMongoRepository(db)

	jwtAuth := auth.NewJWTAuthenticator(cfg.JWTIssuer)
	authUsecase := usecase.NewAuthUsecase(userRepo, jwtAuth, cfg)
	userUsecase := usecase.NewUserUsecase(userRepo, itineraryRepo)
	cityUsecase := usecase.NewCityUsecase(cityRepo, itineraryRepo)

	router := handler.NewRouter(cfg, &logger, jwtAuth, userRepo, authUsecase, userUsecase, cityUsecase)

	addr := net.JoinHostPort("", cfg.HTTPPort)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	logger.Info().Str("addr", addr).Msg("starting server")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal().Err(err).Msg("server failed")
	}
}
