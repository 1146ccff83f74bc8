package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"football-data-service/handlers"
	"football-data-service/middleware"
	"football-data-service/services"
	"football-data-service/store"
	"football-data-service/utils"
	"football-data-service/workers"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("no .env file found, reading environment variables directly")
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mongoURL := utils.GetEnv("MONGO_URL", "mongodb://localhost:27017")
	dbName := utils.GetEnv("MONGO_DB", "football")

	st, err := store.Connect(ctx, mongoURL, dbName)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongo")
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := st.Close(closeCtx); err != nil {
			log.Error().Err(err).Msg("failed to disconnect from mongo")
		}
	}()

	app := fiber.New()
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: utils.GetEnv("ALLOWED_ORIGINS", "http://localhost:3000"),
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
	}))

	playerService := services.NewPlayerService(st)
	teamService := services.NewTeamService(st)
	matchService := services.NewMatchService(st)
	cleanupService := services.NewCleanupService(st)

	handlers.SetupPlayerRoutes(app, playerService)
	handlers.SetupTeamRoutes(app, teamService)
	handlers.SetupMatchRoutes(app, matchService)
	handlers.SetupUtilityRoutes(app, cleanupService)

	// Optional janitor: sweep stale test data when a TTL is configured.
	if rawTTL := os.Getenv("TEST_DATA_TTL"); rawTTL != "" {
		ttl, err := time.ParseDuration(rawTTL)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid TEST_DATA_TTL")
		}
		interval, err := time.ParseDuration(utils.GetEnv("TEST_DATA_SWEEP_INTERVAL", "1h"))
		if err != nil {
			log.Fatal().Err(err).Msg("invalid TEST_DATA_SWEEP_INTERVAL")
		}
		worker := workers.NewRetentionWorker(st, ttl, interval)
		if err := worker.Start(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to start retention worker")
		}
		log.Info().Dur("ttl", ttl).Dur("interval", interval).Msg("retention worker running")
	}

	port := utils.GetEnv("PORT", "8000")
	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Error().Err(err).Msg("server error")
		}
	}()
	log.Info().Str("port", port).Str("database", dbName).Msg("server running")

	<-ctx.Done()
	log.Info().Msg("shutting down server")
	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
