package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sicko7947/carlist"
	"github.com/sicko7947/carlist/attachment"
	"github.com/sicko7947/carlist/store"
)

// Shared state, constructed once at startup
var svc *carlist.Service

// configFromEnv reads service configuration from the environment.
// SIGNED_URL_EXPIRATION is in seconds, matching the deployment config.
func configFromEnv() (carlist.Config, error) {
	cfg := carlist.Config{
		TableName:  os.Getenv("CAR_TABLE"),
		BucketName: os.Getenv("ATTACHMENT_S3_BUCKET"),
	}

	if raw := os.Getenv("SIGNED_URL_EXPIRATION"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil {
			return carlist.Config{}, err
		}
		cfg.UploadURLTTL = time.Duration(seconds) * time.Second
	}

	return cfg, cfg.Validate()
}

// initializeApp constructs the shared AWS clients and the service
func initializeApp() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	})

	cfg, err := configFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load AWS config")
	}

	s3Client := s3.NewFromConfig(awsCfg)
	issuer, err := attachment.NewIssuer(s3.NewPresignClient(s3Client), s3Client, cfg.BucketName, cfg.UploadURLTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create attachment issuer")
	}

	recordStore := store.NewDynamoDBStore(dynamodb.NewFromConfig(awsCfg), cfg.TableName, issuer.PublicURL)

	svc = carlist.NewService(recordStore, issuer, carlist.WithLogger(log.Logger))

	log.Info().
		Str("table", cfg.TableName).
		Str("bucket", cfg.BucketName).
		Dur("upload_url_ttl", cfg.UploadURLTTL).
		Msg("Listing service initialized successfully")
}

// registerRoutes registers all HTTP routes
func registerRoutes(app *fiber.App) {
	// Health check endpoint
	app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"service": "carlist",
		})
	})

	cars := app.Group("/cars")
	cars.Get("/", handleListRecords)
	cars.Post("/", handleCreateRecord)
	cars.Patch("/:recordId", handleUpdateRecord)
	cars.Delete("/:recordId", handleDeleteRecord)
	cars.Post("/:recordId/attachment", handleRequestUploadURL)
}

func main() {
	// Initialize shared components
	initializeApp()

	// Create Fiber app with routes
	app := fiber.New()
	app.Use(cors.New())

	registerRoutes(app)

	// Start server in a goroutine
	go func() {
		addr := ":" + os.Getenv("PORT")
		if addr == ":" {
			addr = ":3000"
		}
		log.Info().Str("address", addr).Msg("Starting HTTP server")
		if err := app.Listen(addr); err != nil {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
