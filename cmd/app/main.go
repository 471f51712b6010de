package main

import (
	"Dermalens/internal/config"
	"Dermalens/pkg/gemini"
	"Dermalens/pkg/google"
	"Dermalens/pkg/log"
	"Dermalens/pkg/openai"
	"Dermalens/pkg/redis"
	"Dermalens/pkg/search"
	"Dermalens/pkg/smtp"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
)

func main() {
	logger := log.NewLogger()
	if err := godotenv.Load(); err != nil {
		logger.Warnf("No .env file loaded: %v", err)
	}

	fiberApp := config.NewFiber(logger)
	validator := config.NewValidator()
	googleProvider := google.New()
	redisServer := redis.New()
	smtpMailer := smtp.New()
	searchClient := search.New(logger)
	openaiVision := openai.New(logger)
	geminiVision := gemini.New(logger)

	server, err := config.NewServer(
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithValidator(validator),
		config.WithDatabase(),
		config.WithGoogleProvider(googleProvider),
		config.WithRedisServer(redisServer),
		config.WithSMTPMailer(smtpMailer),
		config.WithMiddleware(),
		config.WithS3Client(),
		config.WithFrameSampler(),
		config.WithFaceDetector(),
		config.WithClassifier(),
		config.WithSearchClient(searchClient),
		config.WithVisionProviders(openaiVision, geminiVision),
		config.WithAnalysisConfig(),
		config.WithBcryptUtils(),
		config.WithUtils(),
	)
	if err != nil {
		logger.Fatal(err)
	}

	server.RegisterHandler()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	logger.Info("Server started successfully")

	<-sigChan
	logger.Info("Shutting down server...")
}
