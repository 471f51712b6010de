package config

import (
	"Dermalens/database/postgres"
	analysisHandler "Dermalens/internal/api/analysis/handler"
	analysisService "Dermalens/internal/api/analysis/service"
	authHandler "Dermalens/internal/api/auth/handler"
	authRepository "Dermalens/internal/api/auth/repository"
	authService "Dermalens/internal/api/auth/service"
	profileHandler "Dermalens/internal/api/profile/handler"
	profileRepository "Dermalens/internal/api/profile/repository"
	profileService "Dermalens/internal/api/profile/service"
	recommendationHandler "Dermalens/internal/api/recommendation/handler"
	recommendationService "Dermalens/internal/api/recommendation/service"
	"Dermalens/internal/middleware"
	"Dermalens/pkg/bcrypt"
	"Dermalens/pkg/classifier"
	"Dermalens/pkg/face"
	"Dermalens/pkg/frames"
	"Dermalens/pkg/google"
	"Dermalens/pkg/redis"
	"Dermalens/pkg/s3"
	"Dermalens/pkg/search"
	"Dermalens/pkg/smtp"
	"Dermalens/pkg/utils"
	"Dermalens/pkg/vision"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine          *fiber.App
	db              *sqlx.DB
	log             *logrus.Logger
	middleware      middleware.Middleware
	validator       *validator.Validate
	utils           utils.IUtils
	bcryptUtils     bcrypt.IBcrypt
	handlers        []handler
	googleProvider  google.ItfGoogle
	redisServer     redis.IRedis
	smtpMailer      smtp.ItfSmtp
	s3Client        s3.ItfS3
	frameSampler    frames.IFrameSampler
	faceDetector    face.IFaceDetector
	classifier      classifier.IClassifier
	searchClient    search.ISearch
	visionProviders []vision.IVisionAnalyzer
	analysisConfig  analysisService.Config
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithGoogleProvider(provider google.ItfGoogle) ServerOption {
	return func(s *Server) error {
		s.googleProvider = provider
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithSMTPMailer(smtpMailer smtp.ItfSmtp) ServerOption {
	return func(s *Server) error {
		s.smtpMailer = smtpMailer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

func WithFrameSampler() ServerOption {
	return func(s *Server) error {
		maxFrames := 5
		if v := os.Getenv("ANALYSIS_MAX_FRAMES"); v != "" {
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				maxFrames = parsed
			}
		}
		s.frameSampler = frames.New(maxFrames)
		return nil
	}
}

func WithFaceDetector() ServerOption {
	return func(s *Server) error {
		cascadePath := os.Getenv("FACE_CASCADE_PATH")
		if cascadePath == "" {
			cascadePath = "assets/facefinder"
		}

		detector, err := face.New(cascadePath)
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to load face cascade: %v", err)
			}
			return fmt.Errorf("failed to create face detector: %w", err)
		}
		s.faceDetector = detector
		return nil
	}
}

func WithClassifier() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before classifier")
		}

		conditionClassifier, err := classifier.New(os.Getenv("CLASSIFIER_WEIGHTS_PATH"), s.log)
		if err != nil {
			return fmt.Errorf("failed to create condition classifier: %w", err)
		}
		s.classifier = conditionClassifier
		return nil
	}
}

func WithSearchClient(searchClient search.ISearch) ServerOption {
	return func(s *Server) error {
		s.searchClient = searchClient
		return nil
	}
}

func WithVisionProviders(providers ...vision.IVisionAnalyzer) ServerOption {
	return func(s *Server) error {
		s.visionProviders = providers
		return nil
	}
}

func WithAnalysisConfig() ServerOption {
	return func(s *Server) error {
		s.analysisConfig = analysisService.LoadConfig()
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Auth Domain
	authRepo := authRepository.New(s.db, s.log)
	authServices := authService.New(s.log, authRepo, s.googleProvider, s.smtpMailer, s.redisServer, s.s3Client, s.bcryptUtils, s.utils)
	authHandlers := authHandler.New(s.log, authServices, s.validator, s.middleware, s.googleProvider)

	// Profile Domain
	profileRepo := profileRepository.New(s.db, s.log)
	profileServices := profileService.NewProfileService(s.log, profileRepo, s.s3Client, s.utils)
	profileHandlers := profileHandler.New(s.log, profileServices, s.validator, s.middleware)

	// Recommendation Domain
	recommendationServices := recommendationService.NewRecommendationService(s.log, s.searchClient)
	recommendationHandlers := recommendationHandler.New(s.log, s.validator, s.middleware, recommendationServices, profileServices)

	// Analysis Domain
	analysisServices := analysisService.NewSkinAnalysisService(
		s.log,
		s.analysisConfig,
		s.frameSampler,
		s.faceDetector,
		s.classifier,
		s.visionProviders,
		profileServices,
		recommendationServices,
		s.utils,
	)
	analysisHandlers := analysisHandler.New(s.log, s.validator, s.middleware, analysisServices, profileServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, authHandlers, profileHandlers, recommendationHandlers, analysisHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(s.middleware.NewLoggingMiddleware())

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
