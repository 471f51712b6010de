package analysisService

import (
	"Dermalens/internal/api/analysis"
	recommendationService "Dermalens/internal/api/recommendation/service"
	"Dermalens/internal/entity"
	"Dermalens/pkg/classifier"
	"Dermalens/pkg/face"
	"Dermalens/pkg/frames"
	"Dermalens/pkg/utils"
	"Dermalens/pkg/vision"
	"context"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

type ISkinAnalysisService interface {
	AnalyzeSkin(ctx context.Context, media []byte, mimeType string, profile *entity.SkinProfile) (analysis.SkinAnalysisResponse, error)
	ComprehensiveAnalysis(ctx context.Context, user entity.UserLoginData) (analysis.ComprehensiveAnalysisResponse, error)
	ProcessLiveFrame(frame []byte) (*entity.DetectionResult, error)
}

// ProfileReader is the slice of the profile domain the analysis stage needs.
type ProfileReader interface {
	GetSkinProfileEntity(c context.Context, userID string) (*entity.SkinProfile, error)
	GetLatestImageData(c context.Context, userID string) ([]byte, error)
}

// Config carries the pipeline thresholds. It is built once at startup and
// never mutated afterwards.
type Config struct {
	ConfidenceThreshold float64
	FacePadding         int
}

func LoadConfig() Config {
	cfg := Config{
		ConfidenceThreshold: 0.3,
		FacePadding:         20,
	}

	if v := os.Getenv("ANALYSIS_CONFIDENCE_THRESHOLD"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 && parsed < 1 {
			cfg.ConfidenceThreshold = parsed
		}
	}
	if v := os.Getenv("ANALYSIS_FACE_PADDING"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			cfg.FacePadding = parsed
		}
	}

	return cfg
}

type skinAnalysisService struct {
	log             *logrus.Logger
	cfg             Config
	sampler         frames.IFrameSampler
	detector        face.IFaceDetector
	classifier      classifier.IClassifier
	visionProviders []vision.IVisionAnalyzer
	profiles        ProfileReader
	recommendations recommendationService.IRecommendationService
	utils           utils.IUtils
}

func NewSkinAnalysisService(
	log *logrus.Logger,
	cfg Config,
	sampler frames.IFrameSampler,
	detector face.IFaceDetector,
	conditionClassifier classifier.IClassifier,
	visionProviders []vision.IVisionAnalyzer,
	profiles ProfileReader,
	recommendations recommendationService.IRecommendationService,
	utilsPkg utils.IUtils,
) ISkinAnalysisService {
	return &skinAnalysisService{
		log:             log,
		cfg:             cfg,
		sampler:         sampler,
		detector:        detector,
		classifier:      conditionClassifier,
		visionProviders: visionProviders,
		profiles:        profiles,
		recommendations: recommendations,
		utils:           utilsPkg,
	}
}
