package analysisService

import (
	"Dermalens/internal/api/analysis"
	"Dermalens/internal/api/profile"
	"Dermalens/internal/entity"
	contextPkg "Dermalens/pkg/context"
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *skinAnalysisService) ComprehensiveAnalysis(ctx context.Context, user entity.UserLoginData) (analysis.ComprehensiveAnalysisResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	skinProfile, err := s.profiles.GetSkinProfileEntity(ctx, user.ID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to load skin profile, continuing without it")
		skinProfile = nil
	}

	imageData, err := s.profiles.GetLatestImageData(ctx, user.ID)
	if err != nil {
		if errors.Is(err, profile.ErrImageNotFound) {
			return analysis.ComprehensiveAnalysisResponse{}, analysis.ErrNoStoredImage
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to fetch latest stored image")
		return analysis.ComprehensiveAnalysisResponse{}, err
	}

	mimeType := http.DetectContentType(imageData)

	pipelineRes, err := s.AnalyzeSkin(ctx, imageData, mimeType, skinProfile)
	if err != nil {
		return analysis.ComprehensiveAnalysisResponse{}, err
	}

	visionResult := s.runVisionAnalysis(ctx, requestID, imageData, skinProfile)

	if pipelineRes.FacesDetected == 0 && visionResult == nil {
		return analysis.ComprehensiveAnalysisResponse{}, analysis.ErrNoFaceDetected
	}

	conditionSet := mergeConditions(pipelineRes.DetectedConditions, visionResult)

	res := analysis.ComprehensiveAnalysisResponse{
		VisionAnalysis:      visionResult,
		DetectedConditions:  pipelineRes.DetectedConditions,
		RecommendedProducts: []entity.ProductRecord{},
		AnalyzedAt:          time.Now(),
	}

	if len(conditionSet) > 0 {
		products, err := s.recommendations.ResolveProducts(ctx, conditionSet, skinProfile)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Product resolution failed in comprehensive analysis")
		} else {
			res.RecommendedProducts = products
			res.SkincareRoutine = s.recommendations.ComposeRoutine(products)
		}
	}

	return res, nil
}

// runVisionAnalysis tries each configured provider in order and returns the
// first successful result. All providers failing is not a request failure.
func (s *skinAnalysisService) runVisionAnalysis(ctx context.Context, requestID string, imageData []byte, skinProfile *entity.SkinProfile) *entity.VisionAnalysis {
	if optimized, err := s.utils.OptimizeImageForUpload(imageData, 1024, 1024, 85); err == nil {
		imageData = optimized
	}

	for _, provider := range s.visionProviders {
		if !provider.Enabled() {
			continue
		}

		result, err := provider.AnalyzeSkin(ctx, imageData, skinProfile)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Vision provider failed, trying next")
			continue
		}

		return &result
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
	}).Warn("No vision provider available, continuing with local analysis only")
	return nil
}

// mergeConditions unions the classifier's detections with the vision model's,
// keeping label enumeration order for conditions only the vision model saw.
func mergeConditions(detected []entity.DetectedCondition, visionResult *entity.VisionAnalysis) []entity.Condition {
	seen := make(map[entity.Condition]bool, len(detected))
	merged := make([]entity.Condition, 0, len(detected))

	for _, d := range detected {
		if !seen[d.Condition] {
			seen[d.Condition] = true
			merged = append(merged, d.Condition)
		}
	}

	if visionResult != nil {
		visionSeen := make(map[entity.Condition]bool, len(visionResult.ConditionsDetected))
		for _, c := range visionResult.ConditionsDetected {
			visionSeen[c] = true
		}
		for _, condition := range entity.Conditions {
			if visionSeen[condition] && !seen[condition] {
				seen[condition] = true
				merged = append(merged, condition)
			}
		}
	}

	return merged
}
