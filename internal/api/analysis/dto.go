package analysis

import (
	"Dermalens/internal/entity"
	"time"
)

type SkinAnalysisResponse struct {
	AnalysisResults     []entity.FaceResult        `json:"analysis_results"`
	DetectedConditions  []entity.DetectedCondition `json:"detected_conditions"`
	RecommendedProducts []entity.ProductRecord     `json:"recommended_products"`
	SkincareRoutine     *entity.Routine            `json:"skincare_routine,omitempty"`
	FramesAnalyzed      int                        `json:"frames_analyzed"`
	FacesDetected       int                        `json:"faces_detected"`
	AnalyzedAt          time.Time                  `json:"analyzed_at"`
}

type ComprehensiveAnalysisResponse struct {
	VisionAnalysis      *entity.VisionAnalysis     `json:"vision_analysis,omitempty"`
	DetectedConditions  []entity.DetectedCondition `json:"detected_conditions"`
	RecommendedProducts []entity.ProductRecord     `json:"recommended_products"`
	SkincareRoutine     entity.Routine             `json:"skincare_routine"`
	AnalyzedAt          time.Time                  `json:"analyzed_at"`
}
