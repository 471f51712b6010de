package analysisService

import (
	"Dermalens/internal/api/analysis"
	"Dermalens/internal/entity"
	"Dermalens/pkg/classifier"
	contextPkg "Dermalens/pkg/context"
	"Dermalens/pkg/face"
	"Dermalens/pkg/frames"
	"errors"
	"image"
	"image/draw"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *skinAnalysisService) AnalyzeSkin(ctx context.Context, media []byte, mimeType string, profile *entity.SkinProfile) (analysis.SkinAnalysisResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	frameSet, err := s.sampler.Sample(media, mimeType)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"mime_type":  mimeType,
			"error":      err.Error(),
		}).Warn("Rejected analysis upload")
		return analysis.SkinAnalysisResponse{}, mapSamplerError(err)
	}

	results := make([]entity.FaceResult, 0)
	faceID := 0

	for _, frame := range frameSet {
		regions, err := s.detector.Detect(frame)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id":  requestID,
				"frame_index": frame.Index,
				"error":       err.Error(),
			}).Warn("Face detection failed on frame")
			continue
		}

		for _, region := range regions {
			padded := face.PadRect(region.Rect, s.cfg.FacePadding, frame.Image.Bounds())
			crop := cropFrame(frame.Image, padded)

			prediction, err := s.classifier.Predict(crop)
			if err != nil {
				if errors.Is(err, classifier.ErrInvalidRegion) {
					s.log.WithFields(logrus.Fields{
						"request_id":  requestID,
						"frame_index": frame.Index,
					}).Warn("Skipping unclassifiable face crop")
					continue
				}
				s.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"error":      err.Error(),
				}).Error("Classifier inference failed")
				return analysis.SkinAnalysisResponse{}, analysis.ErrInferenceFailed
			}

			results = append(results, entity.FaceResult{
				FaceID:     faceID,
				FrameIndex: frame.Index,
				Conditions: s.scoreConditions(prediction),
			})
			faceID++
		}
	}

	detected := s.aggregate(results)

	res := analysis.SkinAnalysisResponse{
		AnalysisResults:     results,
		DetectedConditions:  detected,
		RecommendedProducts: []entity.ProductRecord{},
		FramesAnalyzed:      len(frameSet),
		FacesDetected:       faceID,
		AnalyzedAt:          time.Now(),
	}

	if len(detected) > 0 {
		conditions := make([]entity.Condition, 0, len(detected))
		for _, d := range detected {
			conditions = append(conditions, d.Condition)
		}

		products, err := s.recommendations.ResolveProducts(ctx, conditions, profile)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Product resolution failed, returning analysis without recommendations")
		} else {
			res.RecommendedProducts = products
			routine := s.recommendations.ComposeRoutine(products)
			res.SkincareRoutine = &routine
		}
	}

	return res, nil
}

// scoreConditions keeps every label whose probability clears the threshold,
// highest confidence first. Equal confidences keep label enumeration order.
func (s *skinAnalysisService) scoreConditions(prediction entity.ClassificationResult) []entity.ConditionScore {
	scores := make([]entity.ConditionScore, 0)
	for _, condition := range entity.Conditions {
		confidence, ok := prediction.Probabilities[condition]
		if !ok || confidence <= s.cfg.ConfidenceThreshold {
			continue
		}
		scores = append(scores, entity.ConditionScore{
			Condition:  condition,
			Confidence: confidence,
			Severity:   entity.SeverityFor(confidence),
		})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Confidence > scores[j].Confidence
	})

	return scores
}

// aggregate folds the per-face results into one condition set, recording the
// maximum confidence seen for each label across all faces and frames.
func (s *skinAnalysisService) aggregate(results []entity.FaceResult) []entity.DetectedCondition {
	maxConfidence := make(map[entity.Condition]float64)
	for _, result := range results {
		for _, score := range result.Conditions {
			if score.Confidence > maxConfidence[score.Condition] {
				maxConfidence[score.Condition] = score.Confidence
			}
		}
	}

	detected := make([]entity.DetectedCondition, 0, len(maxConfidence))
	for _, condition := range entity.Conditions {
		confidence, ok := maxConfidence[condition]
		if !ok {
			continue
		}
		detected = append(detected, entity.DetectedCondition{
			Condition:  condition,
			Confidence: confidence,
			Severity:   entity.SeverityFor(confidence),
		})
	}

	sort.SliceStable(detected, func(i, j int) bool {
		return detected[i].Confidence > detected[j].Confidence
	})

	return detected
}

func mapSamplerError(err error) error {
	switch {
	case errors.Is(err, frames.ErrEmptyUpload):
		return analysis.ErrEmptyUpload
	case errors.Is(err, frames.ErrUnsupportedMedia):
		return analysis.ErrUnsupportedMedia
	case errors.Is(err, frames.ErrNoFrames):
		return analysis.ErrNoFrames
	case errors.Is(err, frames.ErrCorruptUpload):
		return analysis.ErrCorruptMedia
	default:
		return analysis.ErrCorruptMedia
	}
}

func cropFrame(img image.Image, rect image.Rectangle) image.Image {
	rect = rect.Intersect(img.Bounds())
	if rect.Empty() {
		return nil
	}

	type subImager interface {
		SubImage(r image.Rectangle) image.Image
	}
	if si, ok := img.(subImager); ok {
		return si.SubImage(rect)
	}

	crop := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Draw(crop, crop.Bounds(), img, rect.Min, draw.Src)
	return crop
}
