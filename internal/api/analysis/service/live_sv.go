package analysisService

import (
	"Dermalens/internal/entity"
	"Dermalens/pkg/face"
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
)

const (
	statusNoFace  = "no_face"
	statusAdjust  = "adjust"
	statusAligned = "aligned"

	centerTolerance = 0.15
	minFaceRatio    = 0.25
	maxFaceRatio    = 0.65
)

// ProcessLiveFrame gives per-frame camera guidance. Frames arrive as encoded
// JPEG/PNG over the websocket; an aligned face is classified immediately so
// the client can preview conditions before committing a full analysis.
func (s *skinAnalysisService) ProcessLiveFrame(frameData []byte) (*entity.DetectionResult, error) {
	img, _, err := image.Decode(bytes.NewReader(frameData))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	frameCenter := entity.Position{
		X: bounds.Min.X + bounds.Dx()/2,
		Y: bounds.Min.Y + bounds.Dy()/2,
	}

	frame := entity.Frame{Image: img, Width: bounds.Dx(), Height: bounds.Dy()}

	regions, err := s.detector.Detect(frame)
	if err != nil {
		return nil, err
	}

	if len(regions) == 0 {
		return &entity.DetectionResult{
			Status:       statusNoFace,
			Instructions: []string{"Position your face inside the frame"},
			FrameCenter:  frameCenter,
		}, nil
	}

	best := regions[0]
	for _, region := range regions[1:] {
		if region.Score > best.Score {
			best = region
		}
	}

	facePosition := entity.Position{
		X: best.Rect.Min.X + best.Rect.Dx()/2,
		Y: best.Rect.Min.Y + best.Rect.Dy()/2,
	}
	faceRatio := float64(best.Rect.Dx()) / float64(bounds.Dx())

	dx := float64(facePosition.X-frameCenter.X) / float64(bounds.Dx())
	dy := float64(facePosition.Y-frameCenter.Y) / float64(bounds.Dy())

	instructions := make([]string, 0)
	switch {
	case dx > centerTolerance:
		instructions = append(instructions, "Move left")
	case dx < -centerTolerance:
		instructions = append(instructions, "Move right")
	}
	switch {
	case dy > centerTolerance:
		instructions = append(instructions, "Move up")
	case dy < -centerTolerance:
		instructions = append(instructions, "Move down")
	}
	switch {
	case faceRatio < minFaceRatio:
		instructions = append(instructions, "Move closer")
	case faceRatio > maxFaceRatio:
		instructions = append(instructions, "Move back")
	}

	result := &entity.DetectionResult{
		Status:       statusAdjust,
		Instructions: instructions,
		FacePosition: &facePosition,
		FaceSize:     &faceRatio,
		FrameCenter:  frameCenter,
		Deviations: map[string]float64{
			"horizontal": math.Abs(dx),
			"vertical":   math.Abs(dy),
		},
	}

	if len(instructions) == 0 {
		result.Status = statusAligned
		result.Instructions = []string{"Hold still"}

		padded := face.PadRect(best.Rect, s.cfg.FacePadding, bounds)
		if crop := cropFrame(img, padded); crop != nil {
			if prediction, err := s.classifier.Predict(crop); err == nil {
				result.Conditions = s.scoreConditions(prediction)
			}
		}
	}

	return result, nil
}
