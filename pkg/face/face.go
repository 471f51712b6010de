package face

import (
	"Dermalens/internal/entity"
	"fmt"
	"image"
	"os"

	pigo "github.com/esimov/pigo/core"
)

type IFaceDetector interface {
	Detect(frame entity.Frame) ([]entity.FaceRegion, error)
}

type faceDetector struct {
	classifier   *pigo.Pigo
	minSize      int
	shiftFactor  float64
	scaleFactor  float64
	iouThreshold float64
	qThreshold   float32
}

// New loads and unpacks the pigo cascade file once; the resulting detector is
// read-only and safe to share across requests.
func New(cascadePath string) (IFaceDetector, error) {
	cascade, err := os.ReadFile(cascadePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read cascade file: %w", err)
	}

	classifier, err := pigo.NewPigo().Unpack(cascade)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack cascade file: %w", err)
	}

	return &faceDetector{
		classifier:   classifier,
		minSize:      60,
		shiftFactor:  0.1,
		scaleFactor:  1.1,
		iouThreshold: 0.2,
		qThreshold:   5.0,
	}, nil
}

// Detect returns every face region the cascade accepts, in detector order.
// A frame with no faces yields an empty slice, not an error; the caller
// decides whether that is an error state for the request.
func (d *faceDetector) Detect(frame entity.Frame) ([]entity.FaceRegion, error) {
	if frame.Image == nil || frame.Width == 0 || frame.Height == 0 {
		return nil, fmt.Errorf("invalid frame")
	}

	pixels := pigo.RgbToGrayscale(frame.Image)

	maxSize := frame.Width
	if frame.Height < maxSize {
		maxSize = frame.Height
	}

	params := pigo.CascadeParams{
		MinSize:     d.minSize,
		MaxSize:     maxSize,
		ShiftFactor: d.shiftFactor,
		ScaleFactor: d.scaleFactor,
		ImageParams: pigo.ImageParams{
			Pixels: pixels,
			Rows:   frame.Height,
			Cols:   frame.Width,
			Dim:    frame.Width,
		},
	}

	detections := d.classifier.RunCascade(params, 0.0)
	detections = d.classifier.ClusterDetections(detections, d.iouThreshold)

	regions := make([]entity.FaceRegion, 0, len(detections))
	for _, det := range detections {
		if det.Q < d.qThreshold {
			continue
		}
		half := det.Scale / 2
		regions = append(regions, entity.FaceRegion{
			FrameIndex: frame.Index,
			Rect: image.Rect(
				det.Col-half,
				det.Row-half,
				det.Col+half,
				det.Row+half,
			),
			Score: det.Q,
		})
	}

	return regions, nil
}

// PadRect grows rect by pad pixels on every side, clamped to bounds. The
// original pipeline pads face crops before classification so the model sees
// some surrounding skin.
func PadRect(rect image.Rectangle, pad int, bounds image.Rectangle) image.Rectangle {
	padded := image.Rect(rect.Min.X-pad, rect.Min.Y-pad, rect.Max.X+pad, rect.Max.Y+pad)
	return padded.Intersect(bounds)
}
