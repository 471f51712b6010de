package classifier_test

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"Dermalens/internal/entity"
	"Dermalens/pkg/classifier"
)

func testCrop(t *testing.T) image.Image {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 96, 96))
	for y := 0; y < 96; y++ {
		for x := 0; x < 96; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 2), G: uint8(y * 2), B: uint8(x + y), A: 255})
		}
	}
	return img
}

func TestNewFromWeights(t *testing.T) {
	t.Run("nil weights", func(t *testing.T) {
		if _, err := classifier.NewFromWeights(nil); err == nil {
			t.Error("expected error for nil weights")
		}
	})

	t.Run("seeded weights", func(t *testing.T) {
		if _, err := classifier.NewFromWeights(classifier.RandomWeights(1)); err != nil {
			t.Errorf("NewFromWeights error: %v", err)
		}
	})
}

func TestPredict(t *testing.T) {
	model, err := classifier.NewFromWeights(classifier.RandomWeights(1))
	if err != nil {
		t.Fatalf("NewFromWeights error: %v", err)
	}

	t.Run("nil crop", func(t *testing.T) {
		_, err := model.Predict(nil)
		if !errors.Is(err, classifier.ErrInvalidRegion) {
			t.Errorf("error = %v, want ErrInvalidRegion", err)
		}
	})

	t.Run("zero-size crop", func(t *testing.T) {
		_, err := model.Predict(image.NewRGBA(image.Rect(0, 0, 0, 0)))
		if !errors.Is(err, classifier.ErrInvalidRegion) {
			t.Errorf("error = %v, want ErrInvalidRegion", err)
		}
	})

	t.Run("covers every label with a valid probability", func(t *testing.T) {
		result, err := model.Predict(testCrop(t))
		if err != nil {
			t.Fatalf("Predict error: %v", err)
		}
		if len(result.Probabilities) != len(entity.Conditions) {
			t.Fatalf("labels = %d, want %d", len(result.Probabilities), len(entity.Conditions))
		}
		for _, condition := range entity.Conditions {
			p, ok := result.Probabilities[condition]
			if !ok {
				t.Errorf("missing probability for %s", condition)
				continue
			}
			if p < 0 || p > 1 {
				t.Errorf("probability for %s = %f, want within [0, 1]", condition, p)
			}
		}
	})

	t.Run("deterministic for identical crops", func(t *testing.T) {
		first, err := model.Predict(testCrop(t))
		if err != nil {
			t.Fatalf("Predict error: %v", err)
		}
		second, err := model.Predict(testCrop(t))
		if err != nil {
			t.Fatalf("Predict error: %v", err)
		}
		for condition, p := range first.Probabilities {
			if second.Probabilities[condition] != p {
				t.Errorf("probability for %s changed between runs: %f vs %f", condition, p, second.Probabilities[condition])
			}
		}
	})
}
