package analysisService

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"testing"

	"Dermalens/internal/api/analysis"
	"Dermalens/internal/entity"
	"Dermalens/pkg/classifier"
	"Dermalens/pkg/frames"

	"github.com/sirupsen/logrus"
)

type stubSampler struct {
	frames []entity.Frame
	err    error
}

func (s stubSampler) Sample(_ []byte, _ string) ([]entity.Frame, error) {
	return s.frames, s.err
}

type stubDetector struct {
	regions []entity.FaceRegion
	err     error
}

func (d stubDetector) Detect(_ entity.Frame) ([]entity.FaceRegion, error) {
	return d.regions, d.err
}

type stubClassifier struct {
	results []entity.ClassificationResult
	err     error
	calls   int
}

func (c *stubClassifier) Predict(_ image.Image) (entity.ClassificationResult, error) {
	if c.err != nil {
		return entity.ClassificationResult{}, c.err
	}
	result := c.results[c.calls%len(c.results)]
	c.calls++
	return result, nil
}

type stubRecommender struct {
	products []entity.ProductRecord
	err      error
}

func (r stubRecommender) ResolveProducts(_ context.Context, _ []entity.Condition, _ *entity.SkinProfile) ([]entity.ProductRecord, error) {
	return r.products, r.err
}

func (r stubRecommender) ComposeRoutine(products []entity.ProductRecord) entity.Routine {
	return entity.Routine{TotalProducts: len(products)}
}

func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testFrame(width, height int) entity.Frame {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	return entity.Frame{Image: img, Index: 0, Width: width, Height: height}
}

func probabilities(pairs map[entity.Condition]float64) entity.ClassificationResult {
	probs := make(map[entity.Condition]float64, len(entity.Conditions))
	for _, condition := range entity.Conditions {
		probs[condition] = 0.01
	}
	for condition, p := range pairs {
		probs[condition] = p
	}
	return entity.ClassificationResult{Probabilities: probs}
}

func newTestService(sampler frames.IFrameSampler, detector stubDetector, model *stubClassifier, recs stubRecommender) *skinAnalysisService {
	return &skinAnalysisService{
		log:             discardLogger(),
		cfg:             Config{ConfidenceThreshold: 0.3, FacePadding: 20},
		sampler:         sampler,
		detector:        detector,
		classifier:      model,
		recommendations: recs,
	}
}

func TestAnalyzeSkinSamplerErrors(t *testing.T) {
	tests := []struct {
		name    string
		sampler error
		want    error
	}{
		{"empty upload", frames.ErrEmptyUpload, analysis.ErrEmptyUpload},
		{"unsupported media", frames.ErrUnsupportedMedia, analysis.ErrUnsupportedMedia},
		{"no frames", frames.ErrNoFrames, analysis.ErrNoFrames},
		{"corrupt upload", frames.ErrCorruptUpload, analysis.ErrCorruptMedia},
		{"unrecognized failure", errors.New("boom"), analysis.ErrCorruptMedia},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(stubSampler{err: tt.sampler}, stubDetector{}, &stubClassifier{}, stubRecommender{})

			_, err := svc.AnalyzeSkin(context.Background(), []byte("media"), "image/png", nil)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestAnalyzeSkinNoFaces(t *testing.T) {
	model := &stubClassifier{err: errors.New("must not be called")}
	svc := newTestService(
		stubSampler{frames: []entity.Frame{testFrame(200, 200)}},
		stubDetector{},
		model,
		stubRecommender{},
	)

	got, err := svc.AnalyzeSkin(context.Background(), []byte("media"), "image/png", nil)
	if err != nil {
		t.Fatalf("AnalyzeSkin error: %v", err)
	}
	if got.FramesAnalyzed != 1 || got.FacesDetected != 0 {
		t.Errorf("frames = %d, faces = %d, want 1 and 0", got.FramesAnalyzed, got.FacesDetected)
	}
	if len(got.DetectedConditions) != 0 {
		t.Errorf("detected = %v, want none", got.DetectedConditions)
	}
	if len(got.RecommendedProducts) != 0 || got.SkincareRoutine != nil {
		t.Error("no recommendations expected when no face is detected")
	}
	if model.calls != 0 {
		t.Errorf("classifier calls = %d, want 0", model.calls)
	}
}

func TestAnalyzeSkinThresholdAndOrdering(t *testing.T) {
	model := &stubClassifier{results: []entity.ClassificationResult{
		probabilities(map[entity.Condition]float64{
			entity.ConditionAcne:     0.8,
			entity.ConditionDrySkin:  0.4,
			entity.ConditionWrinkles: 0.1,
		}),
	}}
	svc := newTestService(
		stubSampler{frames: []entity.Frame{testFrame(200, 200)}},
		stubDetector{regions: []entity.FaceRegion{{Rect: image.Rect(40, 40, 160, 160), Score: 10}}},
		model,
		stubRecommender{},
	)

	got, err := svc.AnalyzeSkin(context.Background(), []byte("media"), "image/png", nil)
	if err != nil {
		t.Fatalf("AnalyzeSkin error: %v", err)
	}
	if got.FacesDetected != 1 {
		t.Fatalf("faces = %d, want 1", got.FacesDetected)
	}

	if len(got.DetectedConditions) != 2 {
		t.Fatalf("detected = %v, want acne and dry_skin", got.DetectedConditions)
	}
	if got.DetectedConditions[0].Condition != entity.ConditionAcne || got.DetectedConditions[1].Condition != entity.ConditionDrySkin {
		t.Errorf("order = %s, %s, want acne then dry_skin",
			got.DetectedConditions[0].Condition, got.DetectedConditions[1].Condition)
	}
	if got.DetectedConditions[0].Severity != entity.SeverityHigh {
		t.Errorf("acne severity = %s, want high", got.DetectedConditions[0].Severity)
	}
	if got.DetectedConditions[1].Severity != entity.SeverityLow {
		t.Errorf("dry_skin severity = %s, want low", got.DetectedConditions[1].Severity)
	}
}

func TestAnalyzeSkinTieBreakFollowsEnumeration(t *testing.T) {
	model := &stubClassifier{results: []entity.ClassificationResult{
		probabilities(map[entity.Condition]float64{
			entity.ConditionWrinkles: 0.5,
			entity.ConditionAcne:     0.5,
		}),
	}}
	svc := newTestService(
		stubSampler{frames: []entity.Frame{testFrame(200, 200)}},
		stubDetector{regions: []entity.FaceRegion{{Rect: image.Rect(40, 40, 160, 160), Score: 10}}},
		model,
		stubRecommender{},
	)

	got, err := svc.AnalyzeSkin(context.Background(), []byte("media"), "image/png", nil)
	if err != nil {
		t.Fatalf("AnalyzeSkin error: %v", err)
	}
	if len(got.DetectedConditions) != 2 {
		t.Fatalf("detected = %v, want two conditions", got.DetectedConditions)
	}
	if got.DetectedConditions[0].Condition != entity.ConditionAcne {
		t.Errorf("tie winner = %s, want acne", got.DetectedConditions[0].Condition)
	}
}

func TestAnalyzeSkinAggregatesMaxAcrossFaces(t *testing.T) {
	model := &stubClassifier{results: []entity.ClassificationResult{
		probabilities(map[entity.Condition]float64{entity.ConditionAcne: 0.5}),
		probabilities(map[entity.Condition]float64{entity.ConditionAcne: 0.9}),
	}}
	svc := newTestService(
		stubSampler{frames: []entity.Frame{testFrame(400, 200)}},
		stubDetector{regions: []entity.FaceRegion{
			{Rect: image.Rect(20, 40, 140, 160), Score: 9},
			{Rect: image.Rect(240, 40, 360, 160), Score: 11},
		}},
		model,
		stubRecommender{},
	)

	got, err := svc.AnalyzeSkin(context.Background(), []byte("media"), "image/png", nil)
	if err != nil {
		t.Fatalf("AnalyzeSkin error: %v", err)
	}
	if got.FacesDetected != 2 {
		t.Fatalf("faces = %d, want 2", got.FacesDetected)
	}
	if len(got.DetectedConditions) != 1 {
		t.Fatalf("detected = %v, want only acne", got.DetectedConditions)
	}
	if got.DetectedConditions[0].Confidence != 0.9 {
		t.Errorf("confidence = %f, want the maximum 0.9", got.DetectedConditions[0].Confidence)
	}
}

func TestAnalyzeSkinRecommendationFailureIsTolerated(t *testing.T) {
	model := &stubClassifier{results: []entity.ClassificationResult{
		probabilities(map[entity.Condition]float64{entity.ConditionAcne: 0.8}),
	}}
	svc := newTestService(
		stubSampler{frames: []entity.Frame{testFrame(200, 200)}},
		stubDetector{regions: []entity.FaceRegion{{Rect: image.Rect(40, 40, 160, 160), Score: 10}}},
		model,
		stubRecommender{err: errors.New("search down")},
	)

	got, err := svc.AnalyzeSkin(context.Background(), []byte("media"), "image/png", nil)
	if err != nil {
		t.Fatalf("AnalyzeSkin error: %v", err)
	}
	if len(got.DetectedConditions) != 1 {
		t.Fatalf("detected = %v, want acne", got.DetectedConditions)
	}
	if len(got.RecommendedProducts) != 0 || got.SkincareRoutine != nil {
		t.Error("recommendations should stay empty when resolution fails")
	}
}

func TestAnalyzeSkinReturnsRecommendations(t *testing.T) {
	model := &stubClassifier{results: []entity.ClassificationResult{
		probabilities(map[entity.Condition]float64{entity.ConditionAcne: 0.8}),
	}}
	svc := newTestService(
		stubSampler{frames: []entity.Frame{testFrame(200, 200)}},
		stubDetector{regions: []entity.FaceRegion{{Rect: image.Rect(40, 40, 160, 160), Score: 10}}},
		model,
		stubRecommender{products: []entity.ProductRecord{{Name: "Cleanser", Category: entity.CategoryCleanser}}},
	)

	got, err := svc.AnalyzeSkin(context.Background(), []byte("media"), "image/png", nil)
	if err != nil {
		t.Fatalf("AnalyzeSkin error: %v", err)
	}
	if len(got.RecommendedProducts) != 1 {
		t.Fatalf("products = %v, want one", got.RecommendedProducts)
	}
	if got.SkincareRoutine == nil || got.SkincareRoutine.TotalProducts != 1 {
		t.Error("routine should be composed from the resolved products")
	}
}

func TestAnalyzeSkinInferenceFailure(t *testing.T) {
	svc := newTestService(
		stubSampler{frames: []entity.Frame{testFrame(200, 200)}},
		stubDetector{regions: []entity.FaceRegion{{Rect: image.Rect(40, 40, 160, 160), Score: 10}}},
		&stubClassifier{err: errors.New("nan in forward pass")},
		stubRecommender{},
	)

	_, err := svc.AnalyzeSkin(context.Background(), []byte("media"), "image/png", nil)
	if !errors.Is(err, analysis.ErrInferenceFailed) {
		t.Errorf("error = %v, want ErrInferenceFailed", err)
	}
}

func TestAnalyzeSkinSkipsUnclassifiableCrops(t *testing.T) {
	svc := newTestService(
		stubSampler{frames: []entity.Frame{testFrame(200, 200)}},
		stubDetector{regions: []entity.FaceRegion{{Rect: image.Rect(40, 40, 160, 160), Score: 10}}},
		&stubClassifier{err: classifier.ErrInvalidRegion},
		stubRecommender{},
	)

	got, err := svc.AnalyzeSkin(context.Background(), []byte("media"), "image/png", nil)
	if err != nil {
		t.Fatalf("AnalyzeSkin error: %v", err)
	}
	if got.FacesDetected != 0 || len(got.DetectedConditions) != 0 {
		t.Errorf("skipped crop should not contribute results, got %d faces", got.FacesDetected)
	}
}

func encodeTestFrame(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 180, G: 150, B: 130, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode frame: %v", err)
	}
	return buf.Bytes()
}

func TestProcessLiveFrame(t *testing.T) {
	t.Run("undecodable frame", func(t *testing.T) {
		svc := newTestService(stubSampler{}, stubDetector{}, &stubClassifier{}, stubRecommender{})
		if _, err := svc.ProcessLiveFrame([]byte("garbage")); err == nil {
			t.Error("expected decode error")
		}
	})

	t.Run("no face", func(t *testing.T) {
		svc := newTestService(stubSampler{}, stubDetector{}, &stubClassifier{}, stubRecommender{})

		got, err := svc.ProcessLiveFrame(encodeTestFrame(t, 200, 200))
		if err != nil {
			t.Fatalf("ProcessLiveFrame error: %v", err)
		}
		if got.Status != statusNoFace {
			t.Errorf("status = %s, want %s", got.Status, statusNoFace)
		}
		if len(got.Instructions) == 0 {
			t.Error("no-face result should carry an instruction")
		}
	})

	t.Run("off-center small face asks for adjustment", func(t *testing.T) {
		detector := stubDetector{regions: []entity.FaceRegion{
			{Rect: image.Rect(0, 80, 40, 120), Score: 8},
		}}
		svc := newTestService(stubSampler{}, detector, &stubClassifier{}, stubRecommender{})

		got, err := svc.ProcessLiveFrame(encodeTestFrame(t, 200, 200))
		if err != nil {
			t.Fatalf("ProcessLiveFrame error: %v", err)
		}
		if got.Status != statusAdjust {
			t.Fatalf("status = %s, want %s", got.Status, statusAdjust)
		}
		if !containsInstruction(got.Instructions, "Move right") {
			t.Errorf("instructions = %v, want Move right", got.Instructions)
		}
		if !containsInstruction(got.Instructions, "Move closer") {
			t.Errorf("instructions = %v, want Move closer", got.Instructions)
		}
	})

	t.Run("aligned face is classified", func(t *testing.T) {
		detector := stubDetector{regions: []entity.FaceRegion{
			{Rect: image.Rect(60, 60, 140, 140), Score: 12},
		}}
		model := &stubClassifier{results: []entity.ClassificationResult{
			probabilities(map[entity.Condition]float64{entity.ConditionOilySkin: 0.6}),
		}}
		svc := newTestService(stubSampler{}, detector, model, stubRecommender{})

		got, err := svc.ProcessLiveFrame(encodeTestFrame(t, 200, 200))
		if err != nil {
			t.Fatalf("ProcessLiveFrame error: %v", err)
		}
		if got.Status != statusAligned {
			t.Fatalf("status = %s, want %s", got.Status, statusAligned)
		}
		if len(got.Conditions) != 1 || got.Conditions[0].Condition != entity.ConditionOilySkin {
			t.Errorf("conditions = %v, want oily_skin", got.Conditions)
		}
	})
}

func containsInstruction(instructions []string, want string) bool {
	for _, instruction := range instructions {
		if instruction == want {
			return true
		}
	}
	return false
}
