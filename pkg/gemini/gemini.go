package gemini

import (
	"Dermalens/internal/entity"
	"Dermalens/pkg/vision"
	"context"
	"errors"
	"os"

	"github.com/google/generative-ai-go/genai"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

type geminiClient struct {
	modelName string
	client    *genai.Client
	enabled   bool
	log       *logrus.Logger
}

// New builds the Gemini vision analyzer, the fallback provider behind the
// same contract as the OpenAI one.
func New(log *logrus.Logger) vision.IVisionAnalyzer {
	apiKey := os.Getenv("GEMINI_API_KEY")

	modelName := os.Getenv("GEMINI_MODEL_NAME")
	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}

	service := &geminiClient{modelName: modelName, log: log}

	if apiKey == "" {
		log.Warn("Gemini is not enabled, missing API key")
		return service
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		log.Errorf("Failed to create Gemini client: %v", err)
		return service
	}

	service.client = client
	service.enabled = true
	log.Info("Gemini Vision initialized successfully")

	return service
}

func (g *geminiClient) Enabled() bool {
	return g.enabled
}

func (g *geminiClient) AnalyzeSkin(ctx context.Context, imageData []byte, profile *entity.SkinProfile) (entity.VisionAnalysis, error) {
	if !g.enabled {
		return entity.VisionAnalysis{}, errors.New("Gemini Vision is not enabled")
	}

	model := g.client.GenerativeModel(g.modelName)

	img := genai.ImageData("jpeg", imageData)
	res, err := model.GenerateContent(ctx, genai.Text(vision.BuildPrompt(profile)), img)
	if err != nil {
		return entity.VisionAnalysis{}, err
	}

	if len(res.Candidates) == 0 || len(res.Candidates[0].Content.Parts) == 0 {
		return entity.VisionAnalysis{}, errors.New("no response from Gemini API")
	}

	text, ok := res.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return entity.VisionAnalysis{}, errors.New("unexpected response format from Gemini API")
	}

	return vision.ParseAnalysis("gemini", string(text)), nil
}

func (g *geminiClient) Close() {
	if g.client != nil {
		g.client.Close()
	}
}
