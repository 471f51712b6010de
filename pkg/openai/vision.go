package openai

import (
	"Dermalens/internal/entity"
	"Dermalens/pkg/vision"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"

	"github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

type visionService struct {
	client  *openai.Client
	model   string
	enabled bool
	log     *logrus.Logger
}

// New builds the OpenAI Vision analyzer. A missing API key disables the
// provider; the analysis service then tries the next provider or skips the
// LLM augmentation entirely.
func New(log *logrus.Logger) vision.IVisionAnalyzer {
	apiKey := os.Getenv("OPENAI_API_KEY")
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = openai.GPT4o
	}

	service := &visionService{model: model, log: log}

	if os.Getenv("OPENAI_ENABLED") == "false" || apiKey == "" {
		log.Warn("OpenAI Vision is not enabled or missing API key")
		return service
	}

	service.client = openai.NewClient(apiKey)
	service.enabled = true
	log.Info("OpenAI Vision initialized successfully")

	return service
}

func (s *visionService) Enabled() bool {
	return s.enabled
}

func (s *visionService) AnalyzeSkin(ctx context.Context, imageData []byte, profile *entity.SkinProfile) (entity.VisionAnalysis, error) {
	if !s.enabled {
		return entity.VisionAnalysis{}, errors.New("OpenAI Vision is not enabled")
	}

	encoded := base64.StdEncoding.EncodeToString(imageData)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are an expert dermatologist with years of experience in skin analysis and skincare recommendations.",
			},
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: vision.BuildPrompt(profile),
					},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL: fmt.Sprintf("data:image/jpeg;base64,%s", encoded),
						},
					},
				},
			},
		},
		MaxTokens:   2000,
		Temperature: 0.7,
	})
	if err != nil {
		return entity.VisionAnalysis{}, fmt.Errorf("OpenAI Vision request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return entity.VisionAnalysis{}, errors.New("no response from OpenAI Vision")
	}

	return vision.ParseAnalysis("openai", resp.Choices[0].Message.Content), nil
}
