package ai

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/savormap/savormap-api/internal/config"
)

// OpenAIVisionClassifier implements Classifier using the OpenAI chat API
// with an inline base64 image part.
type OpenAIVisionClassifier struct {
	client  *openai.Client
	model   string
	prompts *config.Prompts
}

// NewOpenAIVisionClassifier creates a new OpenAI-backed cuisine classifier.
func NewOpenAIVisionClassifier(apiKey string, prompts *config.Prompts) *OpenAIVisionClassifier {
	return &OpenAIVisionClassifier{
		client:  openai.NewClient(apiKey),
		model:   openai.GPT4o,
		prompts: prompts,
	}
}

// ClassifyCuisine sends the image to the vision model and returns a single
// trimmed cuisine label. Exactly one API call is made; no retry.
func (p *OpenAIVisionClassifier) ClassifyCuisine(ctx context.Context, imageData []byte, mimeType string) (string, error) {
	mediaType := resolveMediaType(imageData, mimeType)
	if mediaType == "" {
		return "", errors.New("payload is not a supported image")
	}

	dataURL := fmt.Sprintf("data:%s;base64,%s", mediaType, base64.StdEncoding.EncodeToString(imageData))

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     p.model,
		MaxTokens: 50,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: p.prompts.Classify.System,
			},
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: p.prompts.Classify.User,
					},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL:    dataURL,
							Detail: openai.ImageURLDetailLow,
						},
					},
				},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai vision API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("openai vision API returned no choices")
	}

	label := strings.TrimSpace(resp.Choices[0].Message.Content)
	if label == "" {
		return "", errors.New("openai vision API returned an empty label")
	}

	return label, nil
}
