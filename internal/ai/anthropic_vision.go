package ai

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/savormap/savormap-api/internal/config"
)

// AnthropicVisionClassifier implements Classifier using Claude with a
// base64 image block.
type AnthropicVisionClassifier struct {
	client  anthropic.Client
	model   anthropic.Model
	prompts *config.Prompts
}

// NewAnthropicVisionClassifier creates a new Claude-backed cuisine classifier.
// Uses Haiku: label extraction is a cheap single-token-ish task.
func NewAnthropicVisionClassifier(apiKey string, prompts *config.Prompts) *AnthropicVisionClassifier {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicVisionClassifier{
		client:  client,
		model:   anthropic.Model("claude-haiku-4-5-20251001"),
		prompts: prompts,
	}
}

// ClassifyCuisine sends the image to Claude and returns a single trimmed
// cuisine label. Exactly one API call is made; no retry.
func (p *AnthropicVisionClassifier) ClassifyCuisine(ctx context.Context, imageData []byte, mimeType string) (string, error) {
	mediaType := resolveMediaType(imageData, mimeType)
	if mediaType == "" {
		return "", errors.New("payload is not a supported image")
	}

	b64 := base64.StdEncoding.EncodeToString(imageData)

	resp, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     p.model,
		MaxTokens: 50,
		System: []anthropic.TextBlockParam{
			{Text: p.prompts.Classify.System},
		},
		Messages: []anthropic.MessageParam{
			{
				Role: anthropic.MessageParamRoleUser,
				Content: []anthropic.ContentBlockParamUnion{
					{
						OfRequestImageBlock: &anthropic.ImageBlockParam{
							Source: anthropic.ImageBlockParamSourceUnion{
								OfBase64ImageSource: &anthropic.Base64ImageSourceParam{
									MediaType: anthropic.Base64ImageSourceMediaType(mediaType),
									Data:      b64,
								},
							},
						},
					},
					anthropic.NewTextBlock(p.prompts.Classify.User),
				},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("claude API error: %w", err)
	}

	var label string
	for _, block := range resp.Content {
		if block.Type == "text" {
			label += block.Text
		}
	}

	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return "", errors.New("claude API returned an empty label")
	}

	return trimmed, nil
}
