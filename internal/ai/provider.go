package ai

import "context"

// Classifier infers a cuisine label from a food photo. Implementations make
// exactly one outbound call per invocation; retry policy belongs to the
// caller. The returned label is opaque free text, trimmed but never checked
// against a cuisine vocabulary.
type Classifier interface {
	ClassifyCuisine(ctx context.Context, imageData []byte, mimeType string) (string, error)
}
