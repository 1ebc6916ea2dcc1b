package service

import (
	"context"
	"strings"
	"time"

	goaway "github.com/TwiN/go-away"
	"github.com/savormap/savormap-api/internal/ai"
	"github.com/savormap/savormap-api/internal/config"
	"github.com/savormap/savormap-api/internal/logger"
	"github.com/savormap/savormap-api/internal/models"
	"github.com/savormap/savormap-api/internal/repository"
	"github.com/savormap/savormap-api/internal/search"
	"go.uber.org/zap"
)

const (
	// storageReadTimeout bounds the catalog bulk read.
	storageReadTimeout = 10 * time.Second
	// classifyTimeout bounds a single vision call.
	classifyTimeout = 15 * time.Second
	// classifyAttempts bounds the retry wrapper around the classifier. The
	// vision hop is the only flaky outbound call worth retrying.
	classifyAttempts = 2
)

// ImageArchiver copies a submitted search image to long-term storage.
// Archival is best-effort and never blocks or fails a search.
type ImageArchiver interface {
	ArchiveSearchImage(ctx context.Context, imageData []byte, mimeType string) (string, error)
}

// SearchService composes the proximity filter, cuisine matcher, and the
// vision classifier over the restaurant catalog. Stateless across requests.
type SearchService struct {
	Cfg        *config.Config
	Repo       repository.RestaurantRepo
	Classifier ai.Classifier
	Archiver   ImageArchiver // nil disables archival
}

// NewSearchService creates a new SearchService.
func NewSearchService(cfg *config.Config, repo repository.RestaurantRepo, classifier ai.Classifier, archiver ImageArchiver) *SearchService {
	return &SearchService{
		Cfg:        cfg,
		Repo:       repo,
		Classifier: classifier,
		Archiver:   archiver,
	}
}

// SearchNearby returns one page of restaurants within radiusKm of the
// origin. The handler has already validated the coordinates as numeric.
func (s *SearchService) SearchNearby(ctx context.Context, lat, lng, radiusKm float64, page, pageSize int) (search.PageResult[models.Restaurant], error) {
	restaurants, err := s.fetchCatalog(ctx)
	if err != nil {
		return search.PageResult[models.Restaurant]{}, err
	}

	nearby := search.WithinRadius(restaurants, lat, lng, radiusKm)
	return search.Paginate(nearby, page, pageSize), nil
}

// SearchByCuisine returns one page of restaurants whose cuisine field
// contains queryText, case-insensitively.
func (s *SearchService) SearchByCuisine(ctx context.Context, queryText string, page, pageSize int) (search.PageResult[models.Restaurant], error) {
	if strings.TrimSpace(queryText) == "" {
		return search.PageResult[models.Restaurant]{}, NewValidationError("cuisine query is required")
	}
	if goaway.IsProfane(queryText) {
		return search.PageResult[models.Restaurant]{}, NewValidationError("cuisine query contains inappropriate language")
	}

	restaurants, err := s.fetchCatalog(ctx)
	if err != nil {
		return search.PageResult[models.Restaurant]{}, err
	}

	matched := search.MatchCuisine(restaurants, queryText)
	return search.Paginate(matched, page, pageSize), nil
}

// SearchByImage classifies the image into a cuisine label and searches the
// catalog with it. Returns the label alongside the matches; an unrecognized
// label legitimately yields zero matches, not an error.
func (s *SearchService) SearchByImage(ctx context.Context, imageData []byte, mimeType string, page, pageSize int) (string, search.PageResult[models.Restaurant], error) {
	var empty search.PageResult[models.Restaurant]

	if len(imageData) == 0 {
		return "", empty, NewValidationError("image payload is required")
	}

	label, err := s.classifyWithRetry(ctx, imageData, mimeType)
	if err != nil {
		return "", empty, ClassificationError{message: "failed to classify image", err: err}
	}

	restaurants, err := s.fetchCatalog(ctx)
	if err != nil {
		return "", empty, err
	}

	matched := search.MatchCuisine(restaurants, label)
	result := search.Paginate(matched, page, pageSize)

	if s.Archiver != nil {
		if _, archiveErr := s.Archiver.ArchiveSearchImage(ctx, imageData, mimeType); archiveErr != nil {
			logger.Get().Warn("failed to archive search image", zap.Error(archiveErr))
		}
	}

	return label, result, nil
}

// fetchCatalog does the single bulk read behind every search. Filtering is
// never pushed down into the database.
func (s *SearchService) fetchCatalog(ctx context.Context) ([]models.Restaurant, error) {
	ctx, cancel := context.WithTimeout(ctx, storageReadTimeout)
	defer cancel()

	restaurants, err := s.Repo.GetAllRestaurants(ctx)
	if err != nil {
		return nil, StorageError{err: err}
	}
	return restaurants, nil
}

// classifyWithRetry wraps the single-shot classifier in a bounded retry.
// The adapter itself never retries.
func (s *SearchService) classifyWithRetry(ctx context.Context, imageData []byte, mimeType string) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= classifyAttempts; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, classifyTimeout)
		label, err := s.Classifier.ClassifyCuisine(callCtx, imageData, mimeType)
		cancel()
		if err == nil {
			return label, nil
		}

		lastErr = err
		if attempt < classifyAttempts {
			logger.Get().Warn("cuisine classification failed, retrying",
				zap.Error(err),
				zap.Int("attempt", attempt),
			)
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(time.Second):
			}
		}
	}

	return "", lastErr
}
