package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/savormap/savormap-api/internal/repository"
	"github.com/savormap/savormap-api/internal/service"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100
)

// parseUintParam parses a string into a uint.
func parseUintParam(param string) (uint, error) {
	parsed, err := strconv.ParseUint(param, 10, 64)
	if err != nil {
		return 0, err
	}
	if parsed > uint64(^uint(0)) {
		return 0, fmt.Errorf("value out of range for uint: %d", parsed)
	}
	return uint(parsed), nil
}

// parsePagination reads page and page_size query params, applying the
// defaults the pagination core expects its callers to enforce. Non-numeric
// or out-of-range values silently fall back to the defaults.
func parsePagination(c *gin.Context) (page, pageSize int) {
	page = defaultPage
	pageSize = defaultPageSize

	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v
		}
	}
	if ps := c.Query("page_size"); ps != "" {
		if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= maxPageSize {
			pageSize = v
		}
	}
	return page, pageSize
}

// respondError maps the service error taxonomy onto HTTP status codes.
// Every failure kind stays distinguishable; nothing is swallowed.
func respondError(c *gin.Context, err error) {
	var validationErr service.ValidationError
	var classificationErr service.ClassificationError
	var notFoundErr repository.NotFoundError
	var storageErr service.StorageError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.As(err, &classificationErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": classificationErr.Error()})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
	case errors.As(err, &storageErr):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Restaurant catalog is unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
