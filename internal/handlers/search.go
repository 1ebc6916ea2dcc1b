package handlers

import (
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/gin-gonic/gin"
	"github.com/savormap/savormap-api/internal/logger"
	"github.com/savormap/savormap-api/internal/service"
	"go.uber.org/zap"
)

const defaultRadiusKm = 5

// maxImageSize caps uploaded search images at 5MB.
const maxImageSize = 5 << 20

// allowedImageTypes is the set of accepted image file extensions.
var allowedImageTypes = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

// SearchHandler handles restaurant search requests.
type SearchHandler struct {
	Service *service.SearchService
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{Service: searchService}
}

// SearchNearby handles GET /v1/restaurants/nearby?lat=&lng=&radius=5
// Both coordinates are required and must be valid signed degrees; the
// request is rejected before any catalog read otherwise.
func (h *SearchHandler) SearchNearby(c *gin.Context) {
	latStr := c.Query("lat")
	lngStr := c.Query("lng")
	if latStr == "" || lngStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Latitude and longitude are required"})
		return
	}
	if !govalidator.IsLatitude(latStr) || !govalidator.IsLongitude(lngStr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Latitude or longitude is out of range"})
		return
	}

	lat, _ := strconv.ParseFloat(latStr, 64)
	lng, _ := strconv.ParseFloat(lngStr, 64)

	radiusKm := float64(defaultRadiusKm)
	if r := c.Query("radius"); r != "" {
		if v, err := strconv.ParseFloat(r, 64); err == nil && v > 0 {
			radiusKm = v
		}
	}

	page, pageSize := parsePagination(c)

	result, err := h.Service.SearchNearby(c.Request.Context(), lat, lng, radiusKm, page, pageSize)
	if err != nil {
		logger.Get().Error("nearby search failed", zap.Float64("lat", lat), zap.Float64("lng", lng), zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":      result.Items,
		"totalPages": result.TotalPages,
	})
}

// SearchByCuisine handles GET /v1/restaurants/search?cuisine=
func (h *SearchHandler) SearchByCuisine(c *gin.Context) {
	cuisine := c.Query("cuisine")
	page, pageSize := parsePagination(c)

	result, err := h.Service.SearchByCuisine(c.Request.Context(), cuisine, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":      result.Items,
		"totalPages": result.TotalPages,
	})
}

// SearchByImage handles POST /v1/restaurants/search/image with a multipart
// "image" field. The classified label is returned with the matches so the
// client can show what the photo was read as.
func (h *SearchHandler) SearchByImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageTypes[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported image type. Allowed: jpg, png, webp, gif"})
		return
	}

	if header.Size > maxImageSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image exceeds maximum size of 5MB"})
		return
	}

	imgBytes, err := io.ReadAll(io.LimitReader(file, maxImageSize))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read image"})
		return
	}

	mimeType := header.Header.Get("Content-Type")

	page, pageSize := parsePagination(c)

	label, result, err := h.Service.SearchByImage(c.Request.Context(), imgBytes, mimeType, page, pageSize)
	if err != nil {
		logger.Get().Error("image search failed", zap.String("filename", header.Filename), zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"label":      label,
		"items":      result.Items,
		"totalPages": result.TotalPages,
	})
}
