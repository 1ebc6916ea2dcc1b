package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/savormap/savormap-api/internal/config"
	"github.com/savormap/savormap-api/internal/service"
	"github.com/savormap/savormap-api/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newSearchRouter(repo *testutil.MockRestaurantRepo, classifier *testutil.MockClassifier) *gin.Engine {
	svc := service.NewSearchService(&config.Config{}, repo, classifier, nil)
	handler := NewSearchHandler(svc)

	r := gin.New()
	r.GET("/restaurants/nearby", handler.SearchNearby)
	r.GET("/restaurants/search", handler.SearchByCuisine)
	r.POST("/restaurants/search/image", handler.SearchByImage)
	return r
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestSearchNearby_Success(t *testing.T) {
	repo := testutil.NewMockRestaurantRepo()
	testutil.SeedRepo(repo)
	r := newSearchRouter(repo, &testutil.MockClassifier{})

	req := httptest.NewRequest("GET", "/restaurants/nearby?lat=0&lng=0&radius=5", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d. body: %s", w.Code, http.StatusOK, w.Body.String())
	}

	body := decodeBody(t, w)
	items, ok := body["items"].([]interface{})
	if !ok {
		t.Fatal("response should contain 'items' array")
	}
	if len(items) != 2 {
		t.Errorf("len(items) = %d, want 2", len(items))
	}
	if body["totalPages"] != float64(1) {
		t.Errorf("totalPages = %v, want 1", body["totalPages"])
	}
}

func TestSearchNearby_MissingLongitude(t *testing.T) {
	repo := testutil.NewMockRestaurantRepo()
	testutil.SeedRepo(repo)
	r := newSearchRouter(repo, &testutil.MockClassifier{})

	req := httptest.NewRequest("GET", "/restaurants/nearby?lat=40.7", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if repo.GetAllCalls != 0 {
		t.Errorf("catalog read %d times before validation, want 0", repo.GetAllCalls)
	}
}

func TestSearchNearby_CoordinateOutOfRange(t *testing.T) {
	repo := testutil.NewMockRestaurantRepo()
	r := newSearchRouter(repo, &testutil.MockClassifier{})

	req := httptest.NewRequest("GET", "/restaurants/nearby?lat=91&lng=0", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestSearchNearby_StorageFailure(t *testing.T) {
	repo := testutil.NewMockRestaurantRepo()
	repo.FetchErr = fmt.Errorf("connection refused")
	r := newSearchRouter(repo, &testutil.MockClassifier{})

	req := httptest.NewRequest("GET", "/restaurants/nearby?lat=0&lng=0", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
}

func TestSearchByCuisine_Success(t *testing.T) {
	repo := testutil.NewMockRestaurantRepo()
	testutil.SeedRepo(repo)
	r := newSearchRouter(repo, &testutil.MockClassifier{})

	req := httptest.NewRequest("GET", "/restaurants/search?cuisine=italian", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d. body: %s", w.Code, http.StatusOK, w.Body.String())
	}

	body := decodeBody(t, w)
	items := body["items"].([]interface{})
	if len(items) != 2 {
		t.Errorf("len(items) = %d, want 2", len(items))
	}
}

func TestSearchByCuisine_MissingQuery(t *testing.T) {
	repo := testutil.NewMockRestaurantRepo()
	r := newSearchRouter(repo, &testutil.MockClassifier{})

	req := httptest.NewRequest("GET", "/restaurants/search", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func imageUploadRequest(t *testing.T, filename string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	part.Write(content)
	writer.Close()

	req := httptest.NewRequest("POST", "/restaurants/search/image", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestSearchByImage_UnknownLabelYieldsEmptyPage(t *testing.T) {
	repo := testutil.NewMockRestaurantRepo()
	testutil.SeedRepo(repo)
	classifier := &testutil.MockClassifier{
		ClassifyCuisineFunc: func(ctx context.Context, imageData []byte, mimeType string) (string, error) {
			return "Mexican", nil
		},
	}
	r := newSearchRouter(repo, classifier)

	req := imageUploadRequest(t, "dish.png", testutil.TestImagePNG())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d. body: %s", w.Code, http.StatusOK, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["label"] != "Mexican" {
		t.Errorf("label = %v, want Mexican", body["label"])
	}
	if items := body["items"].([]interface{}); len(items) != 0 {
		t.Errorf("len(items) = %d, want 0", len(items))
	}
	if body["totalPages"] != float64(0) {
		t.Errorf("totalPages = %v, want 0", body["totalPages"])
	}
}

func TestSearchByImage_MissingFile(t *testing.T) {
	repo := testutil.NewMockRestaurantRepo()
	r := newSearchRouter(repo, &testutil.MockClassifier{})

	req := httptest.NewRequest("POST", "/restaurants/search/image", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestSearchByImage_UnsupportedExtension(t *testing.T) {
	repo := testutil.NewMockRestaurantRepo()
	r := newSearchRouter(repo, &testutil.MockClassifier{})

	req := imageUploadRequest(t, "dish.pdf", []byte("%PDF-1.4"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestSearchByImage_ClassificationFailure(t *testing.T) {
	repo := testutil.NewMockRestaurantRepo()
	testutil.SeedRepo(repo)
	classifier := &testutil.MockClassifier{
		ClassifyCuisineFunc: func(ctx context.Context, imageData []byte, mimeType string) (string, error) {
			return "", fmt.Errorf("no usable label")
		},
	}
	r := newSearchRouter(repo, classifier)

	req := imageUploadRequest(t, "dish.png", testutil.TestImagePNG())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want %d. body: %s", w.Code, http.StatusUnprocessableEntity, w.Body.String())
	}
}
