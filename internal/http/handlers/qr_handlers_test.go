package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/leafspace/qr-studio/internal/models"
	"github.com/leafspace/qr-studio/internal/services/processor"
	"github.com/leafspace/qr-studio/internal/services/qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeRenderer struct {
	err     error
	logoErr error
	calls   int
	last    *models.RenderRequest
}

func (f *fakeRenderer) Render(_ context.Context, req *models.RenderRequest) (*models.RenderResult, error) {
	f.calls++
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.RenderResult{
		ID:         "render-1",
		Filename:   "leafspace_qr_code_20250102_150405.png",
		MimeType:   models.MimeTypePNG,
		Version:    2,
		PNG:        []byte("\x89PNG fake"),
		FileSize:   10,
		RenderedAt: time.Date(2025, time.January, 2, 15, 4, 5, 0, time.UTC),
	}, nil
}

func (f *fakeRenderer) CheckLogo() error   { return f.logoErr }
func (f *fakeRenderer) FontStatus() string { return "built-in" }

func newTestEngine(r Renderer) *gin.Engine {
	h := NewQRHandler(r, zap.NewNop())
	router := gin.New()
	router.SetHTMLTemplate(Templates())
	router.GET("/", h.ShowForm)
	router.POST("/generate", h.SubmitForm)
	router.GET("/api/v1/qr", h.GenerateQR)
	router.POST("/api/v1/qr", h.GenerateQR)
	router.GET("/api/v1/health", h.HealthCheck)
	return router
}

func postForm(router *gin.Engine, path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestShowFormDefaults(t *testing.T) {
	router := newTestEngine(&fakeRenderer{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Leaf Space QR Code Generator")
	assert.Contains(t, body, `value="SCAN ME"`)
	assert.Contains(t, body, "LeafSpaceSpaceTide1@leaf.space/bookings/")
	assert.NotContains(t, body, "<img")
}

func TestSubmitFormShowsImageAndDownload(t *testing.T) {
	renderer := &fakeRenderer{}
	router := newTestEngine(renderer)

	w := postForm(router, "/generate", url.Values{"url": {"https://example.com"}, "caption": {"HELLO"}})

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1, renderer.calls, "one render per submission")
	assert.Equal(t, &models.RenderRequest{URL: "https://example.com", Caption: "HELLO"}, renderer.last)

	body := w.Body.String()
	assert.Contains(t, body, `<img src="data:image/png;base64,`)
	assert.Contains(t, body, `download="leafspace_qr_code_20250102_150405.png"`)
	assert.Contains(t, body, "QR Code generated!")
	assert.Equal(t, 2, strings.Count(body, "data:image/png;base64,iVBORyBmYWtl"), "display and download share bytes")
}

func TestSubmitFormErrors(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"missing logo", &processor.AssetMissingError{Path: "logo.png"}, http.StatusInternalServerError, "Logo file not found"},
		{"too long", &qrcode.EncodingError{ContentLength: 9000, Err: fmt.Errorf("content too long")}, http.StatusUnprocessableEntity, "too long to fit"},
		{"empty url", processor.ErrEmptyURL, http.StatusBadRequest, "Please enter a URL"},
		{"unexpected", fmt.Errorf("boom"), http.StatusInternalServerError, "Failed to generate QR code."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newTestEngine(&fakeRenderer{err: tc.err})

			w := postForm(router, "/generate", url.Values{"url": {"x"}, "caption": {""}})

			assert.Equal(t, tc.status, w.Code)
			assert.Contains(t, w.Body.String(), tc.message)
			assert.NotContains(t, w.Body.String(), "<img")
			assert.NotContains(t, w.Body.String(), "Download QR Code")
		})
	}
}

func TestGenerateQRReturnsPNG(t *testing.T) {
	router := newTestEngine(&fakeRenderer{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/qr?url=https%3A%2F%2Fexample.com&caption=SCAN+ME", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="leafspace_qr_code_20250102_150405.png"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "\x89PNG fake", w.Body.String())
}

func TestGenerateQRJSONBody(t *testing.T) {
	renderer := &fakeRenderer{}
	router := newTestEngine(renderer)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/qr", strings.NewReader(`{"url":"https://leaf.space","caption":""}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://leaf.space", renderer.last.URL)
	assert.Empty(t, renderer.last.Caption)
}

func TestGenerateQRErrorsAreJSON(t *testing.T) {
	router := newTestEngine(&fakeRenderer{err: &processor.AssetMissingError{Path: "logo.png"}})

	w := postForm(router, "/api/v1/qr", url.Values{"url": {"https://example.com"}})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Logo file not found. Please ensure 'logo.png' is in place."}`, w.Body.String())
}

func TestGenerateQRMalformedJSON(t *testing.T) {
	renderer := &fakeRenderer{}
	router := newTestEngine(renderer)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/qr", strings.NewReader(`{"url":`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, renderer.calls)
}

func TestHealthCheck(t *testing.T) {
	w := httptest.NewRecorder()
	newTestEngine(&fakeRenderer{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
	assert.Contains(t, w.Body.String(), `"assets":{"logo":"healthy","font":"built-in"}`)

	w = httptest.NewRecorder()
	newTestEngine(&fakeRenderer{logoErr: processor.ErrAssetMissing}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"unhealthy"`)
}

func TestRateLimitedFormKeepsInputs(t *testing.T) {
	h := NewQRHandler(&fakeRenderer{}, zap.NewNop())
	router := gin.New()
	router.SetHTMLTemplate(Templates())
	router.POST("/generate", h.RateLimited)

	w := postForm(router, "/generate", url.Values{"url": {"https://leaf.space"}, "caption": {"HI"}})

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), `value="https://leaf.space"`)
	assert.Contains(t, w.Body.String(), "Please wait a moment")
}
