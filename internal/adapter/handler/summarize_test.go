package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/johnquangdev/yt-summarizer/internal/adapter/dto"
	"github.com/johnquangdev/yt-summarizer/internal/adapter/dto/common"
	"github.com/johnquangdev/yt-summarizer/internal/usecase/summary"
	"github.com/johnquangdev/yt-summarizer/pkg/ai"
	"github.com/johnquangdev/yt-summarizer/pkg/config"
	"github.com/johnquangdev/yt-summarizer/pkg/validator"
	"github.com/johnquangdev/yt-summarizer/pkg/youtube"
)

type fakeService struct {
	result *summary.Result
	err    error
	calls  int
	gotURL string
}

func (f *fakeService) SummarizeVideo(_ context.Context, videoURL string) (*summary.Result, error) {
	f.calls++
	f.gotURL = videoURL
	return f.result, f.err
}

func (f *fakeService) SummarizeText(_ context.Context, text string) (*summary.Result, error) {
	return f.result, f.err
}

func newTestServer(svc summary.Service) *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	NewRouter(&config.Config{Server: config.ServerConfig{Environment: "test"}}, NewSummaryController(svc, nil)).Setup(e)
	return e
}

func doRequest(t *testing.T, e *echo.Echo, method, body string) (*httptest.ResponseRecorder, common.ErrorResponse) {
	t.Helper()
	req := httptest.NewRequest(method, "/api/summarize", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var errResp common.ErrorResponse
	if rec.Code != http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp), rec.Body.String())
	}
	return rec, errResp
}

func TestSummarize_Success(t *testing.T) {
	svc := &fakeService{result: &summary.Result{VideoID: "abc123", Summary: "The talk covers Go.", ChunkCount: 1, Passes: 1}}
	e := newTestServer(svc)

	rec, _ := doRequest(t, e, http.MethodPost, `{"videoUrl":"https://youtu.be/abc123"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.SummarizeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "The talk covers Go.", resp.Summary)
	assert.Equal(t, "https://youtu.be/abc123", svc.gotURL)
}

func TestSummarize_MethodNotAllowed(t *testing.T) {
	svc := &fakeService{}
	e := newTestServer(svc)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		rec, resp := doRequest(t, e, method, "")
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, method)
		assert.Equal(t, "Method not allowed", resp.Error)
		assert.Equal(t, http.MethodPost, rec.Header().Get(echo.HeaderAllow))
	}
	assert.Zero(t, svc.calls)
}

func TestSummarize_MissingURL(t *testing.T) {
	svc := &fakeService{}
	e := newTestServer(svc)

	for _, body := range []string{`{}`, `{"videoUrl":""}`} {
		rec, resp := doRequest(t, e, http.MethodPost, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Equal(t, "Video URL is required", resp.Error)
	}
	assert.Zero(t, svc.calls)
}

func TestSummarize_InvalidPayload(t *testing.T) {
	e := newTestServer(&fakeService{})

	rec, resp := doRequest(t, e, http.MethodPost, `{"videoUrl":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request payload", resp.Error)
}

func TestSummarize_InvalidURL(t *testing.T) {
	svc := &fakeService{}
	e := newTestServer(svc)

	rec, resp := doRequest(t, e, http.MethodPost, `{"videoUrl":"https://example.com/video"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid YouTube URL", resp.Error)
	for _, format := range youtube.SupportedURLFormats {
		assert.Contains(t, resp.Details, format)
	}
	assert.Zero(t, svc.calls)
}

func TestSummarize_ServiceErrors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantError   string
		wantDetails string
	}{
		{
			name:        "no english captions",
			err:         fmt.Errorf("%w: %w", summary.ErrCaptionFetch, youtube.ErrNoCaptions),
			wantStatus:  http.StatusBadRequest,
			wantError:   "No English captions available",
			wantDetails: "CC (Closed Captions)",
		},
		{
			name:        "empty transcript",
			err:         summary.ErrEmptyTranscript,
			wantStatus:  http.StatusBadRequest,
			wantError:   "No English captions found for this video",
			wantDetails: "English captions",
		},
		{
			name:        "caption fetch failed",
			err:         fmt.Errorf("%w: %w", summary.ErrCaptionFetch, fmt.Errorf("youtube returned status 503")),
			wantStatus:  http.StatusInternalServerError,
			wantError:   "Failed to summarize video",
			wantDetails: "youtube returned status 503",
		},
		{
			name:        "missing api key",
			err:         fmt.Errorf("failed to generate summary: %w", ai.ErrMissingAPIKey),
			wantStatus:  http.StatusInternalServerError,
			wantError:   "Failed to summarize video",
			wantDetails: "HUGGINGFACE_API_KEY",
		},
		{
			name: "upstream status",
			err: fmt.Errorf("failed to generate summary: %w", &ai.UpstreamError{
				StatusCode: http.StatusUnauthorized,
				Status:     "401 Unauthorized",
				Body:       "invalid token",
			}),
			wantStatus:  http.StatusInternalServerError,
			wantError:   "Failed to summarize video",
			wantDetails: "Hugging Face API error: 401 Unauthorized - invalid token",
		},
		{
			name:        "invalid upstream response",
			err:         fmt.Errorf("failed to generate summary: %w", ai.ErrInvalidResponse),
			wantStatus:  http.StatusInternalServerError,
			wantError:   "Failed to summarize video",
			wantDetails: "API key is valid",
		},
		{
			name:        "unexpected",
			err:         fmt.Errorf("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantError:   "Failed to summarize video",
			wantDetails: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestServer(&fakeService{err: tt.err})

			rec, resp := doRequest(t, e, http.MethodPost, `{"videoUrl":"https://www.youtube.com/watch?v=abc123"}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantError, resp.Error)
			assert.Contains(t, resp.Details, tt.wantDetails)
		})
	}
}

func TestHealthCheck(t *testing.T) {
	e := newTestServer(&fakeService{})
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp common.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "test", resp.Environment)
}

func TestSummarize_LogsJobMetadata(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	svc := &fakeService{result: &summary.Result{VideoID: "abc123", Summary: "ok", ChunkCount: 1, Passes: 1}}
	e := echo.New()
	e.Validator = validator.New()
	NewRouter(&config.Config{}, NewSummaryController(svc, zap.New(core))).Setup(e)

	req := httptest.NewRequest(http.MethodPost, "/api/summarize", strings.NewReader(`{"videoUrl":"https://youtu.be/abc123"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderXRequestID, "req-42")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	entries := logs.FilterMessage("✅ Summary generated").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "req-42", fields["job_id"])
	assert.Contains(t, fields, "elapsed")
}
