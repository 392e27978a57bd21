package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/johnquangdev/yt-summarizer/pkg/config"
)

var (
	// ErrMissingAPIKey means no credential is configured; no request is sent.
	ErrMissingAPIKey = errors.New("Hugging Face API key is not configured. Please add HUGGINGFACE_API_KEY to your .env file")
	// ErrInvalidResponse means the body lacks the expected summary field.
	ErrInvalidResponse = errors.New("invalid response from Hugging Face API")
)

// UpstreamError is returned for transport failures and non-2xx responses.
// StatusCode is zero when no response was received.
type UpstreamError struct {
	StatusCode int
	Status     string
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Hugging Face API error: %v", e.Err)
	}
	if e.Body != "" {
		return fmt.Sprintf("Hugging Face API error: %s - %s", e.Status, e.Body)
	}
	return fmt.Sprintf("Hugging Face API error: %s", e.Status)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// HuggingFaceClient is a minimal client for the Hugging Face inference API
type HuggingFaceClient struct {
	apiKey   string
	endpoint string
	params   SummaryParameters
	client   *http.Client
	limiter  *rate.Limiter // nil means unlimited
}

// NewHuggingFaceClient creates a client using values from the provided config.
// Pass a nil config to use the public endpoint and default parameters.
func NewHuggingFaceClient(cfg *config.HuggingFaceConfig) *HuggingFaceClient {
	base := "https://api-inference.huggingface.co"
	model := "facebook/bart-large-cnn"
	timeout := 60 * time.Second
	params := DefaultSummaryParameters()

	var (
		apiKey  string
		limiter *rate.Limiter
	)
	if cfg != nil {
		apiKey = cfg.APIKey
		if cfg.RequestsPerSecond > 0 {
			limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
		}
		if cfg.BaseURL != "" {
			base = cfg.BaseURL
		}
		if cfg.Model != "" {
			model = cfg.Model
		}
		if cfg.Timeout > 0 {
			timeout = cfg.Timeout
		}
		if cfg.MaxSummaryLength > 0 {
			params.MaxLength = cfg.MaxSummaryLength
		}
		if cfg.MinSummaryLength > 0 {
			params.MinLength = cfg.MinSummaryLength
		}
		if cfg.NumBeams > 0 {
			params.NumBeams = cfg.NumBeams
		}
	}

	return &HuggingFaceClient{
		apiKey:   apiKey,
		endpoint: strings.TrimRight(base, "/") + "/models/" + model,
		params:   params,
		client:   &http.Client{Timeout: timeout},
		limiter:  limiter,
	}
}

// SummaryParameters are the generation parameters sent with each request.
// Decoding is deterministic: no sampling, beam search only.
type SummaryParameters struct {
	MaxLength     int  `json:"max_length"`
	MinLength     int  `json:"min_length"`
	DoSample      bool `json:"do_sample"`
	NumBeams      int  `json:"num_beams"`
	EarlyStopping bool `json:"early_stopping"`
}

// DefaultSummaryParameters returns the parameters tuned for bart-large-cnn
func DefaultSummaryParameters() SummaryParameters {
	return SummaryParameters{
		MaxLength:     150,
		MinLength:     30,
		DoSample:      false,
		NumBeams:      4,
		EarlyStopping: true,
	}
}

// SummarizeRequest is the request body for summarization models
type SummarizeRequest struct {
	Inputs     string            `json:"inputs"`
	Parameters SummaryParameters `json:"parameters"`
}

// SummarizeResponse is one element of the response array
type SummarizeResponse struct {
	SummaryText string `json:"summary_text"`
}

// Summarize sends text to the summarization model and returns the summary
func (h *HuggingFaceClient) Summarize(ctx context.Context, text string) (string, error) {
	if h.apiKey == "" {
		return "", ErrMissingAPIKey
	}
	if h.limiter != nil {
		if err := h.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	b, err := json.Marshal(SummarizeRequest{Inputs: text, Parameters: h.params})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+h.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return "", &UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", &UpstreamError{
			StatusCode: resp.StatusCode,
			Status:     http.StatusText(resp.StatusCode),
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var results []SummarizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if len(results) == 0 || results[0].SummaryText == "" {
		return "", ErrInvalidResponse
	}
	return results[0].SummaryText, nil
}
