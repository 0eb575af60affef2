// Package transcription turns recorded interview answers into transcripts,
// either by calling a remote Whisper HTTP service or by loading transcript
// files produced offline.
package transcription

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/interview-coach/internal/types"
)

// Config configures the remote Whisper client.
type Config struct {
	BaseURL        string
	Token          string // optional, sent as Bearer
	TimeoutSeconds int    // default 120
	Retries        int    // default 3
	Model          string // default "base"
}

// Client calls a remote Whisper HTTP API to transcribe audio files.
type Client struct {
	cfg         Config
	client      *http.Client
	backoffBase time.Duration // tests override to keep retries fast
}

// NewClient creates a remote Whisper client with defaults applied.
func NewClient(cfg Config) *Client {
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = 120
	}
	if cfg.Retries <= 0 {
		cfg.Retries = 3
	}
	if cfg.Model == "" {
		cfg.Model = "base"
	}
	return &Client{
		cfg:         cfg,
		backoffBase: time.Second,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}
}

// transcribeResponse mirrors the JSON returned by the Whisper service.
type transcribeResponse struct {
	Text     string `json:"text"`
	Segments []struct {
		Start float64 `json:"start"`
		End   float64 `json:"end"`
		Text  string  `json:"text"`
	} `json:"segments"`
	Duration float64 `json:"duration"`
}

// TranscribeFile uploads the audio file and returns the parsed transcript.
// Transient failures (network errors, 5xx) are retried with exponential
// backoff; other failures return immediately.
func (c *Client) TranscribeFile(ctx context.Context, filePath string) (*types.Transcript, error) {
	var lastErr error
	for attempt := 0; attempt <= c.cfg.Retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.backoff(attempt)):
			}
		}

		result, err := c.doTranscribe(ctx, filePath)
		if err == nil {
			return result, nil
		}
		if !isRetryable(err) {
			return nil, fmt.Errorf("transcribe %s: %w", filepath.Base(filePath), err)
		}
		lastErr = err
	}
	return nil, fmt.Errorf("transcribe %s: all %d retries exhausted: %w", filepath.Base(filePath), c.cfg.Retries, lastErr)
}

// doTranscribe performs a single multipart POST to the transcription endpoint.
func (c *Client) doTranscribe(ctx context.Context, filePath string) (*types.Transcript, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open audio file: %w", err)
	}
	defer f.Close()

	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)

	// Feed the multipart body through the pipe so large recordings are
	// streamed rather than buffered.
	errCh := make(chan error, 1)
	go func() {
		defer pw.Close()

		part, err := writer.CreateFormFile("file", filepath.Base(filePath))
		if err != nil {
			errCh <- fmt.Errorf("create form file: %w", err)
			return
		}
		if _, err := io.Copy(part, f); err != nil {
			errCh <- fmt.Errorf("copy audio data: %w", err)
			return
		}
		_ = writer.WriteField("model", c.cfg.Model)
		_ = writer.WriteField("language", "en")
		errCh <- writer.Close()
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/v1/transcribe", pr)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &retryableError{err: fmt.Errorf("http request: %w", err)}
	}
	defer resp.Body.Close()

	if writeErr := <-errCh; writeErr != nil {
		return nil, fmt.Errorf("multipart write: %w", writeErr)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &retryableError{err: fmt.Errorf("read response body: %w", err)}
	}
	if resp.StatusCode >= 500 {
		return nil, &retryableError{err: fmt.Errorf("server error %d: %s", resp.StatusCode, truncate(body, 200))}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("http %d: %s", resp.StatusCode, truncate(body, 200))
	}

	var parsed transcribeResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	transcript := &types.Transcript{
		Text:     parsed.Text,
		Duration: parsed.Duration,
		Segments: make([]types.Segment, len(parsed.Segments)),
	}
	for i, s := range parsed.Segments {
		transcript.Segments[i] = types.Segment{Start: s.Start, End: s.End, Text: s.Text}
	}
	return transcript, nil
}

// HealthCheck queries the service health endpoint.
func (c *Client) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/v1/health", nil)
	if err != nil {
		return fmt.Errorf("create health request: %w", err)
	}
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unhealthy: http %d: %s", resp.StatusCode, truncate(body, 200))
	}
	return nil
}

// retryableError wraps errors that should trigger a retry.
type retryableError struct {
	err error
}

func (e *retryableError) Error() string { return e.err.Error() }
func (e *retryableError) Unwrap() error { return e.err }

func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	_, ok := err.(*retryableError)
	return ok
}

// backoff returns base * 2^(attempt-1) plus up to 25% jitter.
func (c *Client) backoff(attempt int) time.Duration {
	base := c.backoffBase
	if base <= 0 {
		base = time.Second
	}
	delay := base
	for i := 1; i < attempt; i++ {
		delay *= 2
	}
	jitter := time.Duration(rand.Int63n(int64(delay/4) + 1))
	return delay + jitter
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
