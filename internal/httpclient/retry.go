package httpclient

import (
	"context"
	"math"
	"math/rand"
	"strconv"
	"time"

	"github.com/aleister1102/gistwatch/internal/common"
	"github.com/rs/zerolog"
)

// RetryHandler handles HTTP request retries with exponential backoff
type RetryHandler struct {
	maxRetries       int
	baseDelay        time.Duration
	maxDelay         time.Duration
	enableJitter     bool
	retryStatusCodes map[int]bool
	logger           zerolog.Logger
}

// RetryHandlerConfig configuration for retry handler
type RetryHandlerConfig struct {
	MaxRetries       int           `json:"max_retries"`
	BaseDelay        time.Duration `json:"base_delay"`
	MaxDelay         time.Duration `json:"max_delay"`
	EnableJitter     bool          `json:"enable_jitter"`
	RetryStatusCodes []int         `json:"retry_status_codes"`
}

// NewRetryHandler creates a new retry handler
func NewRetryHandler(config RetryHandlerConfig, logger zerolog.Logger) *RetryHandler {
	statusCodeMap := make(map[int]bool)
	for _, code := range config.RetryStatusCodes {
		statusCodeMap[code] = true
	}

	return &RetryHandler{
		maxRetries:       config.MaxRetries,
		baseDelay:        config.BaseDelay,
		maxDelay:         config.MaxDelay,
		enableJitter:     config.EnableJitter,
		retryStatusCodes: statusCodeMap,
		logger:           logger.With().Str("component", "RetryHandler").Logger(),
	}
}

// ShouldRetry determines if a request should be retried based on status code
func (rh *RetryHandler) ShouldRetry(statusCode int, attempt int) bool {
	if attempt >= rh.maxRetries {
		return false
	}
	return rh.retryStatusCodes[statusCode]
}

// CalculateDelay calculates the delay for the next retry attempt using exponential backoff
func (rh *RetryHandler) CalculateDelay(attempt int) time.Duration {
	delay := rh.baseDelay
	if attempt > 0 {
		delay = rh.baseDelay * time.Duration(math.Pow(2, float64(attempt)))
	}

	if rh.maxDelay > 0 && delay > rh.maxDelay {
		delay = rh.maxDelay
	}

	if rh.enableJitter {
		if spread := delay.Milliseconds() / 10; spread > 0 {
			delay += time.Duration(rand.Int63n(spread)) * time.Millisecond
		}
	}

	return delay
}

// retryAfter honours a Retry-After header given in seconds, capped at maxDelay
func (rh *RetryHandler) retryAfter(resp *HTTPResponse) (time.Duration, bool) {
	if resp == nil || resp.Headers == nil {
		return 0, false
	}
	secs, err := strconv.Atoi(resp.Headers.Get("Retry-After"))
	if err != nil || secs < 0 {
		return 0, false
	}
	delay := time.Duration(secs) * time.Second
	if rh.maxDelay > 0 && delay > rh.maxDelay {
		delay = rh.maxDelay
	}
	return delay, true
}

// WaitForRetry waits before the next attempt or returns the context error
func (rh *RetryHandler) WaitForRetry(ctx context.Context, attempt int, resp *HTTPResponse, url string) error {
	delay, ok := rh.retryAfter(resp)
	if !ok {
		delay = rh.CalculateDelay(attempt)
	}

	rh.logger.Warn().
		Str("url", url).
		Int("status_code", resp.StatusCode).
		Int("attempt", attempt+1).
		Int("max_retries", rh.maxRetries).
		Dur("delay", delay).
		Msg("Retryable status, waiting before retry")

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// DoWithRetry executes an HTTP request with retry logic.
// Only listed status codes are retried; transport errors are returned at once.
func (rh *RetryHandler) DoWithRetry(ctx context.Context, doFunc func(*HTTPRequest) (*HTTPResponse, error), req *HTTPRequest) (*HTTPResponse, error) {
	var lastResp *HTTPResponse

	for attempt := 0; attempt <= rh.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		resp, err := doFunc(req)
		if err != nil {
			return nil, err
		}
		lastResp = resp

		if !rh.ShouldRetry(resp.StatusCode, attempt) {
			break
		}
		if err := rh.WaitForRetry(ctx, attempt, resp, req.URL); err != nil {
			return nil, err
		}
	}

	if lastResp != nil && rh.retryStatusCodes[lastResp.StatusCode] {
		err := common.NewHTTPErrorWithURL(lastResp.StatusCode, truncate(lastResp.Body, 256), req.URL)
		return lastResp, common.WrapError(err, "all retry attempts failed")
	}

	return lastResp, nil
}

// truncate returns at most n bytes of body as a string
func truncate(body []byte, n int) string {
	if len(body) > n {
		return string(body[:n])
	}
	return string(body)
}
