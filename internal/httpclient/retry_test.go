package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aleister1102/gistwatch/internal/common"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryHandler(t *testing.T) {
	var requestCount int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&requestCount, 1) <= 2 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := NewHTTPClientBuilder(zerolog.Nop()).
		WithRetry(RetryHandlerConfig{
			MaxRetries:       3,
			BaseDelay:        time.Millisecond,
			MaxDelay:         10 * time.Millisecond,
			RetryStatusCodes: []int{http.StatusTooManyRequests},
		}).
		Build()
	require.NoError(t, err)

	resp, err := client.Get(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(3), atomic.LoadInt32(&requestCount))
}

func TestRetryHandler_MaxRetriesExceeded(t *testing.T) {
	var requestCount int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requestCount, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client, err := NewHTTPClientBuilder(zerolog.Nop()).
		WithRetry(RetryHandlerConfig{
			MaxRetries:       2,
			BaseDelay:        time.Millisecond,
			MaxDelay:         10 * time.Millisecond,
			RetryStatusCodes: []int{http.StatusServiceUnavailable},
		}).
		Build()
	require.NoError(t, err)

	resp, err := client.Get(context.Background(), server.URL, nil)
	require.Error(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, int32(3), atomic.LoadInt32(&requestCount)) // Initial call + 2 retries
	assert.Equal(t, http.StatusServiceUnavailable, common.HTTPStatusCode(err))
}

func TestRetryHandler_DisabledByZeroRetries(t *testing.T) {
	var requestCount int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requestCount, 1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client, err := NewHTTPClientBuilder(zerolog.Nop()).
		WithRetry(RetryHandlerConfig{MaxRetries: 0, RetryStatusCodes: []int{http.StatusTooManyRequests}}).
		Build()
	require.NoError(t, err)

	resp, err := client.Get(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&requestCount))
}

func TestRetryHandler_ContextCancelledDuringWait(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client, err := NewHTTPClientBuilder(zerolog.Nop()).
		WithRetry(RetryHandlerConfig{
			MaxRetries:       3,
			BaseDelay:        time.Hour,
			MaxDelay:         time.Hour,
			RetryStatusCodes: []int{http.StatusTooManyRequests},
		}).
		Build()
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = client.Get(ctx, server.URL, nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRetryHandler_CalculateDelay(t *testing.T) {
	rh := NewRetryHandler(RetryHandlerConfig{
		MaxRetries: 5,
		BaseDelay:  time.Second,
		MaxDelay:   5 * time.Second,
	}, zerolog.Nop())

	assert.Equal(t, time.Second, rh.CalculateDelay(0))
	assert.Equal(t, 2*time.Second, rh.CalculateDelay(1))
	assert.Equal(t, 4*time.Second, rh.CalculateDelay(2))
	assert.Equal(t, 5*time.Second, rh.CalculateDelay(3))
}

func TestRetryHandler_RetryAfterHeader(t *testing.T) {
	rh := NewRetryHandler(RetryHandlerConfig{MaxDelay: 30 * time.Second}, zerolog.Nop())

	resp := &HTTPResponse{StatusCode: http.StatusTooManyRequests, Headers: http.Header{}}
	resp.Headers.Set("Retry-After", "7")
	delay, ok := rh.retryAfter(resp)
	assert.True(t, ok)
	assert.Equal(t, 7*time.Second, delay)

	resp.Headers.Set("Retry-After", "3600")
	delay, _ = rh.retryAfter(resp)
	assert.Equal(t, 30*time.Second, delay)
}
