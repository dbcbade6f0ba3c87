package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/aleister1102/gistwatch/internal/common"
	"github.com/aleister1102/gistwatch/internal/config"
	"github.com/aleister1102/gistwatch/internal/httpclient"
	"github.com/aleister1102/gistwatch/internal/models"
	"github.com/rs/zerolog"
)

// ErrDecode marks a response body that could not be decoded.
var ErrDecode = errors.New("malformed API response")

// maxErrorBodyLength bounds the response text carried in an HTTP error.
const maxErrorBodyLength = 200

// Client talks to the public, unauthenticated GitHub REST API.
type Client struct {
	httpClient *httpclient.HTTPClient
	baseURL    string
	logger     zerolog.Logger
}

type searchUsersResponse struct {
	TotalCount int `json:"total_count"`
}

// NewClient creates a Client from the GitHub and retry configuration.
func NewClient(cfg config.GitHubConfig, retryCfg config.RetryConfig, logger zerolog.Logger) (*Client, error) {
	clientLogger := logger.With().Str("component", "GitHubClient").Logger()

	builder := httpclient.NewHTTPClientBuilder(clientLogger).
		WithTimeout(cfg.HTTPTimeout()).
		WithHTTP2(cfg.EnableHTTP2).
		WithUserAgent(cfg.UserAgent).
		WithMaxContentSize(cfg.MaxResponseSizeMB * 1024 * 1024).
		WithRetry(httpclient.RetryHandlerConfig{
			MaxRetries:       retryCfg.MaxRetries,
			BaseDelay:        retryCfg.BaseDelay(),
			MaxDelay:         retryCfg.MaxDelay(),
			EnableJitter:     retryCfg.EnableJitter,
			RetryStatusCodes: retryCfg.RetryStatusCodes,
		})
	if cfg.AcceptHeader != "" {
		builder = builder.WithHeader("Accept", cfg.AcceptHeader)
	}

	httpClient, err := builder.Build()
	if err != nil {
		return nil, common.WrapError(err, "failed to create GitHub HTTP client")
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.APIBaseURL, "/"),
		logger:     clientLogger,
	}, nil
}

// SearchUserCount returns total_count of the user search for name.
// Partial matches are counted by the API, so callers decide what a count means.
func (c *Client) SearchUserCount(ctx context.Context, name string) (int, error) {
	endpoint := fmt.Sprintf("%s/search/users?q=%s", c.baseURL, url.QueryEscape(name))

	body, _, err := c.get(ctx, endpoint)
	if err != nil {
		return 0, err
	}

	var result searchUsersResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return 0, fmt.Errorf("%w from '%s': %v", ErrDecode, endpoint, err)
	}

	c.logger.Debug().Str("user", name).Int("total_count", result.TotalCount).Msg("User search completed")
	return result.TotalCount, nil
}

// ListGists returns the user's public gists, newest first, with the quota reported by the API.
func (c *Client) ListGists(ctx context.Context, name string) ([]models.Gist, models.RateLimit, error) {
	endpoint := fmt.Sprintf("%s/users/%s/gists", c.baseURL, url.PathEscape(name))

	body, rateLimit, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, rateLimit, err
	}

	var gists []models.Gist
	if err := json.Unmarshal(body, &gists); err != nil {
		return nil, rateLimit, fmt.Errorf("%w from '%s': %v", ErrDecode, endpoint, err)
	}
	return gists, rateLimit, nil
}

// get performs a GET and turns any non-2xx status into a *common.HTTPError.
func (c *Client) get(ctx context.Context, endpoint string) ([]byte, models.RateLimit, error) {
	resp, err := c.httpClient.Get(ctx, endpoint, nil)
	if err != nil {
		return nil, models.RateLimit{}, err
	}

	rateLimit := models.ParseRateLimit(resp.Headers)
	if rateLimit.Known {
		c.logger.Debug().
			Str("url", endpoint).
			Int("ratelimit_remaining", rateLimit.Remaining).
			Time("ratelimit_reset", rateLimit.Reset).
			Msg("API quota")
	}

	if !resp.IsSuccess() {
		return nil, rateLimit, common.NewHTTPErrorWithURL(resp.StatusCode, errorText(resp.Body), endpoint)
	}
	return resp.Body, rateLimit, nil
}

// errorText prefers the API's "message" field and falls back to the raw body.
func errorText(body []byte) string {
	var apiErr struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
		return apiErr.Message
	}
	text := strings.TrimSpace(string(body))
	if len(text) > maxErrorBodyLength {
		text = text[:maxErrorBodyLength] + "..."
	}
	return text
}
