package exchangerateapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/khaleelibraheem/abujabureaudechange-backend/internal/apperrors"
	"github.com/khaleelibraheem/abujabureaudechange-backend/internal/core/domain"
	"github.com/khaleelibraheem/abujabureaudechange-backend/internal/core/ports/providers"
	"github.com/khaleelibraheem/abujabureaudechange-backend/internal/platform/config"
)

// Client implements the providers.RateProvider port against the
// exchangerate-api.com v6 endpoints.
// See: https://www.exchangerate-api.com/docs/standard-requests
type Client struct {
	apiKey     string
	baseURL    string // e.g. https://v6.exchangerate-api.com/v6
	httpClient *http.Client
	logger     *slog.Logger
}

// responseV6 is the subset of the v6 response the core extracts. The wire
// format beyond these fields is not ours to specify.
type responseV6 struct {
	Result             string             `json:"result"`
	BaseCode           string             `json:"base_code"`
	ConversionRates    map[string]float64 `json:"conversion_rates"`
	TimeLastUpdateUnix int64              `json:"time_last_update_unix"`
	ErrorType          string             `json:"error-type,omitempty"`
}

// NewClient creates a new exchangerate-api.com provider using config.
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		apiKey:  cfg.ExchangeAPIKey,
		baseURL: cfg.ExchangeAPIURL,
		httpClient: &http.Client{
			Timeout: cfg.ExchangeHTTPTimeout,
		},
		logger: logger,
	}
}

// FetchLatest retrieves the current rate table for the base currency.
func (c *Client) FetchLatest(ctx context.Context, baseCurrency string) (*domain.RateSnapshot, error) {
	url := fmt.Sprintf("%s/%s/latest/%s", c.baseURL, c.apiKey, baseCurrency)
	return c.fetchSnapshot(ctx, url, baseCurrency)
}

// FetchHistorical retrieves the rate table for the base currency on a
// specific calendar day.
func (c *Client) FetchHistorical(ctx context.Context, baseCurrency string, date time.Time) (*domain.RateSnapshot, error) {
	url := fmt.Sprintf("%s/%s/history/%s/%d/%d/%d",
		c.baseURL, c.apiKey, baseCurrency, date.Year(), int(date.Month()), date.Day())
	return c.fetchSnapshot(ctx, url, baseCurrency)
}

// Name returns the provider's name.
func (c *Client) Name() string {
	return "exchangerate-api"
}

func (c *Client) fetchSnapshot(ctx context.Context, url, baseCurrency string) (*domain.RateSnapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build request: %v", apperrors.ErrUpstreamUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Timeouts and transport errors are indistinguishable to callers.
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("Upstream returned non-OK status",
			slog.String("base", baseCurrency),
			slog.Int("status", resp.StatusCode),
		)
		return nil, fmt.Errorf("%w: status %d", apperrors.ErrUpstreamUnavailable, resp.StatusCode)
	}

	var apiResp responseV6
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", apperrors.ErrUpstreamUnavailable, err)
	}

	if apiResp.Result != "success" {
		c.logger.Warn("Upstream reported an error",
			slog.String("base", baseCurrency),
			slog.String("error_type", apiResp.ErrorType),
		)
		return nil, fmt.Errorf("%w: result=%s error-type=%s", apperrors.ErrUpstreamUnavailable, apiResp.Result, apiResp.ErrorType)
	}
	if len(apiResp.ConversionRates) == 0 {
		return nil, fmt.Errorf("%w: response carries no conversion_rates", apperrors.ErrUpstreamUnavailable)
	}

	if apiResp.TimeLastUpdateUnix > 0 {
		c.logger.Debug("Upstream rate table decoded",
			slog.String("base", baseCurrency),
			slog.Int("rates", len(apiResp.ConversionRates)),
			slog.Time("upstream_updated_at", time.Unix(apiResp.TimeLastUpdateUnix, 0)),
		)
	}

	base := apiResp.BaseCode
	if base == "" {
		base = baseCurrency
	}

	return &domain.RateSnapshot{
		BaseCurrency: base,
		Rates:        apiResp.ConversionRates,
		FetchedAt:    time.Now(),
	}, nil
}

// Ensure Client implements the RateProvider port.
var _ providers.RateProvider = (*Client)(nil)
