package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/puchie21/curren/internal/models"
)

const (
	defaultBaseCode    = "USD"
	defaultProviderURL = "https://v6.exchangerate-api.com"
	defaultHTTPTimeout = 10 * time.Second
	providerTimeLayout = time.RFC1123
	providerOKResult   = "success"
	providerLatestPath = "/v6/%s/latest/%s" // api key, base code
)

// fallbackRates is the static baseline table, expressed relative to USD.
var fallbackRates = map[string]float64{
	"USD": 1.0,
	"EUR": 0.85,
	"GBP": 0.73,
	"JPY": 110.0,
	"AUD": 1.35,
	"CAD": 1.25,
	"CHF": 0.92,
	"CNY": 6.45,
	"INR": 74.5,
	"BRL": 5.2,
}

// RatesService resolves snapshots from the live provider when an API key is
// configured, and from the fallback table otherwise or on any failure.
// A single attempt only: no retries, no backoff.
type RatesService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewRatesService(rc RatesConfig) *RatesService {
	if rc.BaseURL == "" {
		rc.BaseURL = defaultProviderURL
	}
	if rc.Client == nil {
		rc.Client = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &RatesService{
		apiKey:  rc.APIKey,
		baseURL: strings.TrimSuffix(rc.BaseURL, "/"),
		client:  rc.Client,
	}
}

var _ Rates = (*RatesService)(nil)

// Resolve returns the snapshot for baseCode. Empty base defaults to USD.
func (s *RatesService) Resolve(ctx context.Context, baseCode string) models.RateSnapshot {
	base := strings.ToUpper(strings.TrimSpace(baseCode))
	if base == "" {
		base = defaultBaseCode
	}

	if s.apiKey != "" {
		if snap, err := s.fetchLive(ctx, base); err == nil {
			return snap
		}
		// fall through to the fallback table on any provider failure
	}
	return s.fallbackSnapshot(base)
}

// providerResponse mirrors the provider's latest-rates payload.
type providerResponse struct {
	Result            string             `json:"result"`
	BaseCode          string             `json:"base_code"`
	ConversionRates   map[string]float64 `json:"conversion_rates"`
	TimeLastUpdateUTC string             `json:"time_last_update_utc"`
}

// fetchLive issues one GET to the provider and returns its snapshot verbatim.
func (s *RatesService) fetchLive(ctx context.Context, base string) (models.RateSnapshot, error) {
	reqURL := s.baseURL + fmt.Sprintf(providerLatestPath, s.apiKey, base)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return models.RateSnapshot{}, fmt.Errorf("create rates request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return models.RateSnapshot{}, fmt.Errorf("fetch rates for %s: %w", base, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return models.RateSnapshot{}, fmt.Errorf("rates provider returned status %d", resp.StatusCode)
	}

	var pr providerResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return models.RateSnapshot{}, fmt.Errorf("decode rates response: %w", err)
	}
	if pr.Result != "" && pr.Result != providerOKResult {
		return models.RateSnapshot{}, fmt.Errorf("rates provider result %q", pr.Result)
	}
	if len(pr.ConversionRates) == 0 {
		return models.RateSnapshot{}, fmt.Errorf("rates provider returned no rates for %s", base)
	}

	return models.RateSnapshot{
		BaseCode:          pr.BaseCode,
		ConversionRates:   pr.ConversionRates,
		TimeLastUpdateUTC: pr.TimeLastUpdateUTC,
	}, nil
}

// fallbackSnapshot computes cross rates from the static USD-relative table.
// An unknown base is treated as USD-equivalent (baseline 1), never an error.
func (s *RatesService) fallbackSnapshot(base string) models.RateSnapshot {
	baseline, ok := fallbackRates[base]
	if !ok || baseline == 0 {
		baseline = 1
	}

	rates := make(map[string]float64, len(fallbackRates))
	for code, usdRate := range fallbackRates {
		rates[code] = usdRate / baseline
	}

	return models.RateSnapshot{
		BaseCode:          base,
		ConversionRates:   rates,
		TimeLastUpdateUTC: time.Now().UTC().Format(providerTimeLayout),
	}
}
