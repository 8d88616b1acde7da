package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"
)

// RateService looks up suggested exchange rates from an external provider.
// A failed lookup is never fatal: callers fall back to manual rate entry.
type RateService struct {
	client  *http.Client
	baseURL string
}

// NewRateService creates a new rate service configured from the environment
func NewRateService() *RateService {
	return &RateService{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: os.Getenv("EXCHANGE_RATE_API_URL"),
	}
}

type rateResponse struct {
	Currency string  `json:"currency"`
	Date     string  `json:"date"`
	Rate     float64 `json:"rate"`
}

// LookupRate fetches the rate quoted as local units of the given currency per
// one base currency unit, for the given date.
func (s *RateService) LookupRate(date time.Time, currency string) (float64, error) {
	if s.baseURL == "" {
		return 0, fmt.Errorf("exchange rate provider not configured")
	}

	endpoint := fmt.Sprintf("%s/rates?currency=%s&date=%s",
		s.baseURL, url.QueryEscape(currency), date.Format("2006-01-02"))

	resp, err := s.client.Get(endpoint)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch exchange rate: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("exchange rate provider returned status %d", resp.StatusCode)
	}

	var body rateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("failed to decode exchange rate response: %v", err)
	}

	if body.Rate <= 0 {
		return 0, fmt.Errorf("exchange rate provider returned non-positive rate %.6f", body.Rate)
	}

	return body.Rate, nil
}
