package privatbank

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"privat-rates/pkg/metrics"

	"github.com/sirupsen/logrus"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *logrus.Logger
	metrics    *metrics.ProviderMetrics
}

// NewClient builds an archive API client. m may be nil.
func NewClient(baseURL string, timeout time.Duration, logger *logrus.Logger, m *metrics.ProviderMetrics) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		logger:  logger,
		metrics: m,
	}
}

func (c *Client) buildURL(currency, date string) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}

	q := u.Query()
	q.Set("date", date)
	q.Set("currency", currency)
	// the API switches from XML to JSON on a bare "json" key
	u.RawQuery = "json&" + q.Encode()

	return u.String(), nil
}

func (c *Client) FetchRates(ctx context.Context, currency, date string) (*ExchangeRates, error) {
	reqURL, err := c.buildURL(currency, date)
	if err != nil {
		return nil, err
	}

	log := c.logger.WithFields(logrus.Fields{"currency": currency, "date": date})
	log.Infof("Fetching rates from URL: %s", reqURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		log.Debugf("Failed to create request: %v", err)
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveRequest(currency, 0, time.Since(start))
		log.Debugf("Failed to fetch by API: %v", err)
		return nil, fmt.Errorf("fetch error: %w", err)
	}
	defer resp.Body.Close()

	c.metrics.ObserveRequest(currency, resp.StatusCode, time.Since(start))
	log.Debugf("Response status: %d", resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		log.Debugf("Unexpected response status: %d", resp.StatusCode)
		return nil, &FetchError{Currency: currency, Date: date, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Debugf("Failed to read response body: %v", err)
		return nil, fmt.Errorf("read response body: %w", err)
	}

	log.Debugf("Response body length: %d bytes", len(body))

	var rates ExchangeRates
	if err := json.Unmarshal(body, &rates); err != nil {
		log.Debugf("Failed to parse JSON: %v", err)
		log.Debugf("First 500 chars: %s", string(body)[:min(500, len(body))])
		return nil, fmt.Errorf("parse JSON: %w", err)
	}

	if rates.ExchangeRate == nil {
		log.Debug("No exchangeRate list in response")
		return nil, fmt.Errorf("date %s: %w", date, ErrMissingExchangeRate)
	}

	log.Infof("Successfully parsed %d currencies", len(rates.ExchangeRate))

	return &rates, nil
}
