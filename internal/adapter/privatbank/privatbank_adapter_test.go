package privatbank

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"privat-rates/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBody = `{
	"date": "01.12.2014",
	"bank": "PB",
	"baseCurrency": 980,
	"baseCurrencyLit": "UAH",
	"exchangeRate": [
		{"baseCurrency": "UAH", "currency": "AUD", "saleRateNB": 12.8319250, "purchaseRateNB": 12.8319250},
		{"baseCurrency": "UAH", "currency": "EUR", "saleRateNB": 18.7949200, "purchaseRateNB": 18.7949200, "saleRate": 20.0000000, "purchaseRate": 19.2000000},
		{"baseCurrency": "UAH", "currency": "USD", "saleRateNB": 15.0564130, "purchaseRateNB": 15.0564130, "saleRate": 15.7000000, "purchaseRate": 15.3500000}
	]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc, m *metrics.ProviderMetrics) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger, _ := test.NewNullLogger()
	return NewClient(srv.URL+"/p24api/exchange_rates", 5*time.Second, logger, m)
}

func TestFetchRates_Success(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/p24api/exchange_rates", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleBody))
	}, nil)

	rates, err := client.FetchRates(context.Background(), "EUR", "01.12.2014")
	require.NoError(t, err)

	assert.Equal(t, "json&currency=EUR&date=01.12.2014", gotQuery)
	assert.Equal(t, "01.12.2014", rates.Date)
	assert.Equal(t, "PB", rates.Bank)
	assert.Equal(t, 980, rates.BaseCurrency)
	assert.Equal(t, "UAH", rates.BaseCurrencyLit)
	require.Len(t, rates.ExchangeRate, 3)

	eur := rates.ExchangeRate[1]
	assert.Equal(t, "EUR", eur.Currency)
	assert.True(t, eur.SaleRate.Valid)
	assert.True(t, eur.SaleRate.Decimal.Equal(decimal.RequireFromString("20")))
	assert.True(t, eur.PurchaseRate.Decimal.Equal(decimal.RequireFromString("19.2")))

	aud := rates.ExchangeRate[0]
	assert.False(t, aud.SaleRate.Valid)
	assert.False(t, aud.PurchaseRate.Valid)
	assert.True(t, aud.SaleRateNB.Valid)
}

func TestFetchRates_NonOKStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}, nil)

	rates, err := client.FetchRates(context.Background(), "USD", "19.10.2026")
	assert.Nil(t, rates)

	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, "USD", fetchErr.Currency)
	assert.Equal(t, "19.10.2026", fetchErr.Date)
	assert.Equal(t, http.StatusServiceUnavailable, fetchErr.StatusCode)
	assert.EqualError(t, err, "failed to fetch data for USD on date 19.10.2026: status 503")
}

func TestFetchRates_MalformedJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"date": `))
	}, nil)

	_, err := client.FetchRates(context.Background(), "EUR", "19.10.2026")
	assert.ErrorContains(t, err, "parse JSON")
}

func TestFetchRates_MissingExchangeRate(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"date": "19.10.2026", "bank": "PB"}`))
	}, nil)

	_, err := client.FetchRates(context.Background(), "EUR", "19.10.2026")
	assert.ErrorIs(t, err, ErrMissingExchangeRate)
}

func TestFetchRates_EmptyExchangeRate(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"date": "19.10.2026", "bank": "PB", "exchangeRate": []}`))
	}, nil)

	rates, err := client.FetchRates(context.Background(), "EUR", "19.10.2026")
	require.NoError(t, err)
	assert.Empty(t, rates.ExchangeRate)
}

func TestFetchRates_CanceledContext(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleBody))
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.FetchRates(ctx, "EUR", "19.10.2026")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFetchRates_RecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewProviderMetrics(reg)

	status := http.StatusOK
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(sampleBody))
	}, m)

	_, err := client.FetchRates(context.Background(), "EUR", "19.10.2026")
	require.NoError(t, err)

	status = http.StatusBadGateway
	_, err = client.FetchRates(context.Background(), "EUR", "18.10.2026")
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("EUR", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("EUR", "502")))
}

func TestExchangeRates_Find(t *testing.T) {
	rates := &ExchangeRates{
		ExchangeRate: []ExchangeRate{
			{Currency: "EUR"},
			{Currency: "USD"},
		},
	}

	rate, ok := rates.Find("USD")
	assert.True(t, ok)
	assert.Equal(t, "USD", rate.Currency)

	_, ok = rates.Find("usd")
	assert.False(t, ok)

	_, ok = rates.Find("GBP")
	assert.False(t, ok)
}
