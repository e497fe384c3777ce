package service

import (
	"context"
	"fmt"
	"time"

	"privat-rates/internal/adapter/privatbank"

	"github.com/sirupsen/logrus"
)

// DatedRates pairs the requested date with the payload returned for it.
type DatedRates struct {
	Date    string
	Payload *privatbank.ExchangeRates
}

type ConverterService struct {
	provider privatbank.ExchangeRateProvider
	logger   *logrus.Logger
	now      func() time.Time
}

func NewConverterService(provider privatbank.ExchangeRateProvider, logger *logrus.Logger) *ConverterService {
	return &ConverterService{
		provider: provider,
		logger:   logger,
		now:      time.Now,
	}
}

// DateRange returns days dates ending at today, most recent first.
func DateRange(today time.Time, days int) []string {
	dates := make([]string, 0, max(days, 0))
	for i := 0; i < days; i++ {
		dates = append(dates, today.AddDate(0, 0, -i).Format(privatbank.DateLayout))
	}
	return dates
}

// GetRates fetches one payload per date, one request at a time. The first
// failure aborts the run.
func (s *ConverterService) GetRates(ctx context.Context, currency string, days int) ([]DatedRates, error) {
	dates := DateRange(s.now(), days)
	s.logger.Infof("Fetching %s rates for %d day(s)", currency, len(dates))

	rates := make([]DatedRates, 0, len(dates))
	for _, date := range dates {
		payload, err := s.provider.FetchRates(ctx, currency, date)
		if err != nil {
			s.logger.WithError(err).Debugf("Failed to fetch %s rates for %s", currency, date)
			return nil, fmt.Errorf("fetch %s rates for %s: %w", currency, date, err)
		}
		rates = append(rates, DatedRates{Date: date, Payload: payload})
	}

	s.logger.Infof("Fetched %d payload(s) for %s", len(rates), currency)
	return rates, nil
}
