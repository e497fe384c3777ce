package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"privat-rates/internal/entity"
	"privat-rates/internal/service"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/currency"
)

const (
	MinDays = 1
	MaxDays = 10
)

var (
	ErrDaysOutOfRange   = fmt.Errorf("number of days must be between %d and %d", MinDays, MaxDays)
	ErrInvalidCurrency  = errors.New("invalid currency code")
	ErrMissingRateField = errors.New("rate entry is missing saleRate or purchaseRate")
)

type RatesUsecase struct {
	converter service.CurrencyConverter
	logger    *logrus.Logger
}

func NewRatesUsecase(converter service.CurrencyConverter, logger *logrus.Logger) *RatesUsecase {
	return &RatesUsecase{
		converter: converter,
		logger:    logger,
	}
}

func ValidateDays(days int) error {
	if days < MinDays || days > MaxDays {
		return ErrDaysOutOfRange
	}
	return nil
}

// NormalizeCurrency upper-cases code and checks it against ISO 4217.
func NormalizeCurrency(code string) (string, error) {
	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return "", fmt.Errorf("%w %q", ErrInvalidCurrency, code)
	}
	return unit.String(), nil
}

// ExtractRates picks the entry for code out of every payload. Dates whose
// payload has no such entry are skipped.
func ExtractRates(dated []service.DatedRates, code string) ([]entity.Rate, error) {
	rates := make([]entity.Rate, 0, len(dated))
	for _, d := range dated {
		if d.Payload == nil {
			continue
		}

		entry, ok := d.Payload.Find(code)
		if !ok {
			continue
		}

		if !entry.SaleRate.Valid || !entry.PurchaseRate.Valid {
			return nil, fmt.Errorf("%s on %s: %w", code, d.Date, ErrMissingRateField)
		}

		rates = append(rates, entity.Rate{
			Date:         d.Date,
			Currency:     entry.Currency,
			SaleRate:     entry.SaleRate.Decimal,
			PurchaseRate: entry.PurchaseRate.Decimal,
		})
	}
	return rates, nil
}

func (uc *RatesUsecase) GetReport(ctx context.Context, code string, days int) (*CurrencyReport, error) {
	if err := ValidateDays(days); err != nil {
		uc.logger.Debugf("Rejected days value %d", days)
		return nil, err
	}

	code, err := NormalizeCurrency(code)
	if err != nil {
		uc.logger.WithError(err).Debug("Rejected currency code")
		return nil, err
	}

	return uc.report(ctx, code, days)
}

// GetReports runs every currency in order and returns nothing unless all of
// them succeed.
func (uc *RatesUsecase) GetReports(ctx context.Context, codes []string, days int) ([]CurrencyReport, error) {
	if err := ValidateDays(days); err != nil {
		uc.logger.Debugf("Rejected days value %d", days)
		return nil, err
	}

	normalized := make([]string, 0, len(codes))
	for _, code := range codes {
		c, err := NormalizeCurrency(code)
		if err != nil {
			uc.logger.WithError(err).Debug("Rejected currency code")
			return nil, err
		}
		normalized = append(normalized, c)
	}

	reports := make([]CurrencyReport, 0, len(normalized))
	for _, code := range normalized {
		report, err := uc.report(ctx, code, days)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *report)
	}

	return reports, nil
}

func (uc *RatesUsecase) report(ctx context.Context, code string, days int) (*CurrencyReport, error) {
	dated, err := uc.converter.GetRates(ctx, code, days)
	if err != nil {
		uc.logger.WithError(err).Debugf("Failed to get %s rates", code)
		return nil, err
	}

	rates, err := ExtractRates(dated, code)
	if err != nil {
		uc.logger.WithError(err).Debugf("Failed to extract %s rates", code)
		return nil, err
	}

	uc.logger.WithFields(logrus.Fields{"currency": code, "days": days, "found": len(rates)}).Info("Built rate report")

	return &CurrencyReport{
		Currency: code,
		Days:     days,
		Rates:    rates,
	}, nil
}
