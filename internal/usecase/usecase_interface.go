package usecase

import "context"

type RateUsecase interface {
	GetReport(ctx context.Context, currency string, days int) (*CurrencyReport, error)
	GetReports(ctx context.Context, currencies []string, days int) ([]CurrencyReport, error)
}
