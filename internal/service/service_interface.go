package service

import "context"

type CurrencyConverter interface {
	GetRates(ctx context.Context, currency string, days int) ([]DatedRates, error)
}
