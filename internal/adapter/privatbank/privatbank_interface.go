package privatbank

import "context"

type ExchangeRateProvider interface {
	FetchRates(ctx context.Context, currency, date string) (*ExchangeRates, error)
}
