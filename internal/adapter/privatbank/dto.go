package privatbank

import "github.com/shopspring/decimal"

// DateLayout is the date format the archive API accepts and returns.
const DateLayout = "02.01.2006"

type ExchangeRates struct {
	Date            string         `json:"date"`
	Bank            string         `json:"bank"`
	BaseCurrency    int            `json:"baseCurrency"`
	BaseCurrencyLit string         `json:"baseCurrencyLit"`
	ExchangeRate    []ExchangeRate `json:"exchangeRate"`
}

// ExchangeRate is one currency entry. The bank only quotes its own
// sale/purchase rates for a handful of currencies, the rest carry NB rates only.
type ExchangeRate struct {
	BaseCurrency   string              `json:"baseCurrency"`
	Currency       string              `json:"currency"`
	SaleRateNB     decimal.NullDecimal `json:"saleRateNB"`
	PurchaseRateNB decimal.NullDecimal `json:"purchaseRateNB"`
	SaleRate       decimal.NullDecimal `json:"saleRate"`
	PurchaseRate   decimal.NullDecimal `json:"purchaseRate"`
}

// Find returns the entry whose currency code equals currency exactly.
func (e *ExchangeRates) Find(currency string) (ExchangeRate, bool) {
	for _, rate := range e.ExchangeRate {
		if rate.Currency == currency {
			return rate, true
		}
	}
	return ExchangeRate{}, false
}
