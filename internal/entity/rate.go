package entity

import "github.com/shopspring/decimal"

type Rate struct {
	Date         string          `json:"date"`
	Currency     string          `json:"currency"`
	SaleRate     decimal.Decimal `json:"sale_rate"`
	PurchaseRate decimal.Decimal `json:"purchase_rate"`
}
