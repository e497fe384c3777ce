package usecase

import "privat-rates/internal/entity"

type CurrencyReport struct {
	Currency string        `json:"currency"`
	Days     int           `json:"days"`
	Rates    []entity.Rate `json:"rates"`
}
