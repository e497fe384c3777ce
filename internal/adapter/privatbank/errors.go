package privatbank

import (
	"errors"
	"fmt"
)

var ErrMissingExchangeRate = errors.New("response has no exchangeRate list")

// FetchError is returned when the API answers with a non-200 status.
type FetchError struct {
	Currency   string
	Date       string
	StatusCode int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch data for %s on date %s: status %d", e.Currency, e.Date, e.StatusCode)
}
