package handler

import (
	"errors"
	"net/http"
	"strconv"

	"privat-rates/internal/adapter/privatbank"
	"privat-rates/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CurrencyHandler struct {
	usecase usecase.RateUsecase
	logger  *logrus.Logger
}

func NewRateHandler(usecase usecase.RateUsecase, logger *logrus.Logger) *CurrencyHandler {
	return &CurrencyHandler{
		usecase: usecase,
		logger:  logger,
	}
}

// GetRates serves GET /currency/rates?val=EUR&days=3.
func (h *CurrencyHandler) GetRates(c *gin.Context) {
	valCode := c.Query("val")
	daysStr := c.Query("days")

	if valCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'val'"})
		return
	}

	days := usecase.MinDays
	if daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err != nil {
			h.logger.WithError(err).Debugf("Invalid days parameter: %s", daysStr)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'days' parameter, must be an integer"})
			return
		}
		days = parsed
	}

	report, err := h.usecase.GetReport(c.Request.Context(), valCode, days)
	if err != nil {
		statusCode := http.StatusInternalServerError
		var fetchErr *privatbank.FetchError
		switch {
		case errors.Is(err, usecase.ErrDaysOutOfRange), errors.Is(err, usecase.ErrInvalidCurrency):
			statusCode = http.StatusBadRequest
		case errors.As(err, &fetchErr):
			statusCode = http.StatusBadGateway
		}
		h.logger.WithError(err).Errorf("Failed to get rates for val=%s, days=%d", valCode, days)
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}
