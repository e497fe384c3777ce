package main

import (
	"privat-rates/internal/adapter/privatbank"
	"privat-rates/internal/service"
	"privat-rates/internal/usecase"
	"privat-rates/pkg/config"
	"privat-rates/pkg/metrics"

	"github.com/sirupsen/logrus"
)

// newUsecase wires provider, converter and use case. m may be nil.
func newUsecase(cfg *config.Config, log *logrus.Logger, m *metrics.ProviderMetrics) *usecase.RatesUsecase {
	client := privatbank.NewClient(cfg.PrivatBank.URL, cfg.PrivatBank.Timeout, log, m)
	log.Info("Initialized PrivatBank client")

	converter := service.NewConverterService(client, log)
	log.Info("Initialized service layer")

	return usecase.NewRatesUsecase(converter, log)
}
