package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"privat-rates/internal/handler"
	"privat-rates/pkg/config"
	"privat-rates/pkg/logger"
	"privat-rates/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configFile string
	logLevel   string
	days       int
	currencies []string
}

func (o *rootOptions) load(cmd *cobra.Command) (*config.Config, *logrus.Logger, error) {
	cfg, err := config.LoadConfig(o.configFile)
	if err != nil {
		return nil, nil, err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if cmd.Flags().Changed("currencies") {
		cfg.Rates.Currencies = o.currencies
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, logger.Init(cfg.Log.Level, cmd.ErrOrStderr()), nil
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "privat-rates",
		Short:         "PrivatBank historical exchange rates",
		Version:       "v1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRates(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level")
	rootCmd.Flags().IntVarP(&opts.days, "days", "d", 0, "Number of days to fetch (1-10), prompts when omitted")
	rootCmd.Flags().StringSliceVarP(&opts.currencies, "currencies", "c", nil, "Currencies to print, comma separated")

	rootCmd.AddCommand(newServeCmd(opts))

	return rootCmd
}

func runRates(cmd *cobra.Command, opts *rootOptions) error {
	cfg, log, err := opts.load(cmd)
	if err != nil {
		return err
	}

	console := handler.NewConsoleHandler(newUsecase(cfg, log, nil), log, cmd.InOrStdin(), cmd.OutOrStdout())

	days := opts.days
	if !cmd.Flags().Changed("days") {
		days, err = console.PromptDays()
		if err != nil {
			return err
		}
	}

	return console.Run(cmd.Context(), cfg.Rates.Currencies, days)
}

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve rate reports over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.load(cmd)
			if err != nil {
				return err
			}
			return serve(cfg, log)
		},
	}
}

func serve(cfg *config.Config, log *logrus.Logger) error {
	log.Infof("Starting %s...", cfg.App.Name)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	rateUsecase := newUsecase(cfg, log, metrics.NewProviderMetrics(reg))
	log.Info("Initialized usecase layer")

	router := handler.NewRouter(handler.NewRateHandler(rateUsecase, log), cfg.Server.AllowOrigins, reg)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Server starting on port %s...", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		log.Errorf("listen: %v", err)
		return fmt.Errorf("listen: %w", err)
	case <-quit:
		log.Info("Got shutdown signal...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("Error server shutdown: %v", err)
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("Server stopped")

	return nil
}
