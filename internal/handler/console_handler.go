package handler

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"privat-rates/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const daysPrompt = "Enter the number of days (1-10): "

var ErrNoInput = errors.New("no input")

type ConsoleHandler struct {
	usecase usecase.RateUsecase
	logger  *logrus.Logger
	in      io.Reader
	out     io.Writer
}

func NewConsoleHandler(usecase usecase.RateUsecase, logger *logrus.Logger, in io.Reader, out io.Writer) *ConsoleHandler {
	return &ConsoleHandler{
		usecase: usecase,
		logger:  logger,
		in:      in,
		out:     out,
	}
}

// PromptDays asks for the day count on in. Range checking is left to the use case.
func (h *ConsoleHandler) PromptDays() (int, error) {
	fmt.Fprint(h.out, daysPrompt)

	line, err := bufio.NewReader(h.in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("read days: %w", err)
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return 0, ErrNoInput
	}

	days, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("invalid number of days %q: %w", line, err)
	}
	return days, nil
}

// Run fetches every currency and prints the reports. Nothing is printed
// unless all fetches succeed. An out-of-range day count prints a notice and
// is not treated as a failure.
func (h *ConsoleHandler) Run(ctx context.Context, currencies []string, days int) error {
	if err := usecase.ValidateDays(days); err != nil {
		fmt.Fprintf(h.out, "Number of days must be between %d and %d\n", usecase.MinDays, usecase.MaxDays)
		return nil
	}

	reports, err := h.usecase.GetReports(ctx, currencies, days)
	if err != nil {
		h.logger.WithError(err).Debug("Failed to build rate reports")
		return err
	}

	PrintReports(h.out, reports)
	return nil
}

func PrintReports(w io.Writer, reports []usecase.CurrencyReport) {
	for i, report := range reports {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s rates for the last %d days:\n", report.Currency, report.Days)
		for _, rate := range report.Rates {
			fmt.Fprintf(w, "%s: %s (sale) - %s (purchase)\n", rate.Date, FormatRate(rate.SaleRate), FormatRate(rate.PurchaseRate))
		}
	}
}

// FormatRate prints the shortest form of d that keeps at least one
// fractional digit: 20.0000000 -> 20.0, 15.3500000 -> 15.35.
func FormatRate(d decimal.Decimal) string {
	s := d.String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
