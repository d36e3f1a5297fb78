package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ledgerq/internal/core"
	"ledgerq/internal/dataset"
	"ledgerq/internal/log"
	"ledgerq/internal/report"
)

var (
	flagMerchant string
	flagFrom     string
	flagTo       string
	flagMin      string
	flagMax      string
	flagBefore   string
	flagLookupID string
	flagYear     int
	flagMonth    int
	flagDay      int
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Load a transaction collection and print the full query sweep",
	Long: `The report command loads the configured dataset and prints the result
of every query operation: unique types, totals, per-date totals, type,
date-range, merchant and amount-range filters, average, busiest months,
dominant type, before-date filter, id lookup and descriptions.

Query parameters default to values matching the built-in sample dataset
and can be overridden per run with flags.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd)
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	defaults := report.DefaultOptions()
	reportCmd.Flags().StringVar(&flagMerchant, "merchant", defaults.Merchant, "merchant name for the merchant filter (exact, case sensitive)")
	reportCmd.Flags().StringVar(&flagFrom, "from", defaults.RangeStart.ISO(), "start of the date range filter (YYYY-MM-DD, inclusive)")
	reportCmd.Flags().StringVar(&flagTo, "to", defaults.RangeEnd.ISO(), "end of the date range filter (YYYY-MM-DD, inclusive)")
	reportCmd.Flags().StringVar(&flagMin, "min", defaults.MinAmount.String(), "lower bound of the amount range filter (inclusive)")
	reportCmd.Flags().StringVar(&flagMax, "max", defaults.MaxAmount.String(), "upper bound of the amount range filter (inclusive)")
	reportCmd.Flags().StringVar(&flagBefore, "before", defaults.Before.ISO(), "cutoff for the before-date filter (YYYY-MM-DD, exclusive)")
	reportCmd.Flags().StringVar(&flagLookupID, "id", defaults.LookupID, "transaction id to look up")
	reportCmd.Flags().IntVar(&flagYear, "year", defaults.DateFilter.Year, "year for the per-date total (0 matches all)")
	reportCmd.Flags().IntVar(&flagMonth, "month", defaults.DateFilter.Month, "month 1-12 for the per-date total (0 matches all)")
	reportCmd.Flags().IntVar(&flagDay, "day", defaults.DateFilter.Day, "day of month for the per-date total (0 matches all)")
}

func runReport(cmd *cobra.Command) error {
	LoadEnvFile()
	cfg, err := LoadAndValidateConfigWithFlags()
	if err != nil {
		return err
	}
	logger := SetupLogger(cfg.LogLevel)

	opts, err := optionsFromFlags()
	if err != nil {
		return err
	}

	factory := dataset.NewFactory(logger.Logger)
	src, cleanup, err := factory.CreateSource(cfg)
	if err != nil {
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}

	ctx := cmd.Context()
	txs, err := src.Load(ctx)
	if err != nil {
		return fmt.Errorf("load %s: %w", src.Name(), err)
	}
	logger.Info("Dataset loaded",
		log.FieldSource, src.Name(),
		log.FieldRecordCount, len(txs))

	r := report.New(opts, logger.WithComponent(log.ComponentReport))
	return r.Render(os.Stdout, txs)
}

func optionsFromFlags() (report.Options, error) {
	opts := report.Options{
		Merchant: flagMerchant,
		LookupID: flagLookupID,
		DateFilter: core.DateFilter{
			Year:  flagYear,
			Month: flagMonth,
			Day:   flagDay,
		},
	}

	var err error
	if opts.RangeStart, err = core.ParseDate(flagFrom); err != nil {
		return opts, fmt.Errorf("--from: %w", err)
	}
	if opts.RangeEnd, err = core.ParseDate(flagTo); err != nil {
		return opts, fmt.Errorf("--to: %w", err)
	}
	if opts.Before, err = core.ParseDate(flagBefore); err != nil {
		return opts, fmt.Errorf("--before: %w", err)
	}
	if opts.MinAmount, err = core.ParseMoney(flagMin); err != nil {
		return opts, fmt.Errorf("--min: %w", err)
	}
	if opts.MaxAmount, err = core.ParseMoney(flagMax); err != nil {
		return opts, fmt.Errorf("--max: %w", err)
	}
	return opts, nil
}
