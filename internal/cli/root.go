package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagSource string
	flagPath   string
	flagStrict bool
)

var rootCmd = &cobra.Command{
	Use:   "ledgerq",
	Short: "Query and aggregate financial transaction records",
	Long: `ledgerq loads a transaction collection from a configurable source
(built-in sample, CSV, JSON, YAML, XLSX or SQLite) and runs pure query
and aggregation functions over it: filters by type, date range, merchant
and amount range, sums, averages, busiest-month lookups and id lookup.

Configuration comes from the environment (optionally via .env); the
--source, --path and --strict flags override it.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command. It is called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagSource, "source", "", "data source: sample, csv, json, yaml, xlsx or sqlite (overrides DATA_SOURCE)")
	rootCmd.PersistentFlags().StringVar(&flagPath, "path", "", "input file for file-backed sources (overrides DATA_PATH)")
	rootCmd.PersistentFlags().BoolVar(&flagStrict, "strict", false, "fail the load on the first malformed record instead of skipping it")
}
