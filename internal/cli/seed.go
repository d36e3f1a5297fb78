package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"ledgerq/internal/dataset"
	"ledgerq/internal/log"
	"ledgerq/internal/storage"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the SQLite database and seed it with the sample dataset",
	Long: `The seed command creates the SQLite database (running migrations if
needed) and replaces its contents with the built-in five-record sample
dataset, so that 'ledgerq report --source sqlite' works out of the box.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(cmd)
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command) error {
	LoadEnvFile()
	cfg, err := LoadAndValidateConfig()
	if err != nil {
		return err
	}
	logger := SetupLogger(cfg.LogLevel).WithComponent(log.ComponentStorage)

	repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer repo.Close()

	txs := dataset.Sample()
	if err := repo.SeedSample(cmd.Context(), txs); err != nil {
		return fmt.Errorf("seed database: %w", err)
	}

	logger.Info("Database seeded",
		log.FieldPath, cfg.SQLiteDBPath,
		log.FieldRecordCount, len(txs))
	return nil
}
