package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ecovista-backend/application/ingestion"
	"ecovista-backend/infrastructure/config"
	"ecovista-backend/infrastructure/di"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ingest",
		Short: "Bulk-import article catalogue data from CSV exports",
	}

	root.AddCommand(csvCmd())

	return root
}

func csvCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "csv <file>",
		Short: "Ingest a CSV export, fanning each row out to articles, actors, tags and locations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCSV(cmd.Context(), args[0], dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse and validate rows without writing")
	return cmd
}

func runCSV(ctx context.Context, path string, dryRun bool) error {
	rows, err := ingestion.ReadFile(path)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Println("no rows to ingest")
		return nil
	}

	if dryRun {
		fmt.Printf("parsed %d rows from %s\n", len(rows), path)
		return nil
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	container, err := di.InitializeContainer(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initialize container: %w", err)
	}
	defer container.Logger.Sync()

	container.Logger.Info("Starting ingestion",
		zap.String("file", path),
		zap.Int("rows", len(rows)),
	)

	res := container.Ingestor.IngestRows(ctx, rows)

	fmt.Printf("processed %d rows, skipped %d\n", res.Processed, res.Skipped)
	for _, rowErr := range res.Errors {
		fmt.Fprintf(os.Stderr, "row %d: %v\n", rowErr.Line, rowErr.Err)
	}
	if len(res.Errors) > 0 {
		return fmt.Errorf("%d rows failed", len(res.Errors))
	}
	return nil
}
