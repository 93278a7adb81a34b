package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/omerorhan/stay-pricing/internal/storage"
)

func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Copy a rate sheet from a workbook into Redis or SQL",
		RunE: func(cmd *cobra.Command, args []string) error {
			from, _ := cmd.Flags().GetString("from")
			to, _ := cmd.Flags().GetString("to")
			sheet, _ := cmd.Flags().GetString("sheet")
			watch, _ := cmd.Flags().GetBool("watch")
			interval, _ := cmd.Flags().GetDuration("interval")

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if from == "" {
				from = cfg.RateFile
			}
			if from == "" {
				return fmt.Errorf("--from or RATE_FILE is required")
			}
			if sheet != "" {
				cfg.RateSheet = sheet
			}
			if to != storage.KindRedis && to != storage.KindSQL {
				return fmt.Errorf("--to must be %q or %q, got %q", storage.KindRedis, storage.KindSQL, to)
			}

			target, err := storage.Open(to, cfg.SourceOptions())
			if err != nil {
				return fmt.Errorf("failed to open %s target: %w", to, err)
			}
			defer target.Close()

			importer, ok := target.(storage.Importer)
			if !ok {
				return fmt.Errorf("%s target does not accept imports", to)
			}

			if watch {
				publisher, err := startPublisher(cfg, from, importer, target, interval)
				if err != nil {
					return err
				}
				defer publisher.Stop()

				sigChan := make(chan os.Signal, 1)
				signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
				<-sigChan
				return nil
			}

			rows, err := storage.NewExcelSource(from, cfg.RateSheet).FetchRows(context.Background())
			if err != nil {
				return err
			}
			if err := importer.ImportRows(context.Background(), cfg.RateSheet, rows); err != nil {
				return err
			}
			fmt.Printf("Imported %d rows from %s into %s sheet %s\n", len(rows), from, to, cfg.RateSheet)
			return nil
		},
	}

	cmd.Flags().String("from", "", "Source workbook (defaults to RATE_FILE)")
	cmd.Flags().String("to", storage.KindRedis, "Target store: redis or sql")
	cmd.Flags().String("sheet", "", "Sheet name (defaults to RATE_SHEET)")
	cmd.Flags().Bool("watch", false, "Keep publishing the workbook until interrupted")
	cmd.Flags().Duration("interval", 5*time.Minute, "Publish interval with --watch")

	return cmd
}
