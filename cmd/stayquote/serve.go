package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/omerorhan/stay-pricing/internal/api"
	"github.com/omerorhan/stay-pricing/internal/config"
	"github.com/omerorhan/stay-pricing/internal/service"
	"github.com/omerorhan/stay-pricing/internal/storage"
)

func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the quote API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			publishFrom, _ := cmd.Flags().GetString("publish-from")
			interval, _ := cmd.Flags().GetDuration("publish-interval")

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			source, err := openSource(cfg)
			if err != nil {
				return err
			}
			qs, err := newQuoteService(cfg, source)
			if err != nil {
				return err
			}
			defer qs.Close()

			handler := api.NewHandler(qs)
			importer, canImport := source.(storage.Importer)
			if canImport {
				handler.WithImporter(importer, cfg.RateSheet)
			}

			if publishFrom != "" {
				if !canImport {
					return fmt.Errorf("rate source %q cannot be published to", cfg.RateSource)
				}
				publisher, err := startPublisher(cfg, publishFrom, importer, source, interval)
				if err != nil {
					return err
				}
				defer publisher.Stop()
			}

			srv := &http.Server{
				Addr:    cfg.Addr(),
				Handler: api.NewRouter(handler, cfg.Origins()),
			}

			errCh := make(chan error, 1)
			go func() {
				log.Printf("🚀 stayquote listening on %s (rates from %s)", srv.Addr, cfg.RateSource)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			// Graceful shutdown
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case <-sigChan:
			}

			log.Println("Shutting down...")
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	}

	cmd.Flags().String("publish-from", "", "Workbook to keep publishing into the rate source")
	cmd.Flags().Duration("publish-interval", 5*time.Minute, "How often the workbook is re-read")

	return cmd
}

// startPublisher copies workbook into target on a schedule. Sources that
// can elect a leader, Redis in particular, share the lock across replicas.
func startPublisher(cfg config.Config, workbook string, target storage.Importer, source storage.Source, interval time.Duration) (*service.Publisher, error) {
	if ttl := cfg.RedisSnapshotTTL; ttl > 0 && ttl <= interval {
		return nil, fmt.Errorf("REDIS_SNAPSHOT_TTL %v must be longer than the publish interval %v", ttl, interval)
	}
	locker, _ := source.(storage.Locker)

	publisher, err := service.NewPublisher(
		storage.NewExcelSource(workbook, cfg.RateSheet),
		target,
		locker,
		service.WithPublishSheet(cfg.RateSheet),
		service.WithPublishInterval(interval),
		service.WithPublisherLogging(cfg.EnableLogging),
	)
	if err != nil {
		return nil, err
	}
	if err := publisher.Start(); err != nil {
		return nil, err
	}
	return publisher, nil
}
