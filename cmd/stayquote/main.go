package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/omerorhan/stay-pricing/internal/config"
	"github.com/omerorhan/stay-pricing/internal/service"
	"github.com/omerorhan/stay-pricing/internal/storage"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:          "stayquote",
		Short:        "Price hotel stays from a rate table",
		SilenceUsage: true,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().String("config-dir", ".", "Directory holding config.env")

	rootCmd.AddCommand(
		ServeCmd(),
		QuoteCmd(),
		HotelsCmd(),
		ImportCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	dir, _ := cmd.Flags().GetString("config-dir")
	cfg, err := config.LoadConfig(dir)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func openSource(cfg config.Config) (storage.Source, error) {
	source, err := storage.Open(cfg.RateSource, cfg.SourceOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to open %s rate source: %w", cfg.RateSource, err)
	}
	return source, nil
}

func newQuoteService(cfg config.Config, source storage.Source) (*service.QuoteService, error) {
	return service.NewQuoteService(source,
		service.WithCurrencies(cfg.BaseCurrency, cfg.TargetCurrency),
		service.WithLogging(cfg.EnableLogging),
	)
}
