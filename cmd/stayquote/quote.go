package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/omerorhan/stay-pricing/internal/service"
)

func QuoteCmd() *cobra.Command {
	var (
		req               service.StayRequest
		checkIn, checkOut string
	)

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price one stay and print the breakdown",
		Example: `  stayquote quote --checkin 2025-08-01 --checkout 2025-08-04 \
    --hotel sunrise --category deluxe --adults 2 --options "full board" --rate 15000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if req.CheckIn, err = cliDate(checkIn); err != nil {
				return err
			}
			if req.CheckOut, err = cliDate(checkOut); err != nil {
				return err
			}
			plain, _ := cmd.Flags().GetBool("plain")
			asJSON, _ := cmd.Flags().GetBool("json")

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			// Service logs would interleave with the breakdown
			cfg.EnableLogging = false

			source, err := openSource(cfg)
			if err != nil {
				return err
			}
			qs, err := newQuoteService(cfg, source)
			if err != nil {
				return err
			}
			defer qs.Close()

			report := qs.Quote(context.Background(), req)

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				fmt.Println(renderLines(report.Lines, plain))
			}

			if report.Status != service.StatusComputed {
				return fmt.Errorf("quote %s: %s", report.ID, report.Status)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&checkIn, "checkin", "", "Check-in date (YYYY-MM-DD or DD.MM.YYYY)")
	cmd.Flags().StringVar(&checkOut, "checkout", "", "Check-out date (YYYY-MM-DD or DD.MM.YYYY)")
	cmd.Flags().StringVar(&req.Hotel, "hotel", "", "Hotel name or part of it")
	cmd.Flags().StringVar(&req.Category, "category", "", "Room category or part of it")
	cmd.Flags().IntVar(&req.Adults, "adults", 2, "Number of adults")
	cmd.Flags().IntVar(&req.Children, "children", 0, "Number of children")
	cmd.Flags().StringVar(&req.Options, "options", "", "Free-text extras, e.g. \"half board, extra bed\"")
	cmd.Flags().StringVar(&req.CurrencyRate, "rate", "", "Units of base currency per target currency unit")
	cmd.Flags().Bool("plain", false, "Print without formatting")
	cmd.Flags().Bool("json", false, "Print the full report as JSON")

	return cmd
}

// cliDate turns an ISO date into the DD.MM.YYYY form quotes take. Other
// input passes through untouched and is checked by the quote itself.
func cliDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, "-") {
		return s, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q, use YYYY-MM-DD or DD.MM.YYYY", s)
	}
	return t.Format(service.DayMonthYear), nil
}
