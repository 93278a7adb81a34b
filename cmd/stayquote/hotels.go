package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func HotelsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hotels",
		Short: "List regions, hotels and room categories in the rate table",
		RunE: func(cmd *cobra.Command, args []string) error {
			region, _ := cmd.Flags().GetString("region")

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
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

			// Load once; Catalogue swallows source errors
			if _, err := source.FetchRows(context.Background()); err != nil {
				return fmt.Errorf("failed to read rate table: %w", err)
			}
			cat := qs.Catalogue(context.Background())

			heading := color.New(color.Bold)
			for _, r := range cat.Regions() {
				if region != "" && r != region {
					continue
				}
				heading.Println(r)
				for _, hotel := range cat.Hotels(r) {
					fmt.Printf("  %s\n", hotel)
					for _, category := range cat[r][hotel] {
						fmt.Printf("    - %s\n", category)
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().String("region", "", "Only list this region")

	return cmd
}
