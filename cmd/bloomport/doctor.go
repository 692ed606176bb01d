package main

import (
	"fmt"
	"os"

	"github.com/aweller/bloomport/internal/config"
	"github.com/aweller/bloomport/internal/pipeline"
	"github.com/aweller/bloomport/internal/stats"
	"github.com/spf13/cobra"
)

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Self-check: verify config, the health export, and run a trial scan",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}

			fmt.Println("=== Config ===")
			fmt.Printf("  Health export: %s\n", cfg.HealthExport)
			fmt.Printf("  Output dir:    %s\n", cfg.OutputDir)
			fmt.Printf("  Output name:   %s\n", cfg.OutputName)
			fmt.Printf("  Format:        %s\n", cfg.Format)

			fmt.Println("\n=== Health Export ===")
			info, err := os.Stat(cfg.HealthExport)
			if err != nil {
				fmt.Println("  Status: NOT FOUND (export your data from the Health app first)")
				return nil
			}
			sizeMB := float64(info.Size()) / 1024 / 1024
			fmt.Printf("  Size: %.1f MB\n", sizeMB)

			fmt.Println("\n=== Trial Scan ===")
			records, err := pipeline.ExtractFile(cfg.HealthExport)
			if err != nil {
				fmt.Printf("  Scan error: %v\n", err)
				return nil
			}
			fmt.Printf("  Mindful sessions: %d\n", len(records))
			fmt.Printf("  Apps:             %d\n", len(stats.Tally(records)))

			zero := 0
			for _, r := range records {
				if r.MeditationMinutes == 0 {
					zero++
				}
			}
			if zero > 0 {
				fmt.Printf("  Sub-minute sessions (skipped on export): %d\n", zero)
			}

			return nil
		},
	}
}
