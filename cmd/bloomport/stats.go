package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/aweller/bloomport/internal/bloom"
	"github.com/aweller/bloomport/internal/config"
	"github.com/aweller/bloomport/internal/pipeline"
	"github.com/aweller/bloomport/internal/stats"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func statsCmd() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print per-app mindful session counts without writing a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if input == "" {
				input = cfg.HealthExport
			}

			records, err := pipeline.ExtractFile(input)
			switch {
			case errors.Is(err, bloom.ErrFormat):
				return fmt.Errorf("bad timestamp in %s: %w", input, err)
			case errors.Is(err, bloom.ErrRange):
				return fmt.Errorf("unrepresentable duration in %s: %w", input, err)
			case err != nil:
				return err
			}

			if len(records) == 0 {
				fmt.Println("No Mindful Session entries found.")
				return nil
			}

			// Styled on a terminal, plain for pipes
			styled := term.IsTerminal(int(os.Stdout.Fd()))
			printSummary(os.Stdout, stats.Tally(records), styled)
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "Path to the Apple Health export.xml")

	return cmd
}
