package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aweller/bloomport/internal/bloom"
	"github.com/aweller/bloomport/internal/config"
	"github.com/aweller/bloomport/internal/export"
	"github.com/aweller/bloomport/internal/pipeline"
	"github.com/aweller/bloomport/internal/stats"
	"github.com/aweller/bloomport/internal/tui"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const cancelledMsg = "Mindful Session extraction cancelled."

func exportCmd() *cobra.Command {
	var input, output, format string
	var yes bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Extract mindful sessions into a Bloom-importable file",
		Long: `Scans an Apple Health export.xml, keeps only Mindful Session records,
and writes them as a CSV (or SQLite) file Bloom can import with /import.

Interactive on a terminal: confirms first, then opens a file picker when
--input is not given and prompts for the output name when --output is not
given. Fully scriptable with --input, --output and --yes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			interactive := term.IsTerminal(int(os.Stdin.Fd())) &&
				term.IsTerminal(int(os.Stdout.Fd()))

			if interactive && !yes {
				proceed, err := confirmExtraction()
				if err != nil {
					return err
				}
				if !proceed {
					fmt.Println(cancelledMsg)
					return nil
				}
			}

			if input == "" {
				if !interactive {
					input = cfg.HealthExport
				} else {
					path, ok, err := tui.PickExportFile(startDir(cfg.HealthExport))
					if err != nil {
						return err
					}
					if !ok {
						fmt.Println(cancelledMsg)
						return nil
					}
					input = path
				}
			}

			fmt.Fprintf(os.Stderr, "Scanning %s...\n", input)
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

			if output == "" {
				name := cfg.OutputName
				if interactive {
					picked, ok, err := promptOutputName(name)
					if err != nil {
						return err
					}
					if !ok {
						fmt.Println(cancelledMsg)
						return nil
					}
					name = picked
				}
				output = filepath.Join(cfg.OutputDir, name)
			}

			if format == "" {
				format = formatForPath(output, cfg.Format)
			}

			var rows int
			switch format {
			case config.FormatSQLite:
				rows, err = export.WriteSQLite(output, records)
			case config.FormatCSV:
				rows, err = export.WriteCSVFile(output, records)
			default:
				return fmt.Errorf("unknown format %q: want %q or %q", format, config.FormatCSV, config.FormatSQLite)
			}
			if err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}

			fmt.Println("Mindful Session extraction successful!")
			fmt.Println()
			printSummary(os.Stdout, stats.Tally(records), interactive)
			fmt.Printf("\n%d rows written to %s\n", rows, output)
			fmt.Printf("Upload %s to the #meditation-tracking channel and use /import to import the data into Bloom.\n",
				filepath.Base(output))
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "Path to the Apple Health export.xml (skips the picker)")
	cmd.Flags().StringVar(&output, "output", "", "Destination file (skips the name prompt)")
	cmd.Flags().StringVar(&format, "format", "", "Artifact format: csv or sqlite (default from config or extension)")
	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}

func confirmExtraction() (bool, error) {
	var proceed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Bloom Bot Parser").
				Description("This will extract all Mindful Sessions from your Apple Health data into a file which can be imported using Bloom. Proceed?").
				Affirmative("Proceed").
				Negative("Cancel").
				Value(&proceed),
		),
	)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, fmt.Errorf("confirm: %w", err)
	}
	return proceed, nil
}

func promptOutputName(def string) (string, bool, error) {
	name := def
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Save Mindful Session export as").
				Placeholder(def).
				Value(&name),
		),
	)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("output name: %w", err)
	}
	if strings.TrimSpace(name) == "" {
		name = def
	}
	return name, true, nil
}

// startDir picks where the file picker opens: the configured export's
// directory when it exists, the home directory otherwise.
func startDir(healthExport string) string {
	dir := filepath.Dir(healthExport)
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return dir
	}
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

// formatForPath infers the artifact format from the output extension,
// falling back to the configured default.
func formatForPath(path, def string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return config.FormatSQLite
	case ".csv":
		return config.FormatCSV
	}
	return def
}
