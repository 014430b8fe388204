package app

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/waitwatch/internal/config"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dump events as JSON or CSV",
	Long: `Write the full event history to stdout for external tooling.

Examples:
  waitwatch export > events.json
  waitwatch export --format csv > events.csv`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Export format: json or csv")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	events, err := db.ListEvents()
	if err != nil {
		return fmt.Errorf("listing events: %w", err)
	}

	switch exportFormat {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(events)

	case "csv":
		w := csv.NewWriter(os.Stdout)
		if err := w.Write([]string{"id", "start_at", "end_at", "category_id", "duration_seconds", "created_at"}); err != nil {
			return err
		}
		for _, e := range events {
			record := []string{
				e.ID,
				e.StartDate.Format(time.RFC3339),
				e.EndDate.Format(time.RFC3339),
				e.CategoryID,
				strconv.FormatFloat(e.DurationSeconds(), 'f', 0, 64),
				e.CreatedAt.Format(time.RFC3339),
			}
			if err := w.Write(record); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()

	default:
		return fmt.Errorf("unknown format %q (want json or csv)", exportFormat)
	}
}
