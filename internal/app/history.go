package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/waitwatch/internal/config"
	"github.com/blackwell-systems/waitwatch/internal/output"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded waits",
	Long: `List recorded wait events, most recent first.

Use 'waitwatch history delete <event-id>' to remove a mistaken entry.`,
	RunE: runHistory,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <event-id>",
	Short: "Delete a recorded wait",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of events to show")
	historyCmd.Flags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	historyCmd.AddCommand(historyDeleteCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	setupOutput(cfg)

	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	events, err := db.ListRecentEvents(historyLimit)
	if err != nil {
		return fmt.Errorf("listing events: %w", err)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(events)
	}

	if len(events) == 0 {
		fmt.Println("No waits recorded yet.")
		return nil
	}

	categories, err := db.ListCategories()
	if err != nil {
		return fmt.Errorf("listing categories: %w", err)
	}
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	table := output.NewTable("Ended", "Duration", "Category", "ID").AlignRight(1)
	for _, e := range events {
		name := e.CategoryID
		if n, ok := names[e.CategoryID]; ok {
			name = n
		}
		table.AddRow(
			output.FormatTimestamp(e.EndDate),
			output.FormatDuration(e.DurationSeconds()),
			name,
			e.ID,
		)
	}
	fmt.Print(table.Render())
	return nil
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	setupOutput(cfg)

	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := db.DeleteEvent(args[0]); err != nil {
		return fmt.Errorf("deleting event: %w", err)
	}
	fmt.Println("Deleted", args[0])
	return nil
}
