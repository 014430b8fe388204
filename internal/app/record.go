package app

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/waitwatch/internal/config"
	"github.com/blackwell-systems/waitwatch/internal/output"
	"github.com/blackwell-systems/waitwatch/internal/store"
)

var (
	recordCategory string
	recordStart    string
	recordEnd      string
	recordFor      time.Duration
	recordAgo      time.Duration
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a completed wait",
	Long: `Record a wait interval that already happened. Either give explicit
start and end timestamps, or a duration (optionally shifted into the past).

Examples:
  waitwatch record --category digital --for 4m
  waitwatch record --category physical --for 12m --ago 2h
  waitwatch record --category social --start "2026-08-30T09:10:00Z" --end "2026-08-30T09:25:00Z"`,
	RunE: runRecord,
}

func init() {
	recordCmd.Flags().StringVar(&recordCategory, "category", "", "Category id (required; see 'waitwatch categories')")
	recordCmd.Flags().StringVar(&recordStart, "start", "", "Start timestamp (RFC 3339)")
	recordCmd.Flags().StringVar(&recordEnd, "end", "", "End timestamp (RFC 3339)")
	recordCmd.Flags().DurationVar(&recordFor, "for", 0, "Wait duration (e.g. 90s, 4m)")
	recordCmd.Flags().DurationVar(&recordAgo, "ago", 0, "How long ago the wait ended (with --for)")
	_ = recordCmd.MarkFlagRequired("category")
	rootCmd.AddCommand(recordCmd)
}

func runRecord(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	setupOutput(cfg)

	start, end, err := resolveInterval()
	if err != nil {
		return err
	}

	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	event := store.WaitEvent{
		ID:         uuid.NewString(),
		StartDate:  start,
		EndDate:    end,
		CategoryID: recordCategory,
		CreatedAt:  time.Now().UTC(),
	}
	if err := db.InsertEvent(&event); err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}

	fmt.Printf("Recorded %s wait (%s)\n",
		output.StyleBold.Render(output.FormatDuration(event.DurationSeconds())),
		recordCategory)
	return nil
}

// resolveInterval turns the record flags into a start/end pair. Explicit
// timestamps win over --for/--ago.
func resolveInterval() (start, end time.Time, err error) {
	if recordStart != "" || recordEnd != "" {
		if recordStart == "" || recordEnd == "" {
			return start, end, fmt.Errorf("--start and --end must be given together")
		}
		start, err = time.Parse(time.RFC3339, recordStart)
		if err != nil {
			return start, end, fmt.Errorf("parsing --start: %w", err)
		}
		end, err = time.Parse(time.RFC3339, recordEnd)
		if err != nil {
			return start, end, fmt.Errorf("parsing --end: %w", err)
		}
		return start, end, nil
	}

	if recordFor <= 0 {
		return start, end, fmt.Errorf("either --for or --start/--end is required")
	}
	end = time.Now().Add(-recordAgo)
	start = end.Add(-recordFor)
	return start, end, nil
}
