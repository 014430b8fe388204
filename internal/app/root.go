// Package app contains the Cobra command tree for waitwatch.
package app

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/blackwell-systems/waitwatch/internal/achievements"
	"github.com/blackwell-systems/waitwatch/internal/config"
	"github.com/blackwell-systems/waitwatch/internal/engine"
	"github.com/blackwell-systems/waitwatch/internal/output"
	"github.com/blackwell-systems/waitwatch/internal/store"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "waitwatch",
	Short: "Track and analyze the time you spend waiting",
	Long: `waitwatch records discrete wait intervals (elevator, loading spinner,
waiting on a reply) and surfaces how your waiting time is distributed,
growing, shrinking, and clustering.

Run 'waitwatch' with no arguments for a quick summary of your waiting time.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDashboard,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/waitwatch/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
}

// setupOutput applies color preferences from flags, config, and the terminal.
func setupOutput(cfg *config.Config) {
	output.AutoDetect()
	if flagNoColor || !cfg.Output.Color {
		output.SetNoColor(true)
	}
}

// openStore opens the database and seeds the system categories on first use.
func openStore(cfg *config.Config) (*store.DB, error) {
	db, err := store.Open(cfg.DatabasePath())
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.SeedSystemCategories(time.Now().UTC()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("seeding categories: %w", err)
	}
	return db, nil
}

// calendarFor builds the engines' calendar from config.
func calendarFor(cfg *config.Config) engine.Calendar {
	cal := engine.DefaultCalendar()
	cal.WeekStart = cfg.WeekStartDay()
	return cal
}

func runDashboard(cmd *cobra.Command, args []string) error {
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

	events, err := db.ListEvents()
	if err != nil {
		return fmt.Errorf("listing events: %w", err)
	}

	if len(events) == 0 {
		fmt.Println("waitwatch", appVersion)
		fmt.Println()
		fmt.Println("No waits recorded yet. Get started:")
		fmt.Println("  record        Record a completed wait")
		fmt.Println("  analyze       Full analytics over your wait history")
		fmt.Println("  achievements  Achievement progress")
		fmt.Println("  history       List recorded waits")
		fmt.Println("  categories    Manage wait categories")
		fmt.Println("  export        Dump events as JSON or CSV")
		return nil
	}

	categories, err := db.ListCategories()
	if err != nil {
		return fmt.Errorf("listing categories: %w", err)
	}

	cal := calendarFor(cfg)

	// Both engines are pure over the same inputs, so the dashboard runs
	// them concurrently.
	var snap engine.AnalyticsSnapshot
	var progress []achievements.Progress

	var g errgroup.Group
	g.Go(func() error {
		snap = engine.New(cal).Snapshot(events, categories, nil)
		return nil
	})
	g.Go(func() error {
		progress = achievements.NewEvaluator(cal).Evaluate(events)
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	renderSummary(snap, progress, len(events))
	return nil
}

func renderSummary(snap engine.AnalyticsSnapshot, progress []achievements.Progress, totalEvents int) {
	fmt.Println(output.Section(fmt.Sprintf("Last %d Days", config.DefaultRangeDays)))

	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Time lost waiting"),
		output.StyleValue.Render(output.FormatDuration(snap.LifeLeakage.TotalSeconds)))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Reclaimable"),
		output.StyleValue.Render(output.FormatDuration(snap.ReclaimableSeconds)))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Holding pattern"),
		output.IndexBar(snap.DriftIndex, 20))

	if g := snap.Comparative.WeekOverWeekGrowth; g != nil {
		fmt.Printf(" %s %s\n",
			output.StyleLabel.Render("Week over week"),
			output.TrendArrowPercent(*g))
	}

	unlocked := 0
	for _, p := range progress {
		if p.Unlocked {
			unlocked++
		}
	}
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Achievements"),
		output.StyleValue.Render(fmt.Sprintf("%d/%d", unlocked, len(progress))))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Waits recorded"),
		output.StyleValue.Render(fmt.Sprintf("%d", totalEvents)))

	fmt.Println()
	fmt.Println(output.StyleMuted.Render(" Run 'waitwatch analyze' for the full breakdown."))
}
