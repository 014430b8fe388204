package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/waitwatch/internal/config"
	"github.com/blackwell-systems/waitwatch/internal/engine"
	"github.com/blackwell-systems/waitwatch/internal/output"
)

var analyzeDays int

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Full analytics over your wait history",
	Long: `Compute and display the full analytics snapshot: total leakage,
expensive waits, time-of-day patterns, fragmentation and drift indices,
recurring clusters, week-over-week comparisons, and edge cases.

Week-over-week comparisons always consider the full history, not just the
--days window.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().IntVar(&analyzeDays, "days", 0, "Analysis window in days (default from config, 30)")
	analyzeCmd.Flags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
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
	categories, err := db.ListCategories()
	if err != nil {
		return fmt.Errorf("listing categories: %w", err)
	}

	days := analyzeDays
	if days <= 0 {
		days = cfg.RangeDays
	}

	cal := calendarFor(cfg)
	now := cal.Now()
	rng := &engine.DateRange{Start: now.AddDate(0, 0, -days), End: now}

	snap := engine.New(cal).Snapshot(events, categories, rng)

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	}

	renderLeakage(snap.LifeLeakage, days)
	renderExpensiveWaits(snap.ExpensiveWaits)
	renderPeakHours(snap.PeakHours, snap.PeakDelayHour)
	renderIndices(snap)
	renderClusters(snap.RecurringClusters)
	renderComparative(snap.Comparative)
	renderEdgeCases(snap.EdgeCases)

	return nil
}

func renderLeakage(l engine.LifeLeakage, days int) {
	fmt.Println(output.Section(fmt.Sprintf("Life Leakage (last %d days)", days)))

	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Total waiting"),
		output.StyleValue.Render(output.FormatDuration(l.TotalSeconds)))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Share of today"),
		output.StyleValue.Render(output.FormatPercent(l.PercentOfDay)))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Share of this week"),
		output.StyleValue.Render(output.FormatPercent(l.PercentOfWeek)))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Lost this month"),
		output.StyleValue.Render(output.FormatDuration(l.MonthSeconds)))

	fmt.Println()
}

func renderExpensiveWaits(waits []engine.ExpensiveWait) {
	fmt.Println(output.Section("Expensive Waits"))

	if len(waits) == 0 {
		fmt.Printf(" %s\n\n", output.StyleMuted.Render("No waits in the analysis window"))
		return
	}

	table := output.NewTable("Category", "Total", "Count", "Cost").AlignRight(1, 2, 3)
	for _, w := range waits {
		table.AddRow(
			w.CategoryName,
			output.FormatDuration(w.TotalSeconds),
			fmt.Sprintf("%d", w.Frequency),
			fmt.Sprintf("%.0f", w.WaitCost),
		)
	}
	fmt.Print(table.Render())
	fmt.Println()
}

func renderPeakHours(slots []engine.PeakHourSlot, peak *int) {
	fmt.Println(output.Section("Time of Day"))

	for _, s := range slots {
		fmt.Printf(" %s %s %s\n",
			output.StyleLabel.Render(string(s.Period)),
			output.StyleValue.Render(output.FormatDuration(s.TotalSeconds)),
			output.StyleMuted.Render(fmt.Sprintf("(%d waits)", s.EventCount)))
	}

	if peak != nil {
		fmt.Printf("\n %s %s\n",
			output.StyleLabel.Render("Peak delay hour"),
			output.StyleValue.Render(output.FormatHour(*peak)))
	}

	fmt.Println()
}

func renderIndices(snap engine.AnalyticsSnapshot) {
	fmt.Println(output.Section("Indices"))

	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Fragmentation (today)"),
		output.IndexBar(snap.FragmentationIndex, 20))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Holding pattern (7d)"),
		output.IndexBar(snap.DriftIndex, 20))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Reclaimable time"),
		output.StyleValue.Render(output.FormatDuration(snap.ReclaimableSeconds)))

	fmt.Println()
}

func renderClusters(clusters []engine.RecurringCluster) {
	fmt.Println(output.Section("Recurring Delay Clusters"))

	if len(clusters) == 0 {
		fmt.Printf(" %s\n\n", output.StyleMuted.Render("No category with repeated waits yet"))
		return
	}

	table := output.NewTable("Category", "Count", "Avg", "Last seen").AlignRight(1, 2)
	for _, c := range clusters {
		table.AddRow(
			c.CategoryName,
			fmt.Sprintf("%d", c.Frequency),
			output.FormatDuration(c.AvgSeconds),
			output.FormatTimestamp(c.LastOccurrence),
		)
	}
	fmt.Print(table.Render())
	fmt.Println()
}

func renderComparative(c engine.Comparative) {
	fmt.Println(output.Section("Week over Week"))

	if c.WeekOverWeekGrowth != nil {
		fmt.Printf(" %s %s\n",
			output.StyleLabel.Render("Total waiting"),
			output.TrendArrowPercent(*c.WeekOverWeekGrowth))
	} else {
		fmt.Printf(" %s\n", output.StyleMuted.Render("Not enough history for a week-over-week comparison"))
	}

	if c.MorningEveningRatio != nil {
		fmt.Printf(" %s %s\n",
			output.StyleLabel.Render("Morning/evening"),
			output.StyleValue.Render(fmt.Sprintf("%.2f", *c.MorningEveningRatio)))
	}

	if c.MostImprovedCategoryName != nil {
		fmt.Printf(" %s %s\n",
			output.StyleLabel.Render("Most improved"),
			output.StyleSuccess.Render(*c.MostImprovedCategoryName))
	}

	if len(c.CategoryGrowth) > 0 {
		fmt.Printf("\n %s\n", output.StyleMuted.Render("By category:"))
		for _, g := range c.CategoryGrowth {
			fmt.Printf("   %s %s\n",
				output.StyleLabel.Render(g.CategoryName),
				output.TrendArrowPercent(g.GrowthPercent))
		}
	}

	fmt.Println()
}

func renderEdgeCases(e engine.EdgeCaseCounts) {
	fmt.Println(output.Section("Edge Cases"))

	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Ultra-short (<10s)"),
		output.StyleValue.Render(fmt.Sprintf("%d", e.UltraShortCount)))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Marathons (>1h)"),
		output.StyleValue.Render(fmt.Sprintf("%d", e.MarathonCount)))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Chained waits"),
		output.StyleValue.Render(fmt.Sprintf("%d", e.ChainCount)))

	fmt.Println()
}
