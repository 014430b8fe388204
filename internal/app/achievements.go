package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/waitwatch/internal/achievements"
	"github.com/blackwell-systems/waitwatch/internal/config"
	"github.com/blackwell-systems/waitwatch/internal/output"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Show achievement progress",
	Long: `Show progress toward all achievements. Progress is recomputed from the
full event history every time; nothing is persisted.`,
	RunE: runAchievements,
}

func init() {
	achievementsCmd.Flags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(achievementsCmd)
}

func runAchievements(cmd *cobra.Command, args []string) error {
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

	progress := achievements.NewEvaluator(calendarFor(cfg)).Evaluate(events)

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(progress)
	}

	fmt.Println(output.Section("Achievements"))

	for i, p := range progress {
		def := achievements.Catalogue[i]
		mark := " "
		if p.Unlocked {
			mark = output.StyleSuccess.Render("✓")
		}
		fmt.Printf(" %s %s %s\n",
			output.StyleLabel.Render(string(def.ID)),
			mark,
			output.ProgressBar(p.Current, p.Target, 20))
	}

	fmt.Println()
	return nil
}
