package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/waitwatch/internal/config"
	"github.com/blackwell-systems/waitwatch/internal/output"
	"github.com/blackwell-systems/waitwatch/internal/store"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Manage wait categories",
	Long: `List wait categories. The five system categories are seeded on first
use; add your own with 'waitwatch categories add <name>'.`,
	RunE: runCategories,
}

var categoriesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a custom category",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoriesAdd,
}

func init() {
	categoriesCmd.Flags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	categoriesCmd.AddCommand(categoriesAddCmd)
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, args []string) error {
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

	categories, err := db.ListCategories()
	if err != nil {
		return fmt.Errorf("listing categories: %w", err)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(categories)
	}

	table := output.NewTable("ID", "Name", "Kind")
	for _, c := range categories {
		table.AddRow(c.ID, c.Name, string(c.Kind))
	}
	fmt.Print(table.Render())
	return nil
}

func runCategoriesAdd(cmd *cobra.Command, args []string) error {
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

	// Custom categories slot in after everything that already exists.
	maxOrder, err := db.MaxSortOrder()
	if err != nil {
		return fmt.Errorf("reading sort order: %w", err)
	}

	cat := store.WaitCategory{
		ID:        uuid.NewString(),
		Name:      args[0],
		Kind:      store.KindCustom,
		SortOrder: maxOrder + 1,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.InsertCategory(&cat); err != nil {
		return fmt.Errorf("inserting category: %w", err)
	}

	fmt.Printf("Added category %s (%s)\n", output.StyleBold.Render(cat.Name), cat.ID)
	return nil
}
