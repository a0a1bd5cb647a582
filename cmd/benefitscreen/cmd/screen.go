package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/benefitpath/screener/internal/core/catalog"
	"github.com/benefitpath/screener/internal/core/config"
	"github.com/benefitpath/screener/internal/core/db"
	"github.com/benefitpath/screener/internal/core/service"
	"github.com/benefitpath/screener/internal/core/store"
	"github.com/benefitpath/screener/internal/types"
)

var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Run a screening from a facts file",
	Long:  `Reads a flat JSON object of fact values, evaluates it against the jurisdiction's active rules, and prints the ranked program matches with document checklists and interaction warnings.`,
	RunE:  runScreen,
}

func init() {
	rootCmd.AddCommand(screenCmd)
	screenCmd.Flags().String("facts", "", "path to facts JSON file (required)")
	screenCmd.Flags().String("jurisdiction", "", "jurisdiction to screen (default from config)")
	screenCmd.Flags().String("format", "text", "output format (text, json)")
	screenCmd.MarkFlagRequired("facts")
}

func runScreen(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if dbURL != "" {
		cfg.DatabaseURL = dbURL
	}

	jurisdiction, _ := cmd.Flags().GetString("jurisdiction")
	if jurisdiction == "" {
		jurisdiction = cfg.Jurisdiction
	}
	format, _ := cmd.Flags().GetString("format")
	factsPath, _ := cmd.Flags().GetString("facts")

	data, err := os.ReadFile(factsPath)
	if err != nil {
		return fmt.Errorf("failed to read facts file: %w", err)
	}
	facts, err := types.ParseFactMap(data)
	if err != nil {
		return fmt.Errorf("failed to parse facts file: %w", err)
	}

	database, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to open rule store: %w", err)
	}
	defer database.Close()

	ruleStore, err := store.New(database)
	if err != nil {
		return err
	}
	docs, err := catalog.Load()
	if err != nil {
		return err
	}
	screener, err := service.New(ruleStore, docs)
	if err != nil {
		return err
	}

	// The core has no internal cancellation points; the timeout wraps the
	// whole evaluation.
	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
	defer cancel()

	result, err := screener.Screen(ctx, jurisdiction, facts)
	if err != nil {
		return fmt.Errorf("screening failed: %w", err)
	}

	if cfg.MaxResults > 0 && len(result.Matches) > cfg.MaxResults {
		result.Matches = result.Matches[:cfg.MaxResults]
	}

	log.Printf("screening complete: %s", service.Summary(result))

	switch format {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	case "text":
		fmt.Print(service.RenderReport(result))
		return nil
	default:
		return fmt.Errorf("unknown format: %s (expected text or json)", format)
	}
}
