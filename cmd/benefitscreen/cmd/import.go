package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/benefitpath/screener/internal/core/config"
	"github.com/benefitpath/screener/internal/core/db"
	"github.com/benefitpath/screener/internal/core/store"
	"github.com/benefitpath/screener/internal/types"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import rule definitions into the rule store",
	Long:  `Loads eligibility rules and interaction rules from JSON files into the rule store. Rules without an id get a generated one. Interaction rules are appended in file order, which is their detection order.`,
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().String("rules", "", "path to eligibility rules JSON file")
	importCmd.Flags().String("interactions", "", "path to interaction rules JSON file")
}

func runImport(cmd *cobra.Command, args []string) error {
	rulesPath, _ := cmd.Flags().GetString("rules")
	interactionsPath, _ := cmd.Flags().GetString("interactions")
	if rulesPath == "" && interactionsPath == "" {
		return fmt.Errorf("nothing to import: pass --rules and/or --interactions")
	}

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if dbURL != "" {
		cfg.DatabaseURL = dbURL
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

	ctx := context.Background()

	if rulesPath != "" {
		count, err := importRules(ctx, ruleStore, rulesPath)
		if err != nil {
			return err
		}
		log.Printf("imported %d eligibility rule(s) from %s", count, rulesPath)
	}

	if interactionsPath != "" {
		count, err := importInteractions(ctx, ruleStore, interactionsPath)
		if err != nil {
			return err
		}
		log.Printf("imported %d interaction rule(s) from %s", count, interactionsPath)
	}

	return nil
}

// importRules loads a JSON array of eligibility rule definitions.
func importRules(ctx context.Context, ruleStore *store.Store, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read rules file: %w", err)
	}

	var rules []types.EligibilityRule
	if err := json.Unmarshal(data, &rules); err != nil {
		return 0, fmt.Errorf("failed to parse rules file: %w", err)
	}

	for i, rule := range rules {
		if _, err := ruleStore.InsertRule(ctx, rule); err != nil {
			return i, fmt.Errorf("rule %d (%s): %w", i, rule.ProgramID, err)
		}
	}
	return len(rules), nil
}

// importInteractions loads a JSON array of interaction rule definitions.
func importInteractions(ctx context.Context, ruleStore *store.Store, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read interactions file: %w", err)
	}

	var rules []types.InteractionRule
	if err := json.Unmarshal(data, &rules); err != nil {
		return 0, fmt.Errorf("failed to parse interactions file: %w", err)
	}

	for i, rule := range rules {
		if _, err := ruleStore.InsertInteractionRule(ctx, rule); err != nil {
			return i, fmt.Errorf("interaction rule %d: %w", i, err)
		}
	}
	return len(rules), nil
}
