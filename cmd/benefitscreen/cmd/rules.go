package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benefitpath/screener/internal/core/config"
	"github.com/benefitpath/screener/internal/core/db"
	"github.com/benefitpath/screener/internal/core/store"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect the rule store",
}

var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored eligibility rules",
	RunE:  runRulesList,
}

func init() {
	rootCmd.AddCommand(rulesCmd)
	rulesCmd.AddCommand(rulesListCmd)
}

func runRulesList(cmd *cobra.Command, args []string) error {
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

	rules, err := ruleStore.ListRules(context.Background())
	if err != nil {
		return err
	}

	for _, r := range rules {
		state := "inactive"
		if r.Active {
			state = "active"
		}
		fmt.Printf("%-38s %-10s %-28s %-6s certainty=%.2f\n",
			r.RuleID, r.Jurisdiction, r.ProgramID, state, r.BaseCertainty)
	}
	fmt.Printf("%d rule(s)\n", len(rules))
	return nil
}
