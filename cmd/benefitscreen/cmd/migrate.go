package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/benefitpath/screener/internal/core/config"
	"github.com/benefitpath/screener/internal/core/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage rule store schema migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply pending migrations",
	RunE:  runMigrateUp,
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	RunE:  runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateStatusCmd)
}

// resolveDatabaseURL applies the usual precedence: --db-url flag over config.
func resolveDatabaseURL() (string, error) {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return "", fmt.Errorf("failed to load config: %w", err)
	}
	if dbURL != "" {
		return dbURL, nil
	}
	return cfg.DatabaseURL, nil
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	url, err := resolveDatabaseURL()
	if err != nil {
		return err
	}

	database, err := db.Open(url)
	if err != nil {
		return fmt.Errorf("failed to open rule store: %w", err)
	}
	defer database.Close()

	if err := db.MigrateUp(database); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	log.Println("migrations applied")
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	url, err := resolveDatabaseURL()
	if err != nil {
		return err
	}

	database, err := db.Open(url)
	if err != nil {
		return fmt.Errorf("failed to open rule store: %w", err)
	}
	defer database.Close()

	statuses, err := db.MigrateStatus(database)
	if err != nil {
		return fmt.Errorf("failed to read migration status: %w", err)
	}

	for _, s := range statuses {
		state := "pending"
		if s.Applied {
			state = "applied"
		}
		fmt.Printf("%-30s %s\n", s.ID, state)
	}
	return nil
}
