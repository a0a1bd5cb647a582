package cmd

import (
	"github.com/spf13/cobra"
)

var (
	configFile string
	dbURL      string
)

var rootCmd = &cobra.Command{
	Use:   "benefitscreen",
	Short: "Benefit eligibility screening engine",
	Long:  `benefitscreen screens self-reported circumstances against declarative eligibility rules for public and veteran benefit programs, ranks the matches, and warns about known benefit interactions.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&dbURL, "db-url", "", "rule store URL (sqlite://path or postgres://...)")
}

func Execute() error {
	return rootCmd.Execute()
}
