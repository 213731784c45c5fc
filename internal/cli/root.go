package cli

import (
	"github.com/spf13/cobra"

	"github.com/pablasso/maleta/internal/version"
)

var rootCmd = &cobra.Command{
	Use:     "maleta",
	Short:   "Weather-aware packing checklists for trips",
	Long:    `Maleta generates a packing checklist from your trip details and the weather forecast, then tracks what you've packed.`,
	Version: version.Version,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(weatherCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(deleteCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
