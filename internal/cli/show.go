package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pablasso/maleta/internal/export"
	"github.com/pablasso/maleta/internal/trip"
)

var showCmd = &cobra.Command{
	Use:   "show <trip>",
	Short: "Print the checklist report for a saved trip",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := trip.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Println(export.Text(t))
		return nil
	},
}
