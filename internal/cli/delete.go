package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pablasso/maleta/internal/trip"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <trip>",
	Short: "Delete a saved trip",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := trip.Delete(args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted trip %s\n", args[0])
		return nil
	},
}
