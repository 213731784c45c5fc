package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pablasso/maleta/internal/trip"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved trips",
	RunE: func(cmd *cobra.Command, args []string) error {
		trips, err := trip.List()
		if err != nil {
			return err
		}

		if len(trips) == 0 {
			fmt.Println("No saved trips. Run `maleta generate` to create one.")
			return nil
		}

		for _, t := range trips {
			completed, total := t.Items.Progress()
			fmt.Printf("%s  %-20s %s, %d nights, %s  [%d/%d packed]\n",
				t.ID, t.Name, t.Attributes.Location, t.Attributes.Nights,
				t.Attributes.TripType, completed, total)
		}
		return nil
	},
}
