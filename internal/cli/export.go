package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pablasso/maleta/internal/export"
	"github.com/pablasso/maleta/internal/trip"
)

var (
	exportOut string
	exportPDF bool
)

var exportCmd = &cobra.Command{
	Use:   "export <trip>",
	Short: "Write the checklist report to a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := trip.Load(args[0])
		if err != nil {
			return err
		}

		out := exportOut
		if out == "" {
			ext := ".txt"
			if exportPDF {
				ext = ".pdf"
			}
			out = fmt.Sprintf("packing-list-%s%s", t.Name, ext)
		}

		if exportPDF || strings.HasSuffix(strings.ToLower(out), ".pdf") {
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", out, err)
			}
			defer f.Close()

			if err := export.PDF(t, f); err != nil {
				return fmt.Errorf("failed to write PDF: %w", err)
			}
		} else {
			if err := os.WriteFile(out, []byte(export.Text(t)), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}
		}

		fmt.Printf("Exported %s\n", out)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default packing-list-<name>.txt)")
	exportCmd.Flags().BoolVar(&exportPDF, "pdf", false, "Write a PDF instead of plain text")
}
