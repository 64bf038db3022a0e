package mathbench

import (
	"github.com/mwiater/mathbench/internal/tui"
	"github.com/spf13/cobra"
)

// browseCmd opens the interactive category browser.
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse categories interactively in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset()
		if err != nil {
			return err
		}
		return tui.Run(ds)
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
