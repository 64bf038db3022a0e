package mathbench

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/mwiater/mathbench/internal/export"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// exportCmd writes the spreadsheet report.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the benchmark spreadsheet report",
	Long: heredoc.Doc(`
		Write the benchmark as a styled workbook: an executive summary, a
		category comparison, one topic sheet per category and a timing
		analysis. Accuracy cells are filled by performance bucket.
	`),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset()
		if err != nil {
			return err
		}
		path := config().XLSXPath()
		if err := export.Write(ds, path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "path of the workbook")
	_ = viper.BindPFlag("outputXLSX", exportCmd.Flags().Lookup("output"))
	rootCmd.AddCommand(exportCmd)
}
