package mathbench

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mwiater/mathbench/internal/dataset"
	"github.com/mwiater/mathbench/internal/display"
	"github.com/spf13/cobra"
)

var (
	summaryHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Padding(0, 1)
	summaryCell   = lipgloss.NewStyle().Padding(0, 1)
	summaryBorder = lipgloss.NewStyle().Foreground(lipgloss.Color("62"))
)

// summaryCmd prints per-category accuracy for every model as a terminal table.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the accuracy table in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), summaryTable(ds).Render())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

// accuracyCell colors a formatted accuracy by its performance bucket.
func accuracyCell(accuracy float64) string {
	return display.Style(display.BucketOf(accuracy)).Render(display.Pct(accuracy))
}

func summaryTable(ds *dataset.Dataset) *table.Table {
	models := ds.OrderedModels()
	headers := []string{"Category", "Questions"}
	for _, m := range models {
		headers = append(headers, m.Name)
	}

	rows := make([][]string, 0, len(ds.Categories)+1)
	for _, c := range ds.Categories {
		row := []string{c.Name, strconv.Itoa(c.Questions)}
		for _, m := range models {
			res, ok := c.Results[m.ID]
			if !ok {
				row = append(row, "-")
				continue
			}
			row = append(row, accuracyCell(res.Accuracy))
		}
		rows = append(rows, row)
	}
	overall := []string{"Overall", strconv.Itoa(ds.TotalQuestions())}
	for _, m := range models {
		overall = append(overall, accuracyCell(ds.Overall(m.ID).Accuracy))
	}
	rows = append(rows, overall)

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(summaryBorder).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return summaryHeader
			}
			return summaryCell
		})
}
