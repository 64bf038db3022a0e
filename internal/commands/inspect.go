package mathbench

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/k0kubun/pp"
	"github.com/mwiater/mathbench/internal/chart"
	"github.com/mwiater/mathbench/internal/dashboard"
	"github.com/mwiater/mathbench/internal/logging"
	"github.com/spf13/cobra"
)

var inspectJSON bool

// inspectCmd prints the configuration a dashboard chart resolves to.
var inspectCmd = &cobra.Command{
	Use:   "inspect <surface|shape>",
	Short: "Print the resolved configuration of one dashboard chart",
	Long: heredoc.Doc(`
		Print the configuration one dashboard chart resolves to after layout.
		The argument is a surface id (accuracyByCategory, topics-<category>, ...)
		or a chart shape (grouped-bar, horizontal-bar, radar, doughnut,
		stacked-bar), in which case the first panel of that shape is shown.

		With --json the chart is printed as the page embeds it, scriptable
		values left as descriptors.
	`),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset()
		if err != nil {
			return err
		}
		cfg := config()
		page, err := dashboard.Assemble(ds, dashboard.Options{Title: cfg.PageTitle(), Theme: cfg.ChartTheme()})
		if err != nil {
			return err
		}
		page.Layout()

		panel, ok := findPanel(page, args[0])
		if !ok {
			return fmt.Errorf("no chart for %q", args[0])
		}
		logging.LogChart("inspect", panel.SurfaceID, string(panel.Shape), nil)

		out := cmd.OutOrStdout()
		if inspectJSON {
			spec, err := panel.Chart.Spec()
			if err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := json.Indent(&buf, spec, "", "  "); err != nil {
				return err
			}
			fmt.Fprintln(out, buf.String())
			return nil
		}
		_, err = pp.Fprintln(out, panel.Chart.Resolved())
		return err
	},
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "print the chart as embedded JSON")
	rootCmd.AddCommand(inspectCmd)
}

// findPanel matches a surface id first, then a shape name.
func findPanel(page *dashboard.Page, arg string) (dashboard.Panel, bool) {
	if p, ok := page.Panel(arg); ok {
		return p, true
	}
	shape := chart.Shape(strings.ToLower(arg))
	for _, p := range page.Panels {
		if p.Shape == shape {
			return p, true
		}
	}
	return dashboard.Panel{}, false
}
