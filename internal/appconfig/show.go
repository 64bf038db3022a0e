package appconfig

import (
	"fmt"
	"io"

	"github.com/mwiater/mathbench/internal/chart"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg *Config, fallback Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	c := fallback
	if cfg != nil {
		c = *cfg
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Debug:           %v\n", c.Debug)
	fmt.Fprintf(out, "  Title:           %s\n", c.PageTitle())
	fmt.Fprintf(out, "  HTML Output:     %s\n", c.HTMLPath())
	fmt.Fprintf(out, "  XLSX Output:     %s\n", c.XLSXPath())
	fmt.Fprintf(out, "  Log File:        %s\n", c.LogFilePath())

	theme := c.ChartTheme()
	if theme == (chart.Theme{}) {
		fmt.Fprintln(out, "  Theme:           defaults")
		return
	}
	if theme.FontFamily != "" {
		fmt.Fprintf(out, "  Font Family:     %s\n", theme.FontFamily)
	}
	if theme.AnimationMs > 0 {
		fmt.Fprintf(out, "  Animation:       %d ms\n", theme.AnimationMs)
	}
	if theme.LegendColor != "" {
		fmt.Fprintf(out, "  Legend Color:    %s\n", theme.LegendColor)
	}
	if theme.TooltipBackground != "" {
		fmt.Fprintf(out, "  Tooltip Bg:      %s\n", theme.TooltipBackground)
	}
}
