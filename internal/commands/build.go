package mathbench

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/mwiater/mathbench/internal/dashboard"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// buildCmd renders the animated HTML dashboard.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render the HTML comparison dashboard",
	Long: heredoc.Doc(`
		Render the benchmark comparison dashboard as a single HTML page. Every
		chart is bound to its surface, styled with the model palette and
		written with its scriptable options described for the browser shim.
	`),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset()
		if err != nil {
			return err
		}
		cfg := config()
		page, err := dashboard.Assemble(ds, dashboard.Options{
			Title: cfg.PageTitle(),
			Theme: cfg.ChartTheme(),
		})
		if err != nil {
			return fmt.Errorf("assemble dashboard: %w", err)
		}
		path := cfg.HTMLPath()
		if err := page.Write(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Dashboard written to %s (%d charts)\n", path, len(page.Panels))
		return nil
	},
}

func init() {
	buildCmd.Flags().StringP("output", "o", "", "path of the HTML page")
	_ = viper.BindPFlag("outputHTML", buildCmd.Flags().Lookup("output"))
	rootCmd.AddCommand(buildCmd)
}
