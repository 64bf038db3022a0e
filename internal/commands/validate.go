package mathbench

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mwiater/mathbench/internal/dataset"
	"github.com/mwiater/mathbench/internal/logging"
	"github.com/spf13/cobra"
)

// validateCmd checks a benchmark document against the schema and every
// cross-field invariant, reporting all violations rather than the first.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the benchmark document for broken invariants",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		raw := dataset.Raw()
		source := "embedded dataset"
		if dataFile != "" {
			b, err := os.ReadFile(dataFile)
			if err != nil {
				return fmt.Errorf("read dataset %s: %w", dataFile, err)
			}
			raw, source = b, dataFile
		}

		bad := color.New(color.FgRed, color.Bold)
		good := color.New(color.FgGreen, color.Bold)

		ds, err := dataset.Parse(raw)
		if err != nil {
			bad.Fprintf(out, "FAIL %s: %v\n", source, err)
			return err
		}
		issues := dataset.Validate(ds)
		for _, issue := range issues {
			bad.Fprint(out, "  ✗ ")
			fmt.Fprintln(out, issue.String())
		}
		logging.LogEvent("[VALIDATE] %s issues=%d", source, len(issues))
		if len(issues) > 0 {
			bad.Fprintf(out, "FAIL %s: %d issue(s)\n", source, len(issues))
			return fmt.Errorf("%w: %d issue(s)", dataset.ErrInvalid, len(issues))
		}
		good.Fprintf(out, "OK %s: %d models, %d categories\n", source, len(ds.ModelOrder), len(ds.Categories))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
