package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/scoreprep/internal/report"
	"github.com/abhisek/scoreprep/internal/reportsrc"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Show the performance summary extracted from a score report",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		forcePDF, _ := cmd.Flags().GetBool("pdf")

		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		text, err := reportsrc.ReadFile(path, cmd.InOrStdin(), forcePDF)
		if err != nil {
			return err
		}

		bank, err := loadBank()
		if err != nil {
			return err
		}
		t := bank.Taxonomy()
		r := report.NewParser(t).Parse(text)

		if asJSON {
			return writeJSON(cmd.OutOrStdout(), map[string]any{
				"report":          r,
				"weak_topics":     t.WeakTopicsBySection(r),
				"ranked_sections": t.RankByIncorrect(r),
			})
		}
		renderReport(cmd.OutOrStdout(), t, r)
		return nil
	},
}

func init() {
	parseCmd.Flags().Bool("json", false, "Print the summary as JSON")
	parseCmd.Flags().Bool("pdf", false, "Treat the input as a PDF even without a .pdf extension")
}
