package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/scoreprep/internal/problemgen"
	"github.com/abhisek/scoreprep/internal/report"
	"github.com/abhisek/scoreprep/internal/reportsrc"
	"github.com/abhisek/scoreprep/internal/ui/theme"
)

var promptCmd = &cobra.Command{
	Use:   "prompt [file]",
	Short: "Print the generation request built from a score report",
	Long: "Prompt prints the system prompt, the instruction and, with --schema, the\n" +
		"output schema that generate would send to the LLM provider. Nothing is sent.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		forcePDF, _ := cmd.Flags().GetBool("pdf")
		withSchema, _ := cmd.Flags().GetBool("schema")

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
		req := problemgen.BuildRequestFor(t, report.NewParser(t).Parse(text), appConfig.Generation.Count)

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, theme.Heading.Render("SYSTEM"))
		fmt.Fprintln(out, req.System)
		fmt.Fprintln(out)
		fmt.Fprintln(out, theme.Heading.Render("INSTRUCTION"))
		fmt.Fprint(out, req.Instruction)

		if withSchema {
			schema, err := json.MarshalIndent(req.Schema.Definition, "", "  ")
			if err != nil {
				return fmt.Errorf("encode schema: %w", err)
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, theme.Heading.Render("SCHEMA "+req.Schema.Name))
			fmt.Fprintln(out, string(schema))
		}
		return nil
	},
}

func init() {
	promptCmd.Flags().IntP("count", "n", problemgen.DefaultCount, "Number of questions")
	promptCmd.Flags().Bool("pdf", false, "Treat the input as a PDF even without a .pdf extension")
	promptCmd.Flags().Bool("schema", false, "Also print the output schema")
}
