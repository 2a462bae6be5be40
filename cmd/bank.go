package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/scoreprep/internal/problemgen"
	"github.com/abhisek/scoreprep/internal/report"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Browse and check the fallback question bank",
}

var bankListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bank templates (optionally for one section or topic)",
	RunE: func(cmd *cobra.Command, args []string) error {
		section, _ := cmd.Flags().GetString("section")
		topic, _ := cmd.Flags().GetString("topic")

		bank, err := loadBank()
		if err != nil {
			return err
		}
		t := bank.Taxonomy()

		var topics []report.Topic
		switch {
		case section != "" && topic != "":
			return fmt.Errorf("use --section or --topic, not both")
		case section != "":
			s, ok := t.CanonicalSection(section)
			if !ok {
				return fmt.Errorf("no section named %q", section)
			}
			topics = t.Topics(s)
		case topic != "":
			tp, ok := t.CanonicalTopic(topic)
			if !ok {
				return fmt.Errorf("no topic named %q", topic)
			}
			topics = []report.Topic{tp}
		default:
			topics = t.AllTopics()
		}

		out := cmd.OutOrStdout()

		// Header.
		fmt.Fprintf(out, "%-24s  %-42s  %-6s  %s\n", "ID", "Topic", "Level", "Question")
		fmt.Fprintln(out, strings.Repeat("─", 120))

		n := 0
		for _, tp := range topics {
			for _, q := range bank.Templates(tp) {
				fmt.Fprintf(out, "%-24s  %-42s  %-6s  %s\n", q.ID, tp, q.Difficulty, truncate(firstLine(q.Text), 40))
				n++
			}
		}

		fmt.Fprintf(out, "\n%d templates\n", n)
		return nil
	},
}

var bankCheckCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate a question bank file against the taxonomy",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			bank *problemgen.Bank
			err  error
		)
		if len(args) == 1 {
			t := report.DefaultTaxonomy()
			if appConfig.TaxonomyPath != "" {
				if t, err = report.LoadTaxonomy(appConfig.TaxonomyPath); err != nil {
					return err
				}
			}
			bank, err = problemgen.LoadBank(args[0], t)
		} else {
			bank, err = loadBank()
		}
		if err != nil {
			return err
		}

		total := 0
		for _, tp := range bank.Taxonomy().AllTopics() {
			total += len(bank.Templates(tp))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "OK: %d templates across %d topics\n", total, len(bank.Taxonomy().AllTopics()))
		return nil
	},
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func init() {
	bankListCmd.Flags().StringP("section", "s", "", "Only templates for topics of this section")
	bankListCmd.Flags().StringP("topic", "t", "", "Only templates for this topic")

	bankCmd.AddCommand(bankListCmd)
	bankCmd.AddCommand(bankCheckCmd)
}
