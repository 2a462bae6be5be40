package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhisek/scoreprep/internal/problemgen"
	"github.com/abhisek/scoreprep/internal/reportsrc"
	"github.com/abhisek/scoreprep/internal/store"
)

var generateCmd = &cobra.Command{
	Use:   "generate [file]",
	Short: "Generate practice questions from a score report",
	Long: "Generate reads a score report (text or PDF; stdin when no file is given)\n" +
		"and prints exactly --count practice questions. Without a configured LLM\n" +
		"provider, or when the provider fails, questions come from the built-in bank.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		asJSON, _ := cmd.Flags().GetBool("json")
		forcePDF, _ := cmd.Flags().GetBool("pdf")
		save, _ := cmd.Flags().GetBool("save")
		userID, _ := cmd.Flags().GetString("user")
		source, _ := cmd.Flags().GetString("source")

		if save && userID == "" {
			return fmt.Errorf("--save needs --user")
		}

		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		text, err := reportsrc.ReadFile(path, cmd.InOrStdin(), forcePDF)
		if err != nil {
			return err
		}
		if source == "" && path != "" && path != reportsrc.Stdin {
			source = filepath.Base(path)
		}

		var (
			st     *store.Store
			events store.EventRepo
		)
		if save || appConfig.LLM.Enabled() {
			if st, err = openStore(); err != nil {
				return err
			}
			defer st.Close()
			events = st.EventRepo()
		}

		p, err := newPipeline(ctx, events)
		if err != nil {
			return err
		}

		res := p.Run(ctx, text, appConfig.Generation.Count)
		if res.Err != nil {
			logger.Warn("served fallback content", "source", res.Source, "err", res.Err)
		}

		var setID string
		if save && len(res.Questions) > 0 {
			if setID, err = problemgen.SaveResult(ctx, st.QuestionRepo(), userID, source, res); err != nil {
				return err
			}
		}

		out := cmd.OutOrStdout()
		if asJSON {
			return writeJSON(out, struct {
				*problemgen.Result
				SetID string `json:"set_id,omitempty"`
			}{res, setID})
		}

		renderQuestions(out, res)
		if setID != "" {
			fmt.Fprintf(out, "Saved as question set %s\n", setID)
		}
		return nil
	},
}

func init() {
	f := generateCmd.Flags()
	f.IntP("count", "n", problemgen.DefaultCount, "Number of questions")
	f.Bool("pdf", false, "Treat the input as a PDF even without a .pdf extension")
	f.Bool("json", false, "Print the result as JSON")
	f.Bool("save", false, "Save the question set to the database")
	f.String("user", "", "User id the saved set belongs to")
	f.String("source", "", "Source label for the saved set (default: file name)")
}
