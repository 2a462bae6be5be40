package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/scoreprep/internal/llm"
	"github.com/abhisek/scoreprep/internal/problemgen"
	"github.com/abhisek/scoreprep/internal/store"
	"github.com/abhisek/scoreprep/internal/ui/theme"
)

const timeLayout = "2006-01-02 15:04:05"

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse saved question sets and recorded generation requests",
}

var historySetsCmd = &cobra.Command{
	Use:   "sets",
	Short: "List a student's saved question sets, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, _ := cmd.Flags().GetString("user")
		limit, _ := cmd.Flags().GetInt("limit")
		asJSON, _ := cmd.Flags().GetBool("json")
		if user == "" {
			return fmt.Errorf("--user is required")
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		sets, err := s.QuestionRepo().ListQuestionSets(cmd.Context(), user, limit)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if asJSON {
			return writeJSON(w, sets)
		}
		if len(sets) == 0 {
			fmt.Fprintf(w, "No saved question sets for %s.\n", user)
			return nil
		}

		fmt.Fprintf(w, "%-36s  %-19s  %-16s  %s\n", "ID", "Created", "Origin", "Source")
		fmt.Fprintln(w, rule(90))
		for _, set := range sets {
			fmt.Fprintf(w, "%-36s  %-19s  %-16s  %s\n",
				set.ID, set.CreatedAt.Local().Format(timeLayout), set.Origin, set.Source)
		}
		return nil
	},
}

var historySetCmd = &cobra.Command{
	Use:   "set <id>",
	Short: "Show a saved question set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		set, err := s.QuestionRepo().GetQuestionSet(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if set == nil {
			return fmt.Errorf("question set %s not found", args[0])
		}

		w := cmd.OutOrStdout()
		if asJSON {
			return writeJSON(w, set)
		}
		fmt.Fprintf(w, "%s %s  %s %s  %s %s\n\n",
			theme.Label.Render("Student:"), set.UserID,
			theme.Label.Render("Report:"), set.Source,
			theme.Label.Render("Saved:"), set.CreatedAt.Local().Format(timeLayout))
		renderQuestions(w, &problemgen.Result{
			Questions: problemgen.FromStored(set.Questions),
			Source:    problemgen.Source(set.Origin),
		})
		return nil
	},
}

var historyEventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List recent generation requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		var opts store.QueryOpts
		opts.Limit, _ = cmd.Flags().GetInt("limit")
		opts.Purpose, _ = cmd.Flags().GetString("purpose")
		opts.RequestID, _ = cmd.Flags().GetString("request")
		opts.FailedOnly, _ = cmd.Flags().GetBool("failed")
		asJSON, _ := cmd.Flags().GetBool("json")

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryLLMEvents(cmd.Context(), opts)
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		w := cmd.OutOrStdout()
		if asJSON {
			return writeJSON(w, events)
		}
		if len(events) == 0 {
			fmt.Fprintln(w, "No generation requests recorded.")
			return nil
		}

		fmt.Fprintf(w, "%-5s  %-19s  %-14s  %-28s  %6s  %6s  %7s  %s\n",
			"ID", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
		fmt.Fprintln(w, rule(100))
		for _, e := range events {
			status := theme.Correct.Render("✓")
			if !e.Success {
				status = theme.Incorrect.Render("✗ " + e.ErrorKind)
			}
			fmt.Fprintf(w, "%-5d  %-19s  %-14s  %-28s  %6d  %6d  %7d  %s\n",
				e.ID, e.Timestamp.Local().Format(timeLayout), e.Purpose, truncate(e.Model, 28),
				e.InputTokens, e.OutputTokens, e.LatencyMs, status)
		}
		return nil
	},
}

var historyEventCmd = &cobra.Command{
	Use:   "event <id>",
	Short: "Show the full prompt and response of a generation request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid event id %q", args[0])
		}
		asJSON, _ := cmd.Flags().GetBool("json")

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		e, err := s.EventRepo().GetLLMEvent(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("event %d not found", id)
		}

		w := cmd.OutOrStdout()
		if asJSON {
			return writeJSON(w, e)
		}

		field := func(name string, v any) {
			fmt.Fprintf(w, "%s %v\n", theme.Label.Render(fmt.Sprintf("%-9s", name+":")), v)
		}
		field("ID", e.ID)
		field("Time", e.Timestamp.Local().Format(timeLayout))
		field("Request", e.RequestID)
		field("Provider", e.Provider)
		field("Model", e.Model)
		field("Purpose", e.Purpose)
		field("Tokens", fmt.Sprintf("%d in / %d out", e.InputTokens, e.OutputTokens))
		field("Latency", fmt.Sprintf("%dms", e.LatencyMs))
		if e.Success {
			field("Status", theme.Correct.Render("ok"))
		} else {
			field("Status", theme.Incorrect.Render(fmt.Sprintf("[%s] %s", e.ErrorKind, e.ErrorMessage)))
		}

		section(w, "PROMPT", e.RequestBody)
		section(w, "RESPONSE", e.ResponseBody)
		return nil
	},
}

var historyUsageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show token usage and estimated cost of generation requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		byPurpose, err := s.EventRepo().LLMUsageByPurpose(ctx)
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		byModel, err := s.EventRepo().LLMUsageByModel(ctx)
		if err != nil {
			return fmt.Errorf("query model usage: %w", err)
		}

		w := cmd.OutOrStdout()
		if asJSON {
			return writeJSON(w, map[string]any{"by_purpose": byPurpose, "by_model": byModel})
		}
		if len(byPurpose) == 0 {
			fmt.Fprintln(w, "No generation requests recorded.")
			return nil
		}

		renderPurposeUsage(w, byPurpose)
		if len(byModel) > 0 {
			fmt.Fprintln(w)
			renderModelCost(w, byModel)
		}
		return nil
	},
}

func renderPurposeUsage(w io.Writer, stats []store.PurposeUsage) {
	fmt.Fprintln(w, theme.Heading.Render("Usage by purpose"))
	fmt.Fprintf(w, "%-16s  %6s  %6s  %10s  %10s  %10s  %8s\n",
		"Purpose", "Calls", "Failed", "Input", "Output", "Total", "Avg Ms")
	fmt.Fprintln(w, rule(76))

	var calls, failed, in, out int
	for _, st := range stats {
		fmt.Fprintf(w, "%-16s  %6d  %6d  %10d  %10d  %10d  %8d\n",
			st.Purpose, st.Calls, st.Failures, st.InputTokens, st.OutputTokens,
			st.InputTokens+st.OutputTokens, st.AvgLatencyMs)
		calls += st.Calls
		failed += st.Failures
		in += st.InputTokens
		out += st.OutputTokens
	}
	fmt.Fprintln(w, rule(76))
	fmt.Fprintf(w, "%-16s  %6d  %6d  %10d  %10d  %10d\n", "TOTAL", calls, failed, in, out, in+out)
}

func renderModelCost(w io.Writer, usage []store.ModelUsage) {
	fmt.Fprintln(w, theme.Heading.Render("Estimated cost (USD)"))
	fmt.Fprintf(w, "%-32s  %6s  %10s  %10s  %10s\n", "Model", "Calls", "Input", "Output", "Cost")
	fmt.Fprintln(w, rule(76))

	var total float64
	var unpriced []string
	for _, mu := range usage {
		cost := "?"
		if c := llm.LookupCost(mu.Model); c != nil {
			usd := c.Cost(mu.InputTokens, mu.OutputTokens)
			total += usd
			cost = formatCost(usd)
		} else {
			unpriced = append(unpriced, mu.Model)
		}
		fmt.Fprintf(w, "%-32s  %6d  %10d  %10d  %10s\n",
			truncate(mu.Model, 32), mu.Calls, mu.InputTokens, mu.OutputTokens, cost)
	}
	fmt.Fprintln(w, rule(76))

	label := "TOTAL"
	if len(unpriced) > 0 {
		label = "TOTAL (partial)"
	}
	fmt.Fprintf(w, "%-32s  %6s  %10s  %10s  %10s\n", label, "", "", "", formatCost(total))
	if len(unpriced) > 0 {
		fmt.Fprintln(w, theme.Hint.Render("No pricing for: "+strings.Join(unpriced, ", ")))
	}
}

func section(w io.Writer, title, body string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, theme.Heading.Render(title))
	fmt.Fprintln(w, rule(60))
	if body == "" {
		fmt.Fprintln(w, theme.Hint.Render("(not captured)"))
		return
	}
	fmt.Fprintln(w, body)
}

func rule(n int) string {
	return theme.Rule.Render(strings.Repeat("─", n))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	historySetsCmd.Flags().StringP("user", "u", "", "Student id")
	historySetsCmd.Flags().IntP("limit", "n", 20, "Number of sets to show")
	historySetsCmd.Flags().Bool("json", false, "Print JSON")

	historySetCmd.Flags().Bool("json", false, "Print JSON")

	historyEventsCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	historyEventsCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (e.g. question-gen)")
	historyEventsCmd.Flags().String("request", "", "Show only the requests of one pipeline run")
	historyEventsCmd.Flags().Bool("failed", false, "Show only failed requests")
	historyEventsCmd.Flags().Bool("json", false, "Print JSON")

	historyEventCmd.Flags().Bool("json", false, "Print JSON")
	historyUsageCmd.Flags().Bool("json", false, "Print JSON")

	historyCmd.AddCommand(historySetsCmd, historySetCmd, historyEventsCmd, historyEventCmd, historyUsageCmd)
}
