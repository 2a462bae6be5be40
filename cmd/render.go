package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/scoreprep/internal/problemgen"
	"github.com/abhisek/scoreprep/internal/report"
	"github.com/abhisek/scoreprep/internal/ui/theme"
)

const optionLetters = "ABCD"

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderQuestions(w io.Writer, res *problemgen.Result) {
	if len(res.Questions) == 0 {
		fmt.Fprintln(w, theme.Hint.Render("No report text; nothing to practice."))
		return
	}

	fmt.Fprintf(w, "%s %s\n\n",
		theme.Title.Render(fmt.Sprintf("%d practice questions", len(res.Questions))),
		theme.Label.Render("("+string(res.Source)+")"))

	for i, q := range res.Questions {
		header := fmt.Sprintf("%d. %s", i+1, q.Topic)
		if q.Difficulty != "" {
			header += "  " + theme.DifficultyStyle(string(q.Difficulty)).Render(string(q.Difficulty))
		}
		fmt.Fprintln(w, theme.Heading.Render(header))
		fmt.Fprintln(w, q.Text)

		for j, opt := range q.Options {
			letter := "?"
			if j < len(optionLetters) {
				letter = optionLetters[j : j+1]
			}
			fmt.Fprintf(w, "   %s) %s\n", letter, opt)
		}

		if q.Answer != "" {
			fmt.Fprintf(w, "%s %s\n", theme.Label.Render("Answer:"), theme.Correct.Render(q.Answer))
		}
		if q.Explanation != "" {
			fmt.Fprintln(w, theme.Hint.Render(q.Explanation))
		}
		fmt.Fprintln(w)
	}
}

func renderReport(w io.Writer, t *report.Taxonomy, r *report.PerformanceReport) {
	if !r.HasData() {
		fmt.Fprintln(w, theme.Warning.Render("No recognizable score data in the report."))
		return
	}

	fmt.Fprintln(w, theme.Title.Render("Score report"))
	fmt.Fprintf(w, "%s %d   %s %d   %s %d\n\n",
		theme.Label.Render("Questions:"), r.TotalQuestions,
		theme.Label.Render("Correct:"), r.TotalCorrect,
		theme.Label.Render("Incorrect:"), r.TotalIncorrect)

	for _, s := range t.RankByIncorrect(r) {
		sp := r.Section(s)
		fmt.Fprintln(w, theme.Heading.Render(string(s)))
		fmt.Fprintf(w, "  %s %s  %s %s\n",
			theme.Label.Render("correct"), theme.Correct.Render(fmt.Sprint(sp.Correct)),
			theme.Label.Render("incorrect"), theme.Incorrect.Render(fmt.Sprint(sp.Incorrect)))

		for _, topic := range t.Topics(s) {
			info, ok := r.TopicInfo(s, topic)
			if !ok {
				continue
			}
			d := string(r.Difficulty(s, topic))
			fmt.Fprintf(w, "  %-42s %3d%%  %s\n", topic, info.Percentage, theme.DifficultyStyle(d).Render(d))
		}

		for _, q := range sp.IncorrectQuestions {
			fmt.Fprintf(w, "  %s %s: answered %s, correct %s\n",
				theme.Incorrect.Render("✗"), q.QuestionNumber, q.YourAnswer, q.CorrectAnswer)
		}

		fmt.Fprintf(w, "  %s %s\n\n", theme.Label.Render("focus:"), joinTopics(t.WeakTopics(r, s)))
	}
}

func joinTopics(topics []report.Topic) string {
	names := make([]string, len(topics))
	for i, t := range topics {
		names[i] = string(t)
	}
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}
