package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/scoreprep/internal/store"
)

const cliReport = `
40 Total Questions
31 Correct Answers
9 Incorrect Answers
1 Reading and Writing B C; Incorrect
1 Math 12 14; Incorrect
2 Math 3 5; Incorrect
`

// run executes the root command with a clean environment and returns
// stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	out, _, err := runWithStderr(t, stdin, args...)
	return out, err
}

// runWithStderr executes the root command and returns what it wrote to
// stdout and stderr.
func runWithStderr(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY", "SCOREPREP_DB", "SCOREPREP_LLM_PROVIDER"} {
		t.Setenv(k, "")
	}

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func writeReport(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.txt")
	require.NoError(t, os.WriteFile(path, []byte(cliReport), 0o644))
	return path
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "scoreprep")
}

func TestGenerate_JSONFromStdin(t *testing.T) {
	out, err := run(t, cliReport, "generate", "--provider", "none", "--count", "6", "--json",
		"--save=false", "--user", "", "--pdf=false", "--source", "")
	require.NoError(t, err)

	var res struct {
		Questions []map[string]any `json:"questions"`
		Source    string           `json:"source"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Len(t, res.Questions, 6)
	assert.Equal(t, "fallback", res.Source)
}

func TestGenerate_NoProviderNoticeLogged(t *testing.T) {
	out, errOut, err := runWithStderr(t, cliReport, "generate", "--provider", "none", "--log-level", "info",
		"--count", "2", "--json", "--save=false", "--user", "", "--pdf=false", "--source", "")
	require.NoError(t, err)
	assert.NotContains(t, out, "LLM provider not configured")
	assert.Contains(t, errOut, "level=INFO")
	assert.Contains(t, errOut, "LLM provider not configured")
}

func TestGenerate_SaveToStore(t *testing.T) {
	db := filepath.Join(t.TempDir(), "cli.db")
	out, err := run(t, "", "generate", writeReport(t), "--provider", "none", "--db", db,
		"--count", "3", "--save", "--user", "student-9", "--json=false", "--pdf=false", "--source", "")
	require.NoError(t, err)
	assert.Contains(t, out, "3 practice questions")
	assert.Contains(t, out, "Saved as question set")

	s, err := store.Open(db)
	require.NoError(t, err)
	defer s.Close()
	sets, err := s.QuestionRepo().ListQuestionSets(t.Context(), "student-9", 0)
	require.NoError(t, err)
	require.Len(t, sets, 1)
	assert.Equal(t, "report.txt", sets[0].Source)
}

func TestGenerate_SaveNeedsUser(t *testing.T) {
	_, err := run(t, cliReport, "generate", "--provider", "none", "--save", "--user", "", "--json=false", "--pdf=false")
	require.Error(t, err)
}

func TestGenerate_EmptyInput(t *testing.T) {
	out, err := run(t, "   ", "generate", "--provider", "none", "--json", "--save=false", "--user", "", "--pdf=false")
	require.NoError(t, err)
	assert.Contains(t, out, `"source": "empty"`)
}

func TestParse_JSON(t *testing.T) {
	out, err := run(t, "", "parse", writeReport(t), "--provider", "none", "--json", "--pdf=false")
	require.NoError(t, err)

	var res struct {
		Report struct {
			TotalQuestions int `json:"total_questions"`
			TotalIncorrect int `json:"total_incorrect"`
		} `json:"report"`
		RankedSections []string `json:"ranked_sections"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 40, res.Report.TotalQuestions)
	assert.Equal(t, 9, res.Report.TotalIncorrect)
	assert.Equal(t, []string{"Math", "Reading and Writing"}, res.RankedSections)
}

func TestPrompt(t *testing.T) {
	out, err := run(t, cliReport, "prompt", "--provider", "none", "--count", "4", "--schema", "--pdf=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Create exactly 4 practice questions")
	assert.Contains(t, out, "practice-question-set")
}

func TestBankCheck(t *testing.T) {
	out, err := run(t, "", "bank", "check", "--provider", "none")
	require.NoError(t, err)
	assert.Contains(t, out, "OK:")
}

func TestCustomTaxonomyNeedsBank(t *testing.T) {
	tax := filepath.Join(t.TempDir(), "tax.yaml")
	require.NoError(t, os.WriteFile(tax, []byte("sections:\n  - name: Logic\n    kind: verbal\n    topics: [Deduction]\n"), 0o644))

	// Flags persist on the shared command tree.
	t.Cleanup(func() { rootCmd.PersistentFlags().Set("taxonomy", "") })

	_, err := run(t, cliReport, "parse", "--provider", "none", "--taxonomy", tax, "--json=false", "--pdf=false")
	require.Error(t, err)
}

func TestHistory_SavedSets(t *testing.T) {
	db := filepath.Join(t.TempDir(), "history.db")
	_, err := run(t, "", "generate", writeReport(t), "--provider", "none", "--db", db,
		"--count", "3", "--save", "--user", "student-7", "--json=false", "--pdf=false", "--source", "")
	require.NoError(t, err)

	out, err := run(t, "", "history", "sets", "--db", db, "--provider", "none", "--user", "student-7", "--limit", "20", "--json")
	require.NoError(t, err)
	var sets []struct {
		ID     string
		Source string
		Origin string
	}
	require.NoError(t, json.Unmarshal([]byte(out), &sets))
	require.Len(t, sets, 1)
	assert.Equal(t, "report.txt", sets[0].Source)
	assert.Equal(t, "fallback", sets[0].Origin)

	out, err = run(t, "", "history", "set", sets[0].ID, "--db", db, "--provider", "none", "--json=false")
	require.NoError(t, err)
	assert.Contains(t, out, "3 practice questions")
	assert.Contains(t, out, "student-7")

	_, err = run(t, "", "history", "set", "missing", "--db", db, "--provider", "none", "--json=false")
	require.Error(t, err)
}

func TestHistory_SetsNeedsUser(t *testing.T) {
	_, err := run(t, "", "history", "sets", "--db", filepath.Join(t.TempDir(), "h.db"), "--provider", "none", "--user", "")
	require.Error(t, err)
}

func TestHistory_EmptyEventLog(t *testing.T) {
	db := filepath.Join(t.TempDir(), "events.db")

	out, err := run(t, "", "history", "events", "--db", db, "--provider", "none",
		"--json=false", "--failed=false", "--request", "", "--purpose", "", "--limit", "20")
	require.NoError(t, err)
	assert.Contains(t, out, "No generation requests recorded.")

	out, err = run(t, "", "history", "usage", "--db", db, "--provider", "none", "--json=false")
	require.NoError(t, err)
	assert.Contains(t, out, "No generation requests recorded.")
}
