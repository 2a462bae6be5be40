package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/scoreprep/internal/llm"
)

// isolate keeps the developer's environment out of the test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
	for _, env := range os.Environ() {
		name, _, _ := strings.Cut(env, "=")
		if strings.HasPrefix(name, EnvPrefix+"_") {
			t.Setenv(name, "")
			os.Unsetenv(name)
		}
	}
}

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("db", "", "")
	fs.String("provider", "", "")
	fs.String("model", "", "")
	fs.Int("count", 10, "")
	fs.Duration("timeout", 30*time.Second, "")
	fs.String("addr", ":8080", "")
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "", cfg.LLM.Provider)
	assert.False(t, cfg.LLM.Enabled())
	assert.Equal(t, 10, cfg.Generation.Count)
	assert.Equal(t, 4096, cfg.Generation.MaxTokens)
	assert.True(t, cfg.Generation.StructuredOutput)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, cfg.LLM.Timeout, cfg.Generation.Timeout)
	assert.Equal(t, 1, cfg.LLM.Retry.MaxAttempts)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "claude-haiku", cfg.LLM.Anthropic.Model)
	assert.Empty(t, cfg.ConfigPath)
}

func TestLoad_File(t *testing.T) {
	isolate(t)
	path := writeTempConfig(t, "scoreprep.yaml", `
db_path: /tmp/prep.db
log_level: debug
server:
  addr: ":9000"
  allowed_origins: ["http://localhost:3000"]
generation:
  count: 6
  structured_output: false
llm:
  provider: openai
  timeout: 45s
  openai:
    api_key: sk-file
    model: gpt-4o
`)

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.ConfigPath)
	assert.Equal(t, "/tmp/prep.db", cfg.DBPath)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 6, cfg.Generation.Count)
	assert.False(t, cfg.Generation.StructuredOutput)
	assert.Equal(t, llm.ProviderOpenAI, cfg.LLM.Provider)
	assert.Equal(t, "sk-file", cfg.LLM.OpenAI.APIKey)
	assert.Equal(t, "gpt-4o", cfg.LLM.OpenAI.Model)
	assert.Equal(t, 45*time.Second, cfg.Generation.Timeout)
}

func TestLoad_DefaultDirFile(t *testing.T) {
	isolate(t)
	dir, err := DefaultDir()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("generation:\n  count: 4\n"), 0o644))

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Generation.Count)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), cfg.ConfigPath)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolate(t)
	path := writeTempConfig(t, "c.yaml", "generation:\n  count: 6\nllm:\n  provider: mock\n")
	t.Setenv("SCOREPREP_GENERATION_COUNT", "12")
	t.Setenv("SCOREPREP_LLM_PROVIDER", "anthropic")
	t.Setenv("SCOREPREP_LLM_ANTHROPIC_API_KEY", "sk-env")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Generation.Count)
	assert.Equal(t, llm.ProviderAnthropic, cfg.LLM.Provider)
	assert.Equal(t, "sk-env", cfg.LLM.Anthropic.APIKey)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	isolate(t)
	t.Setenv("SCOREPREP_GENERATION_COUNT", "12")

	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--count", "3", "--provider", "mock", "--timeout", "5s", "--db", "x.db"}))

	cfg, err := Load("", fs)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Generation.Count)
	assert.Equal(t, llm.ProviderMock, cfg.LLM.Provider)
	assert.Equal(t, 5*time.Second, cfg.Generation.Timeout)
	assert.Equal(t, "x.db", cfg.DBPath)
}

func TestLoad_UnchangedFlagsKeepLowerLayers(t *testing.T) {
	isolate(t)
	path := writeTempConfig(t, "c.yaml", "server:\n  addr: \":7000\"\n")

	fs := testFlags()
	require.NoError(t, fs.Parse(nil))

	cfg, err := Load(path, fs)
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Server.Addr)
}

func TestLoad_ModelFlag(t *testing.T) {
	isolate(t)
	t.Setenv("SCOREPREP_LLM_GEMINI_API_KEY", "g-key")

	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--provider", "gemini", "--model", "gemini-pro"}))

	cfg, err := Load("", fs)
	require.NoError(t, err)
	assert.Equal(t, "gemini-pro", cfg.LLM.Gemini.Model)
}

func TestLoad_DiscoversProviderKeys(t *testing.T) {
	isolate(t)
	t.Setenv("OPENAI_API_KEY", "sk-discovered")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, llm.ProviderOpenAI, cfg.LLM.Provider)
	assert.Equal(t, "sk-discovered", cfg.LLM.OpenAI.APIKey)
}

func TestLoad_NoneDisablesDiscovery(t *testing.T) {
	isolate(t)
	t.Setenv("OPENAI_API_KEY", "sk-discovered")
	t.Setenv("SCOREPREP_LLM_PROVIDER", "none")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.False(t, cfg.LLM.Enabled())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing api key", "llm:\n  provider: anthropic\n"},
		{"unknown provider", "llm:\n  provider: llama\n"},
		{"zero count", "generation:\n  count: 0\n"},
		{"zero attempts", "llm:\n  retry:\n    max_attempts: 0\n"},
		{"temperature", "generation:\n  temperature: 3\n"},
		{"log level", "log_level: loud\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			path := writeTempConfig(t, "c.yaml", tt.content)
			if _, err := Load(path, nil); err == nil {
				t.Fatalf("Load(%q) succeeded, want error", tt.content)
			}
		})
	}
}

func TestLogger_Level(t *testing.T) {
	cfg := &Config{LogLevel: "warn"}
	l := cfg.Logger(os.Stderr)
	assert.False(t, l.Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, l.Enabled(t.Context(), slog.LevelWarn))
}
