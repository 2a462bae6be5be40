package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/abhisek/scoreprep/internal/llm"
	"github.com/abhisek/scoreprep/internal/problemgen"
)

// EnvPrefix prefixes every environment override, e.g. SCOREPREP_LLM_PROVIDER.
const EnvPrefix = "SCOREPREP"

// Config is the resolved application configuration.
type Config struct {
	// DBPath is the SQLite database file. Empty means the default data path.
	DBPath string `mapstructure:"db_path"`

	// TaxonomyPath and BankPath replace the embedded taxonomy and fallback
	// bank when set.
	TaxonomyPath string `mapstructure:"taxonomy_path"`
	BankPath     string `mapstructure:"bank_path"`

	LogLevel string `mapstructure:"log_level"`

	Server     ServerConfig      `mapstructure:"server"`
	Generation problemgen.Config `mapstructure:"generation"`
	LLM        llm.Config        `mapstructure:"llm"`

	// ConfigPath is the file the configuration was read from, if any.
	ConfigPath string `mapstructure:"-"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr           string   `mapstructure:"addr"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"db":           "db_path",
	"taxonomy":     "taxonomy_path",
	"bank":         "bank_path",
	"log-level":    "log_level",
	"addr":         "server.addr",
	"provider":     "llm.provider",
	"count":        "generation.count",
	"timeout":      "llm.timeout",
	"max-attempts": "llm.retry.max_attempts",
}

// Load resolves the configuration from defaults, the config file, the
// SCOREPREP_* environment and flags, in increasing priority. An explicit
// path must exist; otherwise config.yaml in the default directory is used
// when present. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := readConfigFile(v, path); err != nil {
		return nil, err
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.ConfigPath = v.ConfigFileUsed()

	if cfg.LLM.Provider == "" {
		cfg.LLM, _ = llm.DiscoverConfig(cfg.LLM)
	}
	if flags != nil {
		if f := flags.Lookup("model"); f != nil && f.Changed {
			cfg.setModel(f.Value.String())
		}
	}
	cfg.Generation.Timeout = cfg.LLM.Timeout

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func readConfigFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
		return nil
	}

	dir, err := DefaultDir()
	if err != nil {
		return nil
	}
	v.SetConfigName("config")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	lc := llm.DefaultConfig()
	gc := problemgen.DefaultConfig()

	v.SetDefault("db_path", "")
	v.SetDefault("taxonomy_path", "")
	v.SetDefault("bank_path", "")
	v.SetDefault("log_level", "info")

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.allowed_origins", []string{"*"})

	v.SetDefault("generation.count", gc.Count)
	v.SetDefault("generation.max_tokens", gc.MaxTokens)
	v.SetDefault("generation.temperature", gc.Temperature)
	v.SetDefault("generation.structured_output", gc.StructuredOutput)

	v.SetDefault("llm.provider", "")
	v.SetDefault("llm.timeout", lc.Timeout)
	v.SetDefault("llm.anthropic.api_key", "")
	v.SetDefault("llm.anthropic.model", lc.Anthropic.Model)
	v.SetDefault("llm.openai.api_key", "")
	v.SetDefault("llm.openai.model", lc.OpenAI.Model)
	v.SetDefault("llm.openai.base_url", "")
	v.SetDefault("llm.gemini.api_key", "")
	v.SetDefault("llm.gemini.model", lc.Gemini.Model)
	v.SetDefault("llm.openrouter.api_key", "")
	v.SetDefault("llm.openrouter.model", lc.OpenRouter.Model)
	v.SetDefault("llm.openrouter.base_url", "")
	v.SetDefault("llm.retry.max_attempts", lc.Retry.MaxAttempts)
	v.SetDefault("llm.retry.initial_wait", lc.Retry.InitialWait)
	v.SetDefault("llm.retry.max_wait", lc.Retry.MaxWait)
	v.SetDefault("llm.retry.multiplier", lc.Retry.Multiplier)
}

// setModel applies a model override to the selected provider.
func (c *Config) setModel(model string) {
	switch c.LLM.Provider {
	case llm.ProviderAnthropic:
		c.LLM.Anthropic.Model = model
	case llm.ProviderOpenAI:
		c.LLM.OpenAI.Model = model
	case llm.ProviderGemini:
		c.LLM.Gemini.Model = model
	case llm.ProviderOpenRouter:
		c.LLM.OpenRouter.Model = model
	}
}

// Validate checks the resolved configuration.
func (c *Config) Validate() error {
	if err := c.LLM.Validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}
	if c.Generation.Count < 1 {
		return fmt.Errorf("generation.count must be at least 1, got %d", c.Generation.Count)
	}
	if c.Generation.MaxTokens < 1 {
		return fmt.Errorf("generation.max_tokens must be at least 1, got %d", c.Generation.MaxTokens)
	}
	if c.Generation.Temperature < 0 || c.Generation.Temperature > 2 {
		return fmt.Errorf("generation.temperature must be within [0, 2], got %g", c.Generation.Temperature)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Logger returns a text logger writing to w at the configured level.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", s, err)
	}
	return level, nil
}

// DefaultDir returns the directory searched for config.yaml:
// $XDG_CONFIG_HOME/scoreprep or the platform equivalent.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(base, "scoreprep"), nil
}
