package problemgen

import "time"

// Config controls the behavior of the Pipeline and the LLMGenerator.
type Config struct {
	// Count is used when a caller passes a count of zero or less.
	Count int `mapstructure:"count"`

	// MaxTokens is the token budget for the generation response. It is
	// raised automatically for large counts.
	MaxTokens int `mapstructure:"max_tokens"`

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64 `mapstructure:"temperature"`

	// Timeout bounds the single generation call. Expiry is handled like any
	// other generation failure.
	Timeout time.Duration `mapstructure:"timeout"`

	// StructuredOutput asks the provider for schema-constrained output
	// instead of free text.
	StructuredOutput bool `mapstructure:"structured_output"`
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		Count:            DefaultCount,
		MaxTokens:        4096,
		Temperature:      0.7,
		Timeout:          30 * time.Second,
		StructuredOutput: true,
	}
}

// tokensPerQuestion is a generous estimate of one question object,
// including a short passage.
const tokensPerQuestion = 350

func (c Config) maxTokensFor(count int) int {
	return max(c.MaxTokens, count*tokensPerQuestion)
}
