package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/scoreprep/internal/config"
	"github.com/abhisek/scoreprep/internal/llm"
	"github.com/abhisek/scoreprep/internal/problemgen"
	"github.com/abhisek/scoreprep/internal/report"
	"github.com/abhisek/scoreprep/internal/store"
)

var (
	cfgFile   string
	appConfig *config.Config
	logger    = slog.Default()
)

var rootCmd = &cobra.Command{
	Use:   "scoreprep",
	Short: "Practice questions from standardized-test score reports",
	Long: "scoreprep reads a score report, finds the weakest sections and topics,\n" +
		"and produces a targeted set of practice questions.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}
		appConfig = cfg
		logger = cfg.Logger(cmd.ErrOrStderr())
		slog.SetDefault(logger)
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfgFile, "config", "c", "", "Config file (default $XDG_CONFIG_HOME/scoreprep/config.yaml)")
	pf.String("db", "", "Path to SQLite database file (overrides SCOREPREP_DB_PATH)")
	pf.String("log-level", "info", "Log level: debug, info, warn, error")
	pf.String("provider", "", "LLM provider: anthropic, openai, gemini, openrouter, mock, none")
	pf.String("model", "", "Model for the selected provider")
	pf.Duration("timeout", 0, "Generation timeout (default 30s)")
	pf.String("taxonomy", "", "Taxonomy file replacing the built-in sections and topics")
	pf.String("bank", "", "Fallback question bank file")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(promptCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// openStore opens the database from the configured path, then
// SCOREPREP_DB, then the default XDG path.
func openStore() (*store.Store, error) {
	p := appConfig.DBPath
	if p != "" {
		if err := store.EnsureDir(p); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
	} else {
		var err error
		if p, err = store.DefaultDBPath(); err != nil {
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
	}

	s, err := store.Open(p)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// loadBank returns the configured fallback bank and its taxonomy.
func loadBank() (*problemgen.Bank, error) {
	switch {
	case appConfig.BankPath != "":
		t := report.DefaultTaxonomy()
		if appConfig.TaxonomyPath != "" {
			var err error
			if t, err = report.LoadTaxonomy(appConfig.TaxonomyPath); err != nil {
				return nil, err
			}
		}
		return problemgen.LoadBank(appConfig.BankPath, t)
	case appConfig.TaxonomyPath != "":
		return nil, fmt.Errorf("a custom taxonomy needs a matching question bank (--bank)")
	default:
		return problemgen.DefaultBank()
	}
}

// newPipeline builds the question pipeline from the configuration. LLM
// calls are recorded in events when it is non-nil.
func newPipeline(ctx context.Context, events store.EventRepo) (*problemgen.Pipeline, error) {
	bank, err := loadBank()
	if err != nil {
		return nil, err
	}

	opts := []problemgen.Option{
		problemgen.WithBank(bank),
		problemgen.WithConfig(appConfig.Generation),
		problemgen.WithLogger(logger),
	}

	provider, err := llm.NewProvider(ctx, appConfig.LLM, events)
	if err != nil {
		return nil, fmt.Errorf("configure LLM provider: %w", err)
	}
	if provider != nil {
		opts = append(opts, problemgen.WithProvider(provider))
	} else {
		logger.Info("LLM provider not configured; questions come from the built-in bank")
	}

	return problemgen.NewPipeline(opts...)
}
