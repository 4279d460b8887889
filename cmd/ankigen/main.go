// Package main is the entry point for the ankigen CLI, which turns
// structured study notes (PDF/DOCX) into Anki-ready flashcard suggestions.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmasdeu/ankigen/internal/cards"
	"github.com/jmasdeu/ankigen/internal/config"
	"github.com/jmasdeu/ankigen/internal/export"
	"github.com/jmasdeu/ankigen/internal/pipeline"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd runs the generation pipeline on a single document.
var rootCmd = &cobra.Command{
	Use:   "ankigen <document.pdf|document.docx>",
	Short: "Generate Anki-ready flashcard suggestions from study notes",
	Long: `ankigen extracts the text of a PDF or DOCX document, tags each paragraph
with its numbered section, and applies simple heuristics to suggest basic
(question/answer) and cloze-deletion flashcards. Suggestions are written as
CSV for manual review and import into a spaced-repetition tool.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, rules, log, err := setup()
		if err != nil {
			return err
		}

		res, err := pipeline.Run(args[0], rules, log)
		if err != nil {
			return err
		}

		if err := export.WriteCSV(cfg.OutputPath, res.Cards); err != nil {
			return err
		}

		fmt.Printf("✔ %d suggested cards written to %s\n", len(res.Cards), cfg.OutputPath)
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.SetOut(os.Stdout)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./ankigen.yaml or ~/.config/ankigen/config.yaml)")
	rootCmd.PersistentFlags().String("rules", "", "YAML heuristics profile overriding the built-in thresholds")
	rootCmd.Flags().StringP("output", "o", "", "output CSV path")

	viper.BindPFlag("rules_path", rootCmd.PersistentFlags().Lookup("rules"))
	viper.BindPFlag("output_path", rootCmd.Flags().Lookup("output"))
}

func initConfig() {
	// Environment first: a local .env may hold the serve-mode API key.
	_ = godotenv.Load()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("ankigen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "ankigen"))
		}
	}

	viper.SetEnvPrefix("ANKIGEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	config.SetDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setup resolves configuration, logging, and the heuristics profile shared
// by all commands.
func setup() (config.Config, cards.Rules, *slog.Logger, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return config.Config{}, cards.Rules{}, nil, err
	}

	log := newLogger(cfg.Log)

	rules := cards.DefaultRules()
	if cfg.RulesPath != "" {
		rules, err = cards.LoadRules(cfg.RulesPath)
		if err != nil {
			return config.Config{}, cards.Rules{}, nil, err
		}
	}

	return cfg, rules, log, nil
}

func newLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
