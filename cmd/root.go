package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pable/go-lol-metrics/internal/config"
)

var (
	flagData        string
	flagMode        string
	flagPosition    string
	flagMinGames    int
	flagChampion    string
	flagItemVersion string
	flagNoItems     bool
	flagEnvFile     string
	flagVerbose     bool
	flagJSON        bool

	// cfg is resolved once per invocation in PersistentPreRunE.
	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "lolmetrics",
	Short: "League of Legends match metrics tool",
	Long: "Load a match-participant export and compute per-champion win rates,\n" +
		"KDA ratios, gold by outcome and item frequencies.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	d := config.Default()
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagData, "data", "", "match export (.csv, .csv.gz, .csv.zst, .xlsx, .db) or postgres:// / libsql:// URL; env "+config.EnvDataset)
	pf.StringVar(&flagMode, "mode", d.GameMode, "game mode to keep (empty keeps all)")
	pf.StringVar(&flagPosition, "position", d.Position, "position to keep (empty keeps all)")
	pf.IntVar(&flagMinGames, "min-games", d.MinSamples, "minimum games for a champion to be ranked")
	pf.StringVar(&flagChampion, "champion", d.TargetCharacter, "champion for the item and profile sections")
	pf.StringVar(&flagItemVersion, "item-version", d.ItemVersion, "Data Dragon patch for item names")
	pf.BoolVar(&flagNoItems, "no-items", false, "skip the item catalog download and show raw item ids")
	pf.StringVar(&flagEnvFile, "env-file", "", "load defaults from this .env file (default ./.env if present)")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging on stderr")
	pf.BoolVar(&flagJSON, "json", false, "print results as JSON")

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(winrateCmd)
	rootCmd.AddCommand(kdaCmd)
	rootCmd.AddCommand(goldCmd)
	rootCmd.AddCommand(itemsCmd)
	rootCmd.AddCommand(championCmd)
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(positionsCmd)
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(analyzeCmd)
}

func setup(cmd *cobra.Command, _ []string) error {
	setupLogging(flagVerbose)

	c, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	cfg = c
	log.Debug().
		Str("mode", cfg.GameMode).
		Str("position", cfg.Position).
		Int("min_games", cfg.MinSamples).
		Str("champion", cfg.TargetCharacter).
		Msg("config resolved")
	return nil
}

func setupLogging(verbose bool) {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()
}

// resolveConfig layers defaults, the environment (optionally seeded from a
// .env file) and explicitly set flags, in that order.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	if err := config.LoadEnvFile(flagEnvFile); err != nil {
		return config.Config{}, err
	}
	c := config.Default()
	if err := c.ApplyEnv(os.LookupEnv); err != nil {
		return config.Config{}, err
	}

	fl := cmd.Flags()
	if fl.Changed("data") {
		c.DatasetPath = flagData
	}
	if fl.Changed("mode") {
		c.GameMode = flagMode
	}
	if fl.Changed("position") {
		c.Position = flagPosition
	}
	if fl.Changed("min-games") {
		c.MinSamples = flagMinGames
	}
	if fl.Changed("champion") {
		c.TargetCharacter = flagChampion
	}
	if fl.Changed("item-version") {
		c.ItemVersion = flagItemVersion
	}
	c.Offline = flagNoItems

	if err := c.Validate(); err != nil {
		return config.Config{}, err
	}
	return c, nil
}
