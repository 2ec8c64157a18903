//go:build !lambda

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Dr1p5ter/Schedule-One-Recipe-Builder/data"
	"github.com/Dr1p5ter/Schedule-One-Recipe-Builder/internal/catalog"
	"github.com/Dr1p5ter/Schedule-One-Recipe-Builder/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "mixer",
	Short: "Schedule One mix calculator",
	Long: `mixer applies ingredients to a mix, following each ingredient's effect
rewrites, and prices the resulting effects as a multiplier.

Ingredients are given by id or by name. Without --ingredients/--effects the
embedded game documents are used.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

var (
	cfg    config.Config
	logger *slog.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errColor.Sprint("error: ")+err.Error())
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default .mixer.yaml)")
	flags.BoolP("verbose", "v", false, "verbose output")
	flags.String("ingredients", "", "ingredient document (.json)")
	flags.String("effects", "", "effect document (.json)")

	_ = viper.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = viper.BindPFlag("ingredients_path", flags.Lookup("ingredients"))
	_ = viper.BindPFlag("effects_path", flags.Lookup("effects"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.PersistentFlags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".mixer")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("MIXER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// A missing config file is fine; defaults apply.
	_ = viper.ReadInConfig()
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return err
	}
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// openSource returns the configured documents: the embedded copies when no
// paths are set, otherwise files reloaded on every access.
func openSource() (catalog.Source, error) {
	switch {
	case cfg.IngredientsPath == "" && cfg.EffectsPath == "":
		logger.Debug("using embedded documents")
		return data.Source()
	case cfg.IngredientsPath == "" || cfg.EffectsPath == "":
		return nil, errors.New("ingredients and effects documents must be given together")
	}
	return &catalog.Files{
		Loader:          catalog.NewLoader(afero.NewOsFs(), logger),
		IngredientsPath: cfg.IngredientsPath,
		EffectsPath:     cfg.EffectsPath,
	}, nil
}

// loadTables reads both tables once, for commands that only display them.
func loadTables(src catalog.Source) (catalog.AdjacencyTable, catalog.EffectCatalog, error) {
	table, err := src.Ingredients()
	if err != nil {
		return nil, nil, err
	}
	cat, err := src.Effects()
	if err != nil {
		return nil, nil, err
	}
	return table, cat, nil
}
