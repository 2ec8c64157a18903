//go:build !lambda

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Dr1p5ter/Schedule-One-Recipe-Builder/internal/catalog"
	"github.com/Dr1p5ter/Schedule-One-Recipe-Builder/internal/mix"
	"github.com/Dr1p5ter/Schedule-One-Recipe-Builder/internal/recipe"
	"github.com/Dr1p5ter/Schedule-One-Recipe-Builder/internal/search"
)

var mixCmd = &cobra.Command{
	Use:   "mix <ingredient>...",
	Short: "Mix ingredients in order and print the multiplier",
	Args:  cobra.RangeArgs(1, mix.MaxIngredients),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOut, _ := cmd.Flags().GetBool("json")
		src, err := openSource()
		if err != nil {
			return err
		}
		table, err := src.Ingredients()
		if err != nil {
			return err
		}

		m := mix.New(src)
		for _, token := range args {
			id, err := table.Lookup(token)
			if err != nil {
				return err
			}
			if err := m.AddIngredient(id); err != nil {
				return err
			}
			logger.Debug("ingredient added", "ingredient", id, "mix", m.String())
		}
		mul, err := m.Multiplier()
		if err != nil {
			return err
		}
		cat, err := src.Effects()
		if err != nil {
			return err
		}
		return writeReport(cmd.OutOrStdout(), newMixReport(table, cat, m.Order(), m.Effects(), mul), jsonOut)
	},
}

var ingredientsCmd = &cobra.Command{
	Use:   "ingredients",
	Short: "List ingredients, their effects and rewrites",
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := openSource()
		if err != nil {
			return err
		}
		table, cat, err := loadTables(src)
		if err != nil {
			return err
		}
		printIngredients(cmd.OutOrStdout(), table, cat)
		return nil
	},
}

var effectsCmd = &cobra.Command{
	Use:   "effects",
	Short: "List effects and their values",
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := openSource()
		if err != nil {
			return err
		}
		cat, err := src.Effects()
		if err != nil {
			return err
		}
		printEffects(cmd.OutOrStdout(), cat)
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load both documents and report effects missing from the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := openSource()
		if err != nil {
			return err
		}
		table, cat, err := loadTables(src)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%d ingredients, %d effects\n", len(table), len(cat))
		refs := catalog.CrossCheck(table, cat)
		for _, r := range refs {
			fmt.Fprintf(out, "  %s %s\n", zeroColor.Sprint("warning:"), r)
		}
		if len(refs) == 0 {
			fmt.Fprintln(out, valueColor.Sprint("OK"))
		}
		return nil
	},
}

var recipeCmd = &cobra.Command{
	Use:   "recipe <file.toml>",
	Short: "Evaluate every recipe in a TOML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := recipe.Load(afero.NewOsFs(), args[0])
		if err != nil {
			return err
		}
		src, err := openSource()
		if err != nil {
			return err
		}
		// Every recipe reads the same documents; load them once.
		src = catalog.NewCache(src, logger)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-24s %10s  %s\n", "Recipe", "Multiplier", "Order")
		fmt.Fprintf(out, "%-24s %10s  %s\n", "------------------------", "----------", "-----")
		failed := 0
		for _, r := range file.Recipes {
			res, err := recipe.Evaluate(src, r)
			if err != nil {
				failed++
				fmt.Fprintf(out, "%-24s %10s  %v\n", r.Name, errColor.Sprint("error"), err)
				continue
			}
			fmt.Fprintf(out, "%-24s %10.2f  %s\n", res.Name, res.Multiplier, strings.Join(r.Ingredients, " → "))
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d recipes failed", failed, len(file.Recipes))
		}
		return nil
	},
}

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Search for the ingredient sequence with the highest multiplier",
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOut, _ := cmd.Flags().GetBool("json")
		prefixTokens, _ := cmd.Flags().GetStringSlice("prefix")
		src, err := openSource()
		if err != nil {
			return err
		}
		src = catalog.NewCache(src, logger)
		table, cat, err := loadTables(src)
		if err != nil {
			return err
		}

		prefix := make([]catalog.IngredientID, 0, len(prefixTokens))
		for _, token := range prefixTokens {
			id, err := table.Lookup(token)
			if err != nil {
				return err
			}
			prefix = append(prefix, id)
		}

		res, elapsed, err := search.New(src, cfg.SearchTuning(), logger).Best(prefix)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if err := writeReport(out, newMixReport(table, cat, res.Order, res.Effects, res.Multiplier), jsonOut); err != nil {
			return err
		}
		if !jsonOut {
			fmt.Fprintf(out, "Searched in %.1fs\n", elapsed.Seconds())
		}
		return nil
	},
}

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Build a mix interactively",
	Long: `Reads commands from stdin, one per line:

  add <ingredient>   mix in an ingredient
  show               print the current mix
  reset              start a new mix
  help               list commands
  quit               leave

With watch enabled, edits to the document files are picked up immediately.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := openSource()
		if err != nil {
			return err
		}
		cache := catalog.NewCache(src, logger)
		if cfg.Watch && cfg.IngredientsPath != "" {
			if err := cache.Watch(cfg.IngredientsPath, cfg.EffectsPath); err != nil {
				return fmt.Errorf("watch documents: %w", err)
			}
			defer cache.Close()
		}
		return runShell(cmd.InOrStdin(), cmd.OutOrStdout(), cache)
	},
}

func runShell(in io.Reader, out io.Writer, src catalog.Source) error {
	m := mix.New(src)
	scanner := bufio.NewScanner(in)
	fmt.Fprint(out, "> ")
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			fmt.Fprint(out, "> ")
			continue
		}
		switch fields[0] {
		case "add":
			if len(fields) < 2 {
				fmt.Fprintln(out, "usage: add <ingredient>")
				break
			}
			if err := shellAdd(out, m, src, strings.Join(fields[1:], " ")); err != nil {
				fmt.Fprintln(out, errColor.Sprint("error: ")+err.Error())
			}
		case "show":
			if err := shellShow(out, m, src); err != nil {
				fmt.Fprintln(out, errColor.Sprint("error: ")+err.Error())
			}
		case "reset":
			m = mix.New(src)
			fmt.Fprintln(out, "mix cleared")
		case "help":
			fmt.Fprintln(out, "commands: add <ingredient>, show, reset, help, quit")
		case "quit", "exit":
			return nil
		default:
			fmt.Fprintf(out, "unknown command %q\n", fields[0])
		}
		fmt.Fprint(out, "> ")
	}
	return scanner.Err()
}

func shellAdd(out io.Writer, m *mix.Mix, src catalog.Source, token string) error {
	table, err := src.Ingredients()
	if err != nil {
		return err
	}
	id, err := table.Lookup(token)
	if err != nil {
		return err
	}
	if err := m.AddIngredient(id); err != nil {
		return err
	}
	mul, err := m.Multiplier()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "added %s (%d/%d), multiplier %.2f\n", table[id].Name, m.Len(), mix.MaxIngredients, mul)
	return nil
}

func shellShow(out io.Writer, m *mix.Mix, src catalog.Source) error {
	table, cat, err := loadTables(src)
	if err != nil {
		return err
	}
	mul, err := m.Multiplier()
	if err != nil {
		return err
	}
	printMix(out, newMixReport(table, cat, m.Order(), m.Effects(), mul))
	return nil
}

func writeReport(w io.Writer, r MixReport, jsonOut bool) error {
	if !jsonOut {
		printMix(w, r)
		return nil
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func init() {
	mixCmd.Flags().Bool("json", false, "output the result as JSON")

	bestCmd.Flags().Bool("json", false, "output the result as JSON")
	bestCmd.Flags().StringSlice("prefix", nil, "ingredients the mix must start with")
	bestCmd.Flags().Int("depth", 0, "mix length to search up to")
	bestCmd.Flags().Int("beam", 0, "states kept per step")
	bestCmd.Flags().Int("workers", 0, "parallel workers (0 = GOMAXPROCS)")
	_ = viper.BindPFlag("search.depth", bestCmd.Flags().Lookup("depth"))
	_ = viper.BindPFlag("search.beam_width", bestCmd.Flags().Lookup("beam"))
	_ = viper.BindPFlag("search.workers", bestCmd.Flags().Lookup("workers"))

	shellCmd.Flags().Bool("watch", false, "reload documents when they change on disk")
	_ = viper.BindPFlag("watch", shellCmd.Flags().Lookup("watch"))

	rootCmd.AddCommand(mixCmd, ingredientsCmd, effectsCmd, validateCmd, recipeCmd, bestCmd, shellCmd)
}
