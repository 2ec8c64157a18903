// Package recipe reads TOML files naming ingredient sequences to evaluate.
//
//	[[recipe]]
//	name = "Sneaky Banana"
//	ingredients = ["banana", "paracetamol", "3"]
package recipe

import (
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"

	"github.com/Dr1p5ter/Schedule-One-Recipe-Builder/internal/catalog"
	"github.com/Dr1p5ter/Schedule-One-Recipe-Builder/internal/mix"
)

var ErrEmptyFile = errors.New("recipe file defines no recipes")

// Recipe is a named ingredient sequence. Ingredients are ids or names.
type Recipe struct {
	Name        string   `toml:"name"`
	Ingredients []string `toml:"ingredients"`
}

// File is the top level of a recipe file.
type File struct {
	Recipes []Recipe `toml:"recipe"`
}

// Parse decodes and checks a recipe file.
func Parse(data []byte) (File, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parse recipes: %w", err)
	}
	if len(f.Recipes) == 0 {
		return File{}, ErrEmptyFile
	}
	for i, r := range f.Recipes {
		if r.Name == "" {
			return File{}, fmt.Errorf("recipe %d: missing name", i+1)
		}
		if n := len(r.Ingredients); n == 0 || n > mix.MaxIngredients {
			return File{}, fmt.Errorf("recipe %q: needs 1 to %d ingredients, has %d", r.Name, mix.MaxIngredients, n)
		}
	}
	return f, nil
}

// Load reads and parses the recipe file at path.
func Load(fsys afero.Fs, path string) (File, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return File{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(data)
}

// Result is one evaluated recipe.
type Result struct {
	Name       string
	Order      []catalog.IngredientID
	Effects    []catalog.EffectID
	Multiplier float32
}

// Evaluate resolves the recipe's ingredients against src and mixes them in order.
func Evaluate(src catalog.Source, r Recipe) (Result, error) {
	table, err := src.Ingredients()
	if err != nil {
		return Result{}, err
	}
	m := mix.New(src)
	for _, token := range r.Ingredients {
		id, err := table.Lookup(token)
		if err != nil {
			return Result{}, fmt.Errorf("recipe %q: %w", r.Name, err)
		}
		if err := m.AddIngredient(id); err != nil {
			return Result{}, fmt.Errorf("recipe %q: %w", r.Name, err)
		}
	}
	mul, err := m.Multiplier()
	if err != nil {
		return Result{}, fmt.Errorf("recipe %q: %w", r.Name, err)
	}
	return Result{Name: r.Name, Order: m.Order(), Effects: m.Effects(), Multiplier: mul}, nil
}
