package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/Dr1p5ter/Schedule-One-Recipe-Builder/internal/catalog"
)

// IngredientRef names one ingredient in a report.
type IngredientRef struct {
	ID   catalog.IngredientID `json:"id"`
	Name string               `json:"name"`
}

// EffectRef names one active effect in a report. Known is false for effects
// missing from the catalog.
type EffectRef struct {
	ID    catalog.EffectID `json:"id"`
	Name  string           `json:"name"`
	Value float32          `json:"value"`
	Known bool             `json:"known"`
}

// MixReport is the printable and JSON form of an evaluated mix.
type MixReport struct {
	Order      []IngredientRef `json:"order"`
	Effects    []EffectRef     `json:"effects"`
	Multiplier float32         `json:"multiplier"`
}

func newMixReport(table catalog.AdjacencyTable, cat catalog.EffectCatalog, order []catalog.IngredientID, effects []catalog.EffectID, multiplier float32) MixReport {
	r := MixReport{
		Order:      make([]IngredientRef, len(order)),
		Effects:    make([]EffectRef, len(effects)),
		Multiplier: multiplier,
	}
	for i, id := range order {
		r.Order[i] = IngredientRef{ID: id, Name: table[id].Name}
	}
	for i, id := range effects {
		e, ok := cat[id]
		r.Effects[i] = EffectRef{ID: id, Name: cat.Name(id), Value: e.Value, Known: ok}
	}
	return r
}

var (
	valueColor = color.New(color.FgGreen)
	zeroColor  = color.New(color.FgYellow)
	errColor   = color.New(color.FgRed)
	boldColor  = color.New(color.Bold)
)

func printMix(w io.Writer, r MixReport) {
	names := make([]string, len(r.Order))
	for i, ing := range r.Order {
		names[i] = ing.Name
	}
	fmt.Fprintf(w, "Order:      %s\n", strings.Join(names, " → "))
	fmt.Fprintln(w, "Effects:")
	for _, e := range r.Effects {
		var value string
		switch {
		case !e.Known:
			value = errColor.Sprint("unknown")
		case e.Value == 0:
			value = zeroColor.Sprintf("%.2f", e.Value)
		default:
			value = valueColor.Sprintf("%.2f", e.Value)
		}
		fmt.Fprintf(w, "  %-20s %s\n", e.Name, value)
	}
	fmt.Fprintf(w, "Multiplier: %s\n", boldColor.Sprintf("%.2f", r.Multiplier))
}

func printIngredients(w io.Writer, table catalog.AdjacencyTable, cat catalog.EffectCatalog) {
	fmt.Fprintf(w, "%-4s %-16s %-20s %s\n", "ID", "Ingredient", "Effect", "Rewrites")
	fmt.Fprintf(w, "%-4s %-16s %-20s %s\n", "----", "----------------", "--------------------", "--------")
	for _, id := range table.IDs() {
		ing := table[id]
		subs := make([]string, len(ing.Substitutions))
		for i, s := range ing.Substitutions {
			subs[i] = cat.Name(s.From) + "→" + cat.Name(s.To)
		}
		fmt.Fprintf(w, "%-4d %-16s %-20s %s\n", id, ing.Name, cat.Name(ing.EffectGiven), strings.Join(subs, ", "))
	}
}

func printEffects(w io.Writer, cat catalog.EffectCatalog) {
	fmt.Fprintf(w, "%-4s %-20s %6s\n", "ID", "Effect", "Value")
	fmt.Fprintf(w, "%-4s %-20s %6s\n", "----", "--------------------", "------")
	for _, id := range cat.IDs() {
		e := cat[id]
		fmt.Fprintf(w, "%-4d %-20s %6.2f\n", id, e.Name, e.Value)
	}
}
