// Package data embeds the shipped ingredient and effect documents.
package data

import (
	_ "embed"

	"github.com/Dr1p5ter/Schedule-One-Recipe-Builder/internal/catalog"
)

//go:embed ingredients.json
var Ingredients []byte

//go:embed effects.json
var Effects []byte

// Source parses the embedded documents.
func Source() (*catalog.Static, error) {
	return catalog.NewStatic(Ingredients, Effects)
}
