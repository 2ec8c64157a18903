package catalog

import (
	"fmt"
	"slices"
)

// IngredientID identifies an ingredient in the ingredient document.
type IngredientID uint16

// EffectID identifies an effect in the effect document.
type EffectID uint16

// Substitution rewrites every active From effect to To when its ingredient is mixed in.
type Substitution struct {
	From EffectID
	To   EffectID
}

// Ingredient is one adjacency entry: the head (name, effect given) followed by
// the rewrite pairs in the order the document declares them.
type Ingredient struct {
	ID            IngredientID
	Name          string
	EffectGiven   EffectID
	Substitutions []Substitution
}

// AdjacencyTable maps ingredient ids to their adjacency entries.
type AdjacencyTable map[IngredientID]Ingredient

// IDs returns the ingredient ids in ascending order.
func (t AdjacencyTable) IDs() []IngredientID {
	ids := make([]IngredientID, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Effect is one catalog entry. Value is copied verbatim from the document.
type Effect struct {
	ID    EffectID
	Name  string
	Value float32
}

// EffectCatalog maps effect ids to their names and values.
type EffectCatalog map[EffectID]Effect

// IDs returns the effect ids in ascending order.
func (c EffectCatalog) IDs() []EffectID {
	ids := make([]EffectID, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Name returns the effect name, or a placeholder for ids missing from the catalog.
func (c EffectCatalog) Name(id EffectID) string {
	if e, ok := c[id]; ok {
		return e.Name
	}
	return fmt.Sprintf("effect %d", id)
}
