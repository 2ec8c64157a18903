package catalog

import "fmt"

// DanglingRef is an effect id used by an ingredient but absent from the catalog.
type DanglingRef struct {
	Ingredient IngredientID
	Field      string
	Effect     EffectID
}

func (d DanglingRef) String() string {
	return fmt.Sprintf("ingredient %d: %s references unknown effect %d", d.Ingredient, d.Field, d.Effect)
}

// CrossCheck lists every dangling effect reference, ordered by ingredient id
// and then declaration order. Dangling references load fine; a mix only fails
// on them when its multiplier is computed.
func CrossCheck(table AdjacencyTable, cat EffectCatalog) []DanglingRef {
	var refs []DanglingRef
	for _, id := range table.IDs() {
		ing := table[id]
		if _, ok := cat[ing.EffectGiven]; !ok {
			refs = append(refs, DanglingRef{Ingredient: id, Field: "effect_given", Effect: ing.EffectGiven})
		}
		for _, sub := range ing.Substitutions {
			if _, ok := cat[sub.From]; !ok {
				refs = append(refs, DanglingRef{Ingredient: id, Field: "replaces_on_mix key", Effect: sub.From})
			}
			if _, ok := cat[sub.To]; !ok {
				refs = append(refs, DanglingRef{Ingredient: id, Field: "replaces_on_mix value", Effect: sub.To})
			}
		}
	}
	return refs
}
