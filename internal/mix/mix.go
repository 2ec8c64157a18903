// Package mix applies ingredients to a mix and prices the resulting effects.
package mix

import (
	"fmt"
	"math"
	"slices"

	"github.com/Dr1p5ter/Schedule-One-Recipe-Builder/internal/catalog"
)

// MaxIngredients caps the length of a mix.
const MaxIngredients = 8

// Mix is an ordered run of ingredients and the effects they leave active.
// effects has one slot per added ingredient; slots are rewritten in place by
// later substitutions. A Mix is not safe for concurrent use.
type Mix struct {
	src     catalog.Source
	order   []catalog.IngredientID
	effects []catalog.EffectID
}

// New returns an empty mix whose tables come from src on every call.
func New(src catalog.Source) *Mix {
	return &Mix{src: src}
}

// AddIngredient mixes in ingredient id. The id must be in the adjacency
// table, the mix must hold fewer than MaxIngredients, and id must differ from
// the last ingredient added. On any error the mix is unchanged.
//
// Every substitution of id runs over the whole effect list in declared order,
// so a later pair sees the output of an earlier one. The ingredient's own
// effect is appended afterwards and is never rewritten by its own pairs.
func (m *Mix) AddIngredient(id catalog.IngredientID) error {
	table, err := m.src.Ingredients()
	if err != nil {
		return fmt.Errorf("load ingredients: %w", err)
	}
	ing, ok := table[id]
	if !ok {
		return &IngredientError{ID: id, Err: ErrInvalidIngredient}
	}
	if len(m.order) >= MaxIngredients {
		return ErrMaxIngredients
	}
	if n := len(m.order); n > 0 && m.order[n-1] == id {
		return &IngredientError{ID: id, Err: ErrDuplicateIngredient}
	}

	effects := make([]catalog.EffectID, len(m.effects), len(m.effects)+1)
	copy(effects, m.effects)
	applySubstitutions(effects, ing.Substitutions)
	effects = append(effects, ing.EffectGiven)

	m.effects = effects
	m.order = append(slices.Clip(m.order), id)
	return nil
}

func applySubstitutions(effects []catalog.EffectID, subs []catalog.Substitution) {
	for _, sub := range subs {
		for i, e := range effects {
			if e == sub.From {
				effects[i] = sub.To
			}
		}
	}
}

// Multiplier sums the catalog value of every active effect and rounds the
// total to two decimals. Only the total is rounded.
func (m *Mix) Multiplier() (float32, error) {
	cat, err := m.src.Effects()
	if err != nil {
		return 0, fmt.Errorf("load effects: %w", err)
	}
	var sum float64
	for _, id := range m.effects {
		e, ok := cat[id]
		if !ok {
			return 0, &EffectError{ID: id}
		}
		sum += float64(e.Value)
	}
	return float32(toFixed2(sum)), nil
}

// toFixed2 rounds half to even, so 0.125 becomes 0.12.
func toFixed2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}

// Order returns the ingredients in the order they were added.
func (m *Mix) Order() []catalog.IngredientID { return slices.Clone(m.order) }

// Effects returns the active effects, one slot per ingredient.
func (m *Mix) Effects() []catalog.EffectID { return slices.Clone(m.effects) }

// Len returns the number of ingredients added.
func (m *Mix) Len() int { return len(m.order) }

// Last returns the most recently added ingredient.
func (m *Mix) Last() (catalog.IngredientID, bool) {
	if len(m.order) == 0 {
		return 0, false
	}
	return m.order[len(m.order)-1], true
}

// Clone returns an independent copy sharing the same source.
func (m *Mix) Clone() *Mix {
	return &Mix{
		src:     m.src,
		order:   slices.Clone(m.order),
		effects: slices.Clone(m.effects),
	}
}

func (m *Mix) String() string {
	return fmt.Sprintf("Mix(effects=%v, order=%v)", m.effects, m.order)
}
