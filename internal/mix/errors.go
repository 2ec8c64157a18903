package mix

import (
	"errors"
	"fmt"

	"github.com/Dr1p5ter/Schedule-One-Recipe-Builder/internal/catalog"
)

var (
	ErrInvalidIngredient   = errors.New("invalid ingredient added to mix")
	ErrDuplicateIngredient = errors.New("duplicate ingredient added to mix")
	ErrMaxIngredients      = fmt.Errorf("maximum number of ingredients (%d) added to mix", MaxIngredients)
	ErrInvalidEffect       = errors.New("invalid effect encountered in mix")
)

// IngredientError is returned by AddIngredient for an unknown id
// (ErrInvalidIngredient) or a repeat of the last ingredient
// (ErrDuplicateIngredient).
type IngredientError struct {
	ID  catalog.IngredientID
	Err error
}

func (e *IngredientError) Error() string { return fmt.Sprintf("%v: %d", e.Err, e.ID) }

func (e *IngredientError) Unwrap() error { return e.Err }

// EffectError is returned by Multiplier for an active effect missing from the catalog.
type EffectError struct {
	ID catalog.EffectID
}

func (e *EffectError) Error() string { return fmt.Sprintf("%v: %d", ErrInvalidEffect, e.ID) }

func (e *EffectError) Unwrap() error { return ErrInvalidEffect }
