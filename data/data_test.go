package data

import (
	"slices"
	"testing"

	"github.com/Dr1p5ter/Schedule-One-Recipe-Builder/internal/catalog"
)

func TestSource(t *testing.T) {
	src, err := Source()
	if err != nil {
		t.Fatalf("Source: %v", err)
	}
	if len(src.Table) != 16 {
		t.Errorf("got %d ingredients, want 16", len(src.Table))
	}
	if len(src.Catalog) != 34 {
		t.Errorf("got %d effects, want 34", len(src.Catalog))
	}
	if refs := catalog.CrossCheck(src.Table, src.Catalog); len(refs) != 0 {
		t.Errorf("dangling references: %v", refs)
	}
}

func TestSource_Ingredients(t *testing.T) {
	src, err := Source()
	if err != nil {
		t.Fatalf("Source: %v", err)
	}

	tests := []struct {
		id     catalog.IngredientID
		name   string
		effect catalog.EffectID
		subs   []catalog.Substitution
	}{
		{0, "addy", 30, []catalog.Substitution{{From: 11, To: 10}, {From: 13, To: 9}, {From: 15, To: 21}, {From: 18, To: 8}, {From: 23, To: 14}}},
		{1, "banana", 14, []catalog.Substitution{{From: 4, To: 28}, {From: 6, To: 9}, {From: 7, To: 12}, {From: 9, To: 30}, {From: 12, To: 24}, {From: 18, To: 21}, {From: 20, To: 16}, {From: 27, To: 0}, {From: 31, To: 27}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ing, ok := src.Table[tt.id]
			if !ok {
				t.Fatalf("ingredient %d missing", tt.id)
			}
			if ing.Name != tt.name || ing.EffectGiven != tt.effect {
				t.Errorf("ingredient %d = %+v", tt.id, ing)
			}
			if !slices.Equal(ing.Substitutions, tt.subs) {
				t.Errorf("substitutions = %v, want %v", ing.Substitutions, tt.subs)
			}
		})
	}
}

func TestSource_Effects(t *testing.T) {
	src, err := Source()
	if err != nil {
		t.Fatalf("Source: %v", err)
	}

	tests := []struct {
		id    catalog.EffectID
		name  string
		value float32
	}{
		{0, "anti_gravity", 0.54},
		{7, "disorienting", 0},
		{25, "shrinking", 0.60},
		{33, "zombifying", 0.58},
	}
	for _, tt := range tests {
		got := src.Catalog[tt.id]
		if got.Name != tt.name || got.Value != tt.value {
			t.Errorf("effect %d = %+v, want %s %v", tt.id, got, tt.name, tt.value)
		}
	}
}
