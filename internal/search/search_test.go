package search

import (
	"slices"
	"testing"

	"github.com/Dr1p5ter/Schedule-One-Recipe-Builder/internal/catalog"
	"github.com/Dr1p5ter/Schedule-One-Recipe-Builder/internal/mix"
)

// 2 turns calming into tropic_thunder, so the best two-step mix is 0 then 2.
const testIngredients = `{
	"0": {"name": "cuke", "effect_given": 0, "replaces_on_mix": {}},
	"1": {"name": "banana", "effect_given": 1, "replaces_on_mix": {}},
	"2": {"name": "viagra", "effect_given": 2, "replaces_on_mix": {"0": 3}}
}`

const testEffects = `{
	"0": {"name": "calming", "value": 0.10},
	"1": {"name": "gingeritis", "value": 0.20},
	"2": {"name": "toxic", "value": 0.0},
	"3": {"name": "tropic_thunder", "value": 0.46}
}`

func newTestSource(t *testing.T) *catalog.Static {
	t.Helper()
	src, err := catalog.NewStatic([]byte(testIngredients), []byte(testEffects))
	if err != nil {
		t.Fatalf("NewStatic: %v", err)
	}
	return src
}

func TestBest(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		prefix []catalog.IngredientID
		order  []catalog.IngredientID
		mul    float32
	}{
		{"depth 1", Config{Depth: 1, BeamWidth: 4}, nil, []catalog.IngredientID{1}, 0.20},
		{"depth 2", Config{Depth: 2, BeamWidth: 4}, nil, []catalog.IngredientID{0, 2}, 0.46},
		{"depth 3", Config{Depth: 3, BeamWidth: 4, Workers: 2}, nil, []catalog.IngredientID{0, 1, 2}, 0.66},
		{"prefix", Config{Depth: 2, BeamWidth: 4}, []catalog.IngredientID{1}, []catalog.IngredientID{1, 0}, 0.30},
		{"prefix already at depth", Config{Depth: 1, BeamWidth: 4}, []catalog.IngredientID{2}, []catalog.IngredientID{2}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, _, err := New(newTestSource(t), tt.cfg, nil).Best(tt.prefix)
			if err != nil {
				t.Fatalf("Best: %v", err)
			}
			if !slices.Equal(res.Order, tt.order) {
				t.Errorf("order = %v, want %v", res.Order, tt.order)
			}
			if res.Multiplier != tt.mul {
				t.Errorf("multiplier = %v, want %v", res.Multiplier, tt.mul)
			}
			if len(res.Effects) != len(res.Order) {
				t.Errorf("%d effects for %d ingredients", len(res.Effects), len(res.Order))
			}
		})
	}
}

func TestBest_DepthCappedAtMaxIngredients(t *testing.T) {
	res, _, err := New(newTestSource(t), Config{Depth: 12, BeamWidth: 4}, nil).Best(nil)
	if err != nil {
		t.Fatalf("Best: %v", err)
	}
	if len(res.Order) > mix.MaxIngredients {
		t.Errorf("order %v longer than %d", res.Order, mix.MaxIngredients)
	}
}

func TestBest_Deterministic(t *testing.T) {
	cfg := Config{Depth: 5, BeamWidth: 3, Workers: 4}
	first, _, err := New(newTestSource(t), cfg, nil).Best(nil)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		again, _, err := New(newTestSource(t), cfg, nil).Best(nil)
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(again.Order, first.Order) || again.Multiplier != first.Multiplier {
			t.Fatalf("run %d: %v (%v), first run %v (%v)", i, again.Order, again.Multiplier, first.Order, first.Multiplier)
		}
	}
}

func TestBest_Errors(t *testing.T) {
	src := newTestSource(t)
	if _, _, err := New(src, DefaultConfig(), nil).Best([]catalog.IngredientID{9}); err == nil {
		t.Error("unknown prefix ingredient accepted")
	}
	if _, _, err := New(src, DefaultConfig(), nil).Best([]catalog.IngredientID{1, 1}); err == nil {
		t.Error("duplicate prefix accepted")
	}

	dangling := &catalog.Static{
		Table:   catalog.AdjacencyTable{0: {ID: 0, Name: "x", EffectGiven: 42}},
		Catalog: catalog.EffectCatalog{},
	}
	if _, _, err := New(dangling, DefaultConfig(), nil).Best(nil); err == nil {
		t.Error("dangling effect not reported")
	}
}

func mixOf(t *testing.T, src catalog.Source, ids ...catalog.IngredientID) *mix.Mix {
	t.Helper()
	m := mix.New(src)
	for _, id := range ids {
		if err := m.AddIngredient(id); err != nil {
			t.Fatalf("AddIngredient(%d): %v", id, err)
		}
	}
	return m
}

func TestDedup(t *testing.T) {
	src := newTestSource(t)

	// Same effects, different last ingredient.
	got := dedup([]candidate{
		{mix: mixOf(t, src, 0, 1), multiplier: 0.30},
		{mix: mixOf(t, src, 1, 0), multiplier: 0.30},
	})
	if len(got) != 2 {
		t.Errorf("different last ingredients merged: %d candidates", len(got))
	}

	// Same last ingredient, different effect multiset.
	got = dedup([]candidate{
		{mix: mixOf(t, src, 1, 0, 1), multiplier: 0.50},
		{mix: mixOf(t, src, 0, 1, 0, 1), multiplier: 0.60},
	})
	if len(got) != 2 {
		t.Errorf("different effect multisets merged: %d candidates", len(got))
	}

	// Identical state: the better-ranked candidate survives in place.
	m := mixOf(t, src, 0, 2)
	got = dedup([]candidate{
		{mix: m, multiplier: 0.40},
		{mix: mixOf(t, src, 1), multiplier: 0.20},
		{mix: m.Clone(), multiplier: 0.46},
	})
	if len(got) != 2 {
		t.Fatalf("identical states kept twice: %d candidates", len(got))
	}
	if got[0].multiplier != 0.46 {
		t.Errorf("kept multiplier %v, want 0.46", got[0].multiplier)
	}
}

func TestCompareCandidates(t *testing.T) {
	src := newTestSource(t)
	a := candidate{mix: mixOf(t, src, 0, 1, 2), multiplier: 0.66}
	b := candidate{mix: mixOf(t, src, 0, 2, 1), multiplier: 0.66}
	c := candidate{mix: mixOf(t, src, 0, 2), multiplier: 0.66}
	d := candidate{mix: mixOf(t, src, 1), multiplier: 0.20}

	cands := []candidate{d, b, a, c}
	slices.SortFunc(cands, compareCandidates)
	want := [][]catalog.IngredientID{{0, 2}, {0, 1, 2}, {0, 2, 1}, {1}}
	for i, c := range cands {
		if !slices.Equal(c.mix.Order(), want[i]) {
			t.Errorf("position %d = %v, want %v", i, c.mix.Order(), want[i])
		}
	}
}
