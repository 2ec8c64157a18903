//go:build !lambda

package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/Dr1p5ter/Schedule-One-Recipe-Builder/data"
	"github.com/Dr1p5ter/Schedule-One-Recipe-Builder/internal/catalog"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

func TestRunShell(t *testing.T) {
	src, err := data.Source()
	if err != nil {
		t.Fatalf("data.Source: %v", err)
	}

	script := strings.Join([]string{
		"add banana",
		"add banana",
		"add cuke",
		"add bananna",
		"show",
		"reset",
		"frobnicate",
		"quit",
		"add addy",
	}, "\n")

	var out bytes.Buffer
	if err := runShell(strings.NewReader(script), &out, src); err != nil {
		t.Fatalf("runShell: %v", err)
	}
	got := out.String()

	for _, want := range []string{
		"added banana (1/8), multiplier 0.20",
		"error: duplicate ingredient added to mix: 1",
		"added cuke (2/8), multiplier 0.66",
		`error: unknown ingredient "bananna" (did you mean banana?)`,
		"Order:      banana → cuke",
		"Multiplier: 0.66",
		"mix cleared",
		`unknown command "frobnicate"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "addy") {
		t.Errorf("commands after quit were run:\n%s", got)
	}
}

func TestNewMixReport(t *testing.T) {
	table := catalog.AdjacencyTable{0: {ID: 0, Name: "cuke", EffectGiven: 9}}
	cat := catalog.EffectCatalog{9: {ID: 9, Name: "energizing", Value: 0.22}}

	r := newMixReport(table, cat, []catalog.IngredientID{0}, []catalog.EffectID{9, 40}, 0.22)
	if len(r.Order) != 1 || r.Order[0] != (IngredientRef{ID: 0, Name: "cuke"}) {
		t.Errorf("order = %+v", r.Order)
	}
	want := []EffectRef{
		{ID: 9, Name: "energizing", Value: 0.22, Known: true},
		{ID: 40, Name: "effect 40", Known: false},
	}
	for i, e := range want {
		if r.Effects[i] != e {
			t.Errorf("effect %d = %+v, want %+v", i, r.Effects[i], e)
		}
	}

	var buf bytes.Buffer
	if err := writeReport(&buf, r, true); err != nil {
		t.Fatalf("writeReport: %v", err)
	}
	var decoded MixReport
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("report is not JSON: %v\n%s", err, buf.String())
	}
	if decoded.Multiplier != 0.22 || len(decoded.Effects) != 2 {
		t.Errorf("decoded = %+v", decoded)
	}

	buf.Reset()
	printMix(&buf, r)
	if !strings.Contains(buf.String(), "unknown") {
		t.Errorf("unknown effect not flagged:\n%s", buf.String())
	}
}
