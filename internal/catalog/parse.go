package catalog

import (
	"github.com/tidwall/gjson"
)

var ingredientFields = []field{
	{"name", KindString},
	{"effect_given", KindInteger},
	{"replaces_on_mix", KindObject},
}

var effectFields = []field{
	{"name", KindString},
	{"value", KindFloat},
}

func parseDocument(doc Document, data []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, ErrSyntax
	}
	root := gjson.ParseBytes(data)
	if k := kindOf(root); k != KindObject {
		return gjson.Result{}, &TypeError{Doc: doc, Want: KindObject, Got: k}
	}
	return root, nil
}

// ParseIngredients builds the adjacency table from an ingredient document:
//
//	{"<id>": {"name": "...", "effect_given": <int>, "replaces_on_mix": {"<effect id>": <int>, ...}}, ...}
//
// Substitutions keep the order of replaces_on_mix in the document.
func ParseIngredients(data []byte) (AdjacencyTable, error) {
	root, err := parseDocument(IngredientDoc, data)
	if err != nil {
		return nil, err
	}

	table := make(AdjacencyTable)
	var parseErr error
	root.ForEach(func(k, v gjson.Result) bool {
		var ing Ingredient
		ing, parseErr = parseIngredient(k.String(), v)
		if parseErr != nil {
			return false
		}
		table[ing.ID] = ing
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return table, nil
}

func parseIngredient(key string, def gjson.Result) (Ingredient, error) {
	values, err := validateFields(IngredientDoc, key, def, ingredientFields)
	if err != nil {
		return Ingredient{}, err
	}

	id, ok := parseID(key)
	if !ok {
		return Ingredient{}, &IDError{Doc: IngredientDoc, Value: key}
	}
	given, ok := intID(values["effect_given"])
	if !ok {
		return Ingredient{}, &IDError{Doc: IngredientDoc, ID: key, Field: "effect_given", Value: values["effect_given"].Raw}
	}

	ing := Ingredient{
		ID:          IngredientID(id),
		Name:        values["name"].String(),
		EffectGiven: EffectID(given),
	}

	froms, replaces := objectFields(values["replaces_on_mix"])
	for _, from := range froms {
		to := replaces[from]
		if k := kindOf(to); k != KindInteger {
			return Ingredient{}, &TypeError{Doc: IngredientDoc, ID: key, Field: "replaces_on_mix[" + from + "]", Want: KindInteger, Got: k}
		}
		fromID, ok := parseID(from)
		if !ok {
			return Ingredient{}, &IDError{Doc: IngredientDoc, ID: key, Field: "replaces_on_mix", Value: from}
		}
		toID, ok := intID(to)
		if !ok {
			return Ingredient{}, &IDError{Doc: IngredientDoc, ID: key, Field: "replaces_on_mix[" + from + "]", Value: to.Raw}
		}
		ing.Substitutions = append(ing.Substitutions, Substitution{From: EffectID(fromID), To: EffectID(toID)})
	}
	return ing, nil
}

// ParseEffects builds the effect catalog from an effect document:
//
//	{"<id>": {"name": "...", "value": <float>}, ...}
//
// An integer value is rejected; the document must spell it as a float.
func ParseEffects(data []byte) (EffectCatalog, error) {
	root, err := parseDocument(EffectDoc, data)
	if err != nil {
		return nil, err
	}

	cat := make(EffectCatalog)
	var parseErr error
	root.ForEach(func(k, v gjson.Result) bool {
		key := k.String()
		var values map[string]gjson.Result
		values, parseErr = validateFields(EffectDoc, key, v, effectFields)
		if parseErr != nil {
			return false
		}
		id, ok := parseID(key)
		if !ok {
			parseErr = &IDError{Doc: EffectDoc, Value: key}
			return false
		}
		cat[EffectID(id)] = Effect{
			ID:    EffectID(id),
			Name:  values["name"].String(),
			Value: float32(values["value"].Float()),
		}
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return cat, nil
}
