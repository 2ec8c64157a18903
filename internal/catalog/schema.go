package catalog

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Kind is the JSON value kind a field must have. Integer and Float are kept
// apart: 3 and 3.0 are different kinds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindString
	KindInteger
	KindFloat
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "boolean"
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "null"
}

func kindOf(v gjson.Result) Kind {
	switch v.Type {
	case gjson.True, gjson.False:
		return KindBool
	case gjson.String:
		return KindString
	case gjson.Number:
		if strings.ContainsAny(v.Raw, ".eE") {
			return KindFloat
		}
		return KindInteger
	case gjson.JSON:
		if v.IsArray() {
			return KindArray
		}
		return KindObject
	}
	return KindNull
}

type field struct {
	name string
	kind Kind
}

// objectFields collects the members of an object in document order. A
// repeated key keeps its first position and its last value.
func objectFields(v gjson.Result) (keys []string, values map[string]gjson.Result) {
	values = make(map[string]gjson.Result)
	v.ForEach(func(k, val gjson.Result) bool {
		name := k.String()
		if _, seen := values[name]; !seen {
			keys = append(keys, name)
		}
		values[name] = val
		return true
	})
	return keys, values
}

// validateFields checks one entity definition against a field table: the
// definition must be an object, every field must be present, and every field
// must have its kind. Fields are checked in table order and the first
// mismatch is returned. Extra keys are ignored.
func validateFields(doc Document, id string, def gjson.Result, fields []field) (map[string]gjson.Result, error) {
	if k := kindOf(def); k != KindObject {
		return nil, &TypeError{Doc: doc, ID: id, Want: KindObject, Got: k}
	}
	_, values := objectFields(def)

	var missing []string
	for _, f := range fields {
		if _, ok := values[f.name]; !ok {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return nil, &MissingKeysError{Doc: doc, ID: id, Keys: missing}
	}

	for _, f := range fields {
		if k := kindOf(values[f.name]); k != f.kind {
			return nil, &TypeError{Doc: doc, ID: id, Field: f.name, Want: f.kind, Got: k}
		}
	}
	return values, nil
}

// parseID converts a decimal id to uint16. Only the canonical form is
// accepted, so "01" and "1" can never name the same entry.
func parseID(s string) (uint16, bool) {
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil || strconv.FormatUint(n, 10) != s {
		return 0, false
	}
	return uint16(n), true
}

// intID converts an integer-kind value to uint16.
func intID(v gjson.Result) (uint16, bool) {
	n, err := strconv.ParseInt(v.Raw, 10, 64)
	if err != nil || n < 0 || n > math.MaxUint16 {
		return 0, false
	}
	return uint16(n), true
}
