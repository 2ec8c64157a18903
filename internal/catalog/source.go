package catalog

// Source supplies the two tables to the mix engine. Implementations may load
// on every call or cache; callers must not mutate the returned tables.
type Source interface {
	Ingredients() (AdjacencyTable, error)
	Effects() (EffectCatalog, error)
}

// Files loads both documents from disk on every call.
type Files struct {
	Loader          *Loader
	IngredientsPath string
	EffectsPath     string
}

func (f *Files) Ingredients() (AdjacencyTable, error) { return f.Loader.Ingredients(f.IngredientsPath) }

func (f *Files) Effects() (EffectCatalog, error) { return f.Loader.Effects(f.EffectsPath) }

// Static serves tables that were parsed once.
type Static struct {
	Table   AdjacencyTable
	Catalog EffectCatalog
}

// NewStatic parses both documents.
func NewStatic(ingredientsJSON, effectsJSON []byte) (*Static, error) {
	table, err := ParseIngredients(ingredientsJSON)
	if err != nil {
		return nil, err
	}
	cat, err := ParseEffects(effectsJSON)
	if err != nil {
		return nil, err
	}
	return &Static{Table: table, Catalog: cat}, nil
}

func (s *Static) Ingredients() (AdjacencyTable, error) { return s.Table, nil }

func (s *Static) Effects() (EffectCatalog, error) { return s.Catalog, nil }
