package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Loader reads and validates documents from a filesystem.
type Loader struct {
	fs     afero.Fs
	logger *slog.Logger
}

// NewLoader returns a loader over fsys. A nil logger uses slog.Default.
func NewLoader(fsys afero.Fs, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{fs: fsys, logger: logger.With("component", "catalog")}
}

// Ingredients loads the adjacency table at path.
func (l *Loader) Ingredients(path string) (AdjacencyTable, error) {
	data, err := l.read(path)
	if err != nil {
		return nil, err
	}
	table, err := ParseIngredients(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	l.logger.Debug("loaded ingredients", "path", path, "count", len(table))
	return table, nil
}

// Effects loads the effect catalog at path.
func (l *Loader) Effects(path string) (EffectCatalog, error) {
	data, err := l.read(path)
	if err != nil {
		return nil, err
	}
	cat, err := ParseEffects(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	l.logger.Debug("loaded effects", "path", path, "count", len(cat))
	return cat, nil
}

func (l *Loader) read(path string) ([]byte, error) {
	if !strings.EqualFold(filepath.Ext(path), ".json") {
		return nil, &SourceError{Path: path, Err: ErrInvalidExtension}
	}
	data, err := afero.ReadFile(l.fs, path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &SourceError{Path: path, Err: ErrNotFound}
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
