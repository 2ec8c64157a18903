package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when a document does not exist.
	ErrNotFound = errors.New("file not found")
	// ErrInvalidExtension is returned when a document path lacks the .json suffix.
	ErrInvalidExtension = errors.New("file must have a .json extension")
	// ErrSyntax is returned when a document is not valid JSON.
	ErrSyntax = errors.New("invalid JSON")
)

// Document names which of the two documents an error came from.
type Document string

const (
	IngredientDoc Document = "ingredient"
	EffectDoc     Document = "effect"
)

// SourceError reports a document that could not be accessed.
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string { return fmt.Sprintf("%v: %s", e.Err, e.Path) }

func (e *SourceError) Unwrap() error { return e.Err }

// TypeError reports a value of the wrong kind. Field is empty when the entity
// definition itself has the wrong kind, and ID is empty when the whole
// document does.
type TypeError struct {
	Doc   Document
	ID    string
	Field string
	Want  Kind
	Got   Kind
}

func (e *TypeError) Error() string {
	switch {
	case e.ID == "":
		return fmt.Sprintf("invalid type for %s document: got %s, want %s", e.Doc, e.Got, e.Want)
	case e.Field == "":
		return fmt.Sprintf("invalid type for %s %s: got %s, want %s", e.Doc, e.ID, e.Got, e.Want)
	}
	return fmt.Sprintf("invalid type for %s in %s %s: got %s, want %s", e.Field, e.Doc, e.ID, e.Got, e.Want)
}

// MissingKeysError reports every required key absent from one definition.
// Keys are sorted.
type MissingKeysError struct {
	Doc  Document
	ID   string
	Keys []string
}

func (e *MissingKeysError) Error() string {
	return fmt.Sprintf("missing required keys in %s %s: {%s}", e.Doc, e.ID, strings.Join(e.Keys, ", "))
}

// IDError reports an id that is not a decimal value in the uint16 range.
type IDError struct {
	Doc   Document
	ID    string
	Field string
	Value string
}

func (e *IDError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid %s id %q", e.Doc, e.Value)
	}
	return fmt.Sprintf("invalid effect id %q for %s in %s %s", e.Value, e.Field, e.Doc, e.ID)
}

// UnknownNameError reports an ingredient token that matched nothing.
type UnknownNameError struct {
	Name        string
	Suggestions []string
}

func (e *UnknownNameError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("unknown ingredient %q", e.Name)
	}
	return fmt.Sprintf("unknown ingredient %q (did you mean %s?)", e.Name, strings.Join(e.Suggestions, ", "))
}
