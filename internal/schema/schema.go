// Package schema declares the content model consumed by the external
// editorial studio: document and object types, field validation rules,
// controlled vocabularies and preview hints. Nothing here executes at
// serving time; the export exists so the studio project and this repo agree
// on one source of truth.
package schema

import (
	"encoding/json"
	"fmt"
	"io"
)

// Type is one document or object type definition.
type Type struct {
	Name      string     `json:"name"`
	Title     string     `json:"title"`
	Kind      string     `json:"type"`
	Fields    []Field    `json:"fields"`
	Preview   *Preview   `json:"preview,omitempty"`
	Orderings []Ordering `json:"orderings,omitempty"`
}

// Type kinds.
const (
	KindDocument = "document"
	KindObject   = "object"
)

// Field is one field declaration inside a type.
type Field struct {
	Name        string      `json:"name"`
	Title       string      `json:"title,omitempty"`
	Type        string      `json:"type"`
	Description string      `json:"description,omitempty"`
	Rows        int         `json:"rows,omitempty"`
	Initial     any         `json:"initialValue,omitempty"`
	Options     *Options    `json:"options,omitempty"`
	Of          []TypeRef   `json:"of,omitempty"`
	To          []TypeRef   `json:"to,omitempty"`
	Fields      []Field     `json:"fields,omitempty"`
	Validation  *Validation `json:"validation,omitempty"`
}

// TypeRef names a member or target type.
type TypeRef struct {
	Type string `json:"type"`
}

// Options carries editor affordances: hotspot cropping, slug sources and
// fixed option lists.
type Options struct {
	Hotspot   bool     `json:"hotspot,omitempty"`
	Source    string   `json:"source,omitempty"`
	MaxLength int      `json:"maxLength,omitempty"`
	List      []Option `json:"list,omitempty"`
}

// Option is one entry of a controlled vocabulary.
type Option struct {
	Title string `json:"title"`
	Value string `json:"value"`
}

// Validation is the rule set the editorial tool enforces. The serving path
// never relies on it and tolerates documents that violate it.
type Validation struct {
	Required  bool `json:"required,omitempty"`
	Positive  bool `json:"positive,omitempty"`
	MaxLength int  `json:"maxLength,omitempty"`
}

// Preview selects the fields the studio shows in document lists.
type Preview struct {
	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
	Media    string `json:"media,omitempty"`
}

// Ordering is a named sort offered in the studio list view.
type Ordering struct {
	Title string   `json:"title"`
	Name  string   `json:"name"`
	By    []SortBy `json:"by"`
}

// SortBy is one sort key of an ordering.
type SortBy struct {
	Field     string `json:"field"`
	Direction string `json:"direction"`
}

// Export is the full payload handed to the studio project.
type Export struct {
	Types      []Type    `json:"types"`
	Singletons []string  `json:"singletons"`
	Structure  Structure `json:"structure"`
}

// Write serializes the complete schema export as indented JSON.
func Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Export{
		Types:      Types(),
		Singletons: Singletons(),
		Structure:  DeskStructure(),
	}); err != nil {
		return fmt.Errorf("encoding schema export: %w", err)
	}
	return nil
}

// Lookup returns the named type definition.
func Lookup(name string) (Type, bool) {
	for _, t := range Types() {
		if t.Name == name {
			return t, true
		}
	}
	return Type{}, false
}
