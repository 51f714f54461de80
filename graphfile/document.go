// SPDX-License-Identifier: MIT

package graphfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"reflect"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Sentinel errors for graph documents.
var (
	// ErrInvalidDocument is returned when a document fails to decode or validate.
	ErrInvalidDocument = errors.New("graphfile: invalid document")

	// ErrDuplicateItem is returned when two items share a name.
	ErrDuplicateItem = errors.New("graphfile: duplicate item name")

	// ErrUnknownItem is returned when a relation refers to an undeclared item.
	ErrUnknownItem = errors.New("graphfile: relation refers to unknown item")
)

// DefaultRelationWeight is used for relations without an explicit weight.
const DefaultRelationWeight = 1.0

// Item is one automaton cell.
type Item struct {
	Name     string  `yaml:"name" validate:"required"`
	Weight   float64 `yaml:"weight" validate:"finite"`
	DoNotUse bool    `yaml:"do_not_use,omitempty"`
}

// Relation is one directed, weighted neighborhood relation between named items.
type Relation struct {
	From   string   `yaml:"from" validate:"required"`
	To     string   `yaml:"to" validate:"required"`
	Weight *float64 `yaml:"weight,omitempty" validate:"omitempty,finite"`
}

// weight returns the relation weight or DefaultRelationWeight.
func (r Relation) weight() float64 {
	if r.Weight == nil {
		return DefaultRelationWeight
	}

	return *r.Weight
}

// Document is the YAML form of an arena plus its neighborhood.
type Document struct {
	Items     []Item     `yaml:"items" validate:"required,min=1,dive"`
	Relations []Relation `yaml:"relations,omitempty" validate:"dive"`
}

// docValidate is the validator instance for documents.
// Initialized in init() with custom validators.
var docValidate *validator.Validate

func init() {
	docValidate = validator.New()
	_ = docValidate.RegisterValidation("finite", validateFinite)
}

// validateFinite rejects NaN and infinite floats (YAML .nan / .inf).
func validateFinite(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Float32, reflect.Float64:
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	default:
		return true
	}
}

// Validate checks struct tags, unique item names and relation references.
func (d *Document) Validate() error {
	if err := docValidate.Struct(d); err != nil {
		return fmt.Errorf("Validate: %w: %w", ErrInvalidDocument, err)
	}
	if _, err := d.index(); err != nil {
		return err
	}

	return nil
}

// index maps item names to their positions and checks relation references.
func (d *Document) index() (map[string]int, error) {
	idx := make(map[string]int, len(d.Items))
	for i, it := range d.Items {
		if j, dup := idx[it.Name]; dup {
			return nil, fmt.Errorf("Validate: item %q at %d and %d: %w", it.Name, j, i, ErrDuplicateItem)
		}
		idx[it.Name] = i
	}
	for i, r := range d.Relations {
		for _, name := range []string{r.From, r.To} {
			if _, ok := idx[name]; !ok {
				return nil, fmt.Errorf("Validate: relation %d (%s→%s): %q: %w", i, r.From, r.To, name, ErrUnknownItem)
			}
		}
	}

	return idx, nil
}

// Parse decodes and validates a YAML document. Unknown keys are rejected.
func Parse(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("Parse: empty document: %w", ErrInvalidDocument)
		}
		return nil, fmt.Errorf("Parse: %w: %w", ErrInvalidDocument, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Load: failed to read graph file: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("Load %s: %w", path, err)
	}

	return doc, nil
}

// Marshal encodes the document as YAML with two-space indentation.
func (d *Document) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("Marshal: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("Marshal: %w", err)
	}

	return buf.Bytes(), nil
}
