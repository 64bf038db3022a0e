// internal/dataset/dataset.go
// Package dataset holds the benchmark document the dashboard is built from:
// model descriptors, their display order, and per-category results, topic
// breakdowns and timing distributions. The document is embedded, validated
// once at load and never mutated afterwards.
package dataset

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/mwiater/mathbench/internal/palette"
)

var (
	// ErrSchema reports a document that does not match the structural schema.
	ErrSchema = errors.New("benchmark document does not match schema")
	// ErrInvalid reports a document that breaks a cross-field invariant.
	ErrInvalid = errors.New("benchmark document is invalid")
)

//go:embed data/benchmark.json
var embedded []byte

var (
	defaultOnce sync.Once
	defaultSet  *Dataset
	defaultErr  error
)

// Default returns the embedded benchmark document, loading it on first use.
func Default() (*Dataset, error) {
	defaultOnce.Do(func() {
		defaultSet, defaultErr = Load(embedded)
	})
	return defaultSet, defaultErr
}

// Raw returns a copy of the embedded document bytes.
func Raw() []byte {
	return append([]byte(nil), embedded...)
}

// Load parses raw and rejects documents that break any invariant.
func Load(raw []byte) (*Dataset, error) {
	d, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	issues := Validate(d)
	if len(issues) == 0 {
		return d, nil
	}
	errs := make([]error, 0, len(issues))
	for _, issue := range issues {
		errs = append(errs, errors.New(issue.String()))
	}
	return nil, fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

// Parse checks raw against the schema and decodes it without checking
// cross-field invariants.
func Parse(raw []byte) (*Dataset, error) {
	if err := checkSchema(raw); err != nil {
		return nil, err
	}
	var d Dataset
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("decode benchmark document: %w", err)
	}
	for id, m := range d.Models {
		m.ID = id
		if rgb, err := palette.HexToRGB(m.Color); err == nil {
			m.RGB = rgb
		}
		d.Models[id] = m
	}
	return &d, nil
}

// Model looks a model descriptor up by id.
func (d *Dataset) Model(id string) (Model, bool) {
	m, ok := d.Models[id]
	return m, ok
}

// OrderedModels returns descriptors in display order, skipping unknown ids.
func (d *Dataset) OrderedModels() []Model {
	out := make([]Model, 0, len(d.ModelOrder))
	for _, id := range d.ModelOrder {
		if m, ok := d.Models[id]; ok {
			out = append(out, m)
		}
	}
	return out
}

// Swatches returns the palette entries for the display order.
func (d *Dataset) Swatches() []palette.Swatch {
	models := d.OrderedModels()
	out := make([]palette.Swatch, len(models))
	for i, m := range models {
		out[i] = palette.Swatch{ID: m.ID, Name: m.Name, RGB: m.RGB}
	}
	return out
}

// Resolver builds a palette resolver over the display order.
func (d *Dataset) Resolver() *palette.Resolver {
	return palette.NewResolver(d.Swatches())
}

// Category looks a category up by id.
func (d *Dataset) Category(id string) (Category, bool) {
	for _, c := range d.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// Overall sums a model's results across every category.
func (d *Dataset) Overall(modelID string) Totals {
	var t Totals
	for _, c := range d.Categories {
		r, ok := c.Results[modelID]
		if !ok {
			continue
		}
		t.Questions += c.Questions
		t.Correct += r.Correct
		t.Incorrect += r.Incorrect
	}
	if t.Questions > 0 {
		t.Accuracy = float64(t.Correct) / float64(t.Questions)
	}
	return t
}

// TotalQuestions counts questions across categories.
func (d *Dataset) TotalQuestions() int {
	total := 0
	for _, c := range d.Categories {
		total += c.Questions
	}
	return total
}

// TimingRows lists every timing distribution in category then display order.
func (d *Dataset) TimingRows() []TimingRow {
	var rows []TimingRow
	for _, c := range d.Categories {
		for _, id := range d.ModelOrder {
			r, ok := c.Results[id]
			if !ok {
				continue
			}
			rows = append(rows, TimingRow{CategoryID: c.ID, CategoryName: c.Name, ModelID: id, Timing: r.Timing})
		}
	}
	return rows
}
