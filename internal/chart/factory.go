// internal/chart/factory.go
// Package chart turns benchmark tables into themed, animated chart instances.
// Every constructor layers its shape's structural defaults, the shared
// presentation defaults and the caller's overrides, in that order, onto fresh
// copies so no chart can reach another chart's configuration.
package chart

import (
	"github.com/mwiater/mathbench/internal/engine"
	"github.com/mwiater/mathbench/internal/logging"
	"github.com/mwiater/mathbench/internal/palette"
)

// Dataset is one named series. Style is merged over the dataset entry the
// factory derives, or used verbatim by shapes that do not derive styling.
type Dataset struct {
	Label string
	Data  []float64
	Style engine.Options
}

// Factory builds charts on the surfaces of one document.
type Factory struct {
	doc          *engine.Document
	palette      *palette.Resolver
	presentation engine.Options
}

// Option configures a Factory.
type Option func(*Factory)

// WithPresentation layers overrides onto the factory's copy of the
// presentation defaults.
func WithPresentation(overrides engine.Options) Option {
	return func(f *Factory) {
		f.presentation = engine.Merge(f.presentation, overrides)
	}
}

// NewFactory returns a factory drawing on doc with colors from resolver.
func NewFactory(doc *engine.Document, resolver *palette.Resolver, opts ...Option) *Factory {
	f := &Factory{
		doc:          doc,
		palette:      resolver,
		presentation: PresentationDefaults(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Presentation returns a copy of the presentation defaults this factory applies.
func (f *Factory) Presentation() engine.Options {
	return f.presentation.Clone()
}

// hasSurface reports whether the target exists; a missing surface is a
// normal condition for pages that omit optional chart regions.
func (f *Factory) hasSurface(surfaceID string, shape Shape) bool {
	if _, ok := f.doc.Surface(surfaceID); ok {
		return true
	}
	logging.LogEvent("[CHART] surface %q not present, skipping %s", surfaceID, shape)
	return false
}

func (f *Factory) bind(surfaceID string, shape Shape, typ string, structure engine.Options, data engine.Data, overrides engine.Options) (*engine.Chart, error) {
	cfg := engine.Config{
		Type:    typ,
		Data:    data,
		Options: engine.Merge(structure, f.presentation, overrides),
	}
	c, err := engine.New(f.doc, surfaceID, cfg)
	if err != nil {
		return nil, err
	}
	logging.LogChart("build", surfaceID, string(shape), map[string]int{
		"labels":   len(data.Labels),
		"datasets": len(data.Datasets),
	})
	return c, nil
}

func copyFloats(v []float64) []float64 {
	return append([]float64{}, v...)
}
