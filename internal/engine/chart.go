package engine

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mwiater/mathbench/internal/gradient"
)

var (
	// ErrNoSurface reports a surface id the document does not contain.
	ErrNoSurface = errors.New("surface not found")
	// ErrSurfaceBound reports an attempt to bind a second live chart to a surface.
	ErrSurfaceBound = errors.New("surface already has a chart bound")
	// ErrDestroyed reports use of a chart after Destroy.
	ErrDestroyed = errors.New("chart destroyed")
)

// Data holds category labels and the plotted datasets.
type Data struct {
	Labels   []string  `json:"labels"`
	Datasets []Options `json:"datasets"`
}

func (d Data) clone() Data {
	out := Data{
		Labels:   append([]string{}, d.Labels...),
		Datasets: make([]Options, 0, len(d.Datasets)),
	}
	for _, ds := range d.Datasets {
		out.Datasets = append(out.Datasets, ds.Clone())
	}
	return out
}

// Config is a complete chart definition: type tag, data and options.
type Config struct {
	Type    string  `json:"type"`
	Data    Data    `json:"data"`
	Options Options `json:"options"`
}

func (c Config) clone() Config {
	opts := c.Options.Clone()
	if opts == nil {
		opts = Options{}
	}
	return Config{Type: c.Type, Data: c.Data.clone(), Options: opts}
}

// Chart is a live chart bound to one surface.
type Chart struct {
	surface   *Surface
	config    Config
	ctx       gradient.Context
	area      *gradient.Area
	destroyed bool
}

// New binds a chart built from cfg to the named surface. The chart keeps its
// own copy of cfg.
func New(doc *Document, surfaceID string, cfg Config) (*Chart, error) {
	s, ok := doc.Surface(surfaceID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoSurface, surfaceID)
	}
	if s.chart != nil && !s.chart.destroyed {
		return nil, fmt.Errorf("%w: %q", ErrSurfaceBound, surfaceID)
	}
	c := &Chart{
		surface: s,
		config:  cfg.clone(),
		ctx:     gradient.Recorder{},
	}
	s.chart = c
	return c, nil
}

// SurfaceID names the surface the chart is bound to.
func (c *Chart) SurfaceID() string { return c.surface.ID }

// Type returns the chart's type tag.
func (c *Chart) Type() string { return c.config.Type }

// Config returns a copy of the chart's definition with scriptables unevaluated.
func (c *Chart) Config() Config { return c.config.clone() }

// Spec encodes the definition as JSON, with scriptables written as
// descriptors for the page's resolvers.
func (c *Chart) Spec() ([]byte, error) {
	return json.Marshal(c.config)
}

// Update replaces the chart's data snapshot.
func (c *Chart) Update(data Data) error {
	if c.destroyed {
		return fmt.Errorf("%w: %q", ErrDestroyed, c.surface.ID)
	}
	c.config.Data = data.clone()
	return nil
}

// Destroy releases the surface. Calling it twice is harmless.
func (c *Chart) Destroy() {
	if c.destroyed {
		return
	}
	c.destroyed = true
	if c.surface.chart == c {
		c.surface.chart = nil
	}
}

// Destroyed reports whether Destroy has run.
func (c *Chart) Destroyed() bool { return c.destroyed }

// Context returns the chart's 2D drawing context.
func (c *Chart) Context() gradient.Context { return c.ctx }

// ChartArea returns the plotted area, or nil before the first layout.
func (c *Chart) ChartArea() *gradient.Area {
	if c.area == nil {
		return nil
	}
	a := *c.area
	return &a
}

// Layout records a measured plotted area; nil returns the chart to the
// unresolved state.
func (c *Chart) Layout(area *gradient.Area) {
	if area == nil {
		c.area = nil
		return
	}
	a := *area
	c.area = &a
}

// Resolved returns the definition with element-scoped scriptables evaluated
// against the current layout. Dataset-level scriptables become one value per
// data element; option-level scriptables become a [dataset][element] grid.
func (c *Chart) Resolved() Config {
	cfg := c.config.clone()
	for di, ds := range cfg.Data.Datasets {
		values := floats(ds["data"])
		for k, v := range ds {
			s, ok := v.(Scriptable)
			if !ok || s.Scope != ScopeElement {
				continue
			}
			out := make([]any, len(values))
			for i, val := range values {
				out[i] = s.Call(ScriptContext{Chart: c, DatasetIndex: di, DataIndex: i, Value: val})
			}
			ds[k] = out
		}
	}
	c.resolveOptions(cfg.Options, cfg.Data)
	return cfg
}

func (c *Chart) resolveOptions(m map[string]any, data Data) {
	for k, v := range m {
		if s, ok := v.(Scriptable); ok {
			if s.Scope != ScopeElement {
				continue
			}
			grid := make([][]any, len(data.Datasets))
			for di, ds := range data.Datasets {
				values := floats(ds["data"])
				row := make([]any, len(values))
				for i, val := range values {
					row[i] = s.Call(ScriptContext{Chart: c, DatasetIndex: di, DataIndex: i, Value: val})
				}
				grid[di] = row
			}
			m[k] = grid
			continue
		}
		if sub, ok := asMap(v); ok {
			c.resolveOptions(sub, data)
		}
	}
}

func floats(v any) []float64 {
	switch x := v.(type) {
	case []float64:
		return x
	case []int:
		out := make([]float64, len(x))
		for i, n := range x {
			out[i] = float64(n)
		}
		return out
	case []any:
		out := make([]float64, len(x))
		for i, item := range x {
			switch n := item.(type) {
			case float64:
				out[i] = n
			case int:
				out[i] = float64(n)
			}
		}
		return out
	default:
		return nil
	}
}
