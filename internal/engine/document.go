// internal/engine/document.go
// Package engine is the rendering collaborator behind the chart factories: it
// owns drawing surfaces, binds chart handles to them and resolves scriptable
// configuration against the current layout.
package engine

import "fmt"

// Surface is a named drawing region on a page.
type Surface struct {
	ID     string
	Width  int
	Height int

	chart *Chart
}

// Chart returns the chart bound to the surface, if any.
func (s *Surface) Chart() *Chart { return s.chart }

// Document is the set of surfaces a page offers.
type Document struct {
	surfaces map[string]*Surface
	order    []string
}

// NewDocument creates a document holding the given surfaces.
func NewDocument(surfaces ...Surface) *Document {
	d := &Document{surfaces: make(map[string]*Surface, len(surfaces))}
	for _, s := range surfaces {
		_ = d.Add(s)
	}
	return d
}

// Add registers a surface; ids must be unique.
func (d *Document) Add(s Surface) error {
	if s.ID == "" {
		return fmt.Errorf("surface id must not be empty")
	}
	if _, exists := d.surfaces[s.ID]; exists {
		return fmt.Errorf("surface %q already exists", s.ID)
	}
	s.chart = nil
	d.surfaces[s.ID] = &s
	d.order = append(d.order, s.ID)
	return nil
}

// Surface looks a surface up by id.
func (d *Document) Surface(id string) (*Surface, bool) {
	s, ok := d.surfaces[id]
	return s, ok
}

// Remove deletes a surface and destroys any chart bound to it.
func (d *Document) Remove(id string) {
	s, ok := d.surfaces[id]
	if !ok {
		return
	}
	if s.chart != nil {
		s.chart.Destroy()
	}
	delete(d.surfaces, id)
	for i, existing := range d.order {
		if existing == id {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
}

// Surfaces lists surfaces in insertion order.
func (d *Document) Surfaces() []*Surface {
	out := make([]*Surface, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.surfaces[id])
	}
	return out
}

// Charts lists live charts in surface order.
func (d *Document) Charts() []*Chart {
	var out []*Chart
	for _, s := range d.Surfaces() {
		if s.chart != nil {
			out = append(out, s.chart)
		}
	}
	return out
}
