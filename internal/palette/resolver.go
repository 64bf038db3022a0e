package palette

import "fmt"

// Swatch binds a model identifier to its display name and canonical color.
type Swatch struct {
	ID   string
	Name string
	RGB  RGB
}

// Resolver answers color and name lookups for a fixed, ordered set of models.
// The order of the swatches is the display order used for positional lookups.
type Resolver struct {
	order []Swatch
	byID  map[string]int
}

// NewResolver builds a resolver over swatches in display order.
func NewResolver(swatches []Swatch) *Resolver {
	r := &Resolver{
		order: make([]Swatch, len(swatches)),
		byID:  make(map[string]int, len(swatches)),
	}
	copy(r.order, swatches)
	for i, s := range r.order {
		r.byID[s.ID] = i
	}
	return r
}

// Color returns the model's color at the given opacity (default 1).
func (r *Resolver) Color(id string, alpha ...float64) (Color, error) {
	idx, ok := r.byID[id]
	if !ok {
		return Color{}, fmt.Errorf("%w: %q", ErrLookup, id)
	}
	return r.order[idx].RGB.Alpha(alphaOr(alpha)), nil
}

// MustColor is Color that panics on unknown identifiers.
func (r *Resolver) MustColor(id string, alpha ...float64) Color {
	c, err := r.Color(id, alpha...)
	if err != nil {
		panic(err)
	}
	return c
}

// At returns the color of the i-th model in display order.
func (r *Resolver) At(i int, alpha ...float64) (Color, error) {
	if i < 0 || i >= len(r.order) {
		return Color{}, fmt.Errorf("%w: display position %d of %d", ErrLookup, i, len(r.order))
	}
	return r.order[i].RGB.Alpha(alphaOr(alpha)), nil
}

// Colors lists every model color in display order.
func (r *Resolver) Colors(alpha ...float64) []Color {
	a := alphaOr(alpha)
	out := make([]Color, len(r.order))
	for i, s := range r.order {
		out[i] = s.RGB.Alpha(a)
	}
	return out
}

// Names lists display names in display order.
func (r *Resolver) Names() []string {
	out := make([]string, len(r.order))
	for i, s := range r.order {
		out[i] = s.Name
	}
	return out
}

// IDs lists model identifiers in display order.
func (r *Resolver) IDs() []string {
	out := make([]string, len(r.order))
	for i, s := range r.order {
		out[i] = s.ID
	}
	return out
}

// Len reports how many models the resolver knows.
func (r *Resolver) Len() int { return len(r.order) }
