package chart

import (
	"fmt"

	"github.com/mwiater/mathbench/internal/engine"
	"github.com/mwiater/mathbench/internal/gradient"
	"github.com/mwiater/mathbench/internal/palette"
)

// GroupedBar draws one series per model side by side for each label. Dataset
// i takes the color of the i-th model in display order and is filled with a
// vertical gradient.
func (f *Factory) GroupedBar(surfaceID string, labels []string, datasets []Dataset, overrides engine.Options) (*engine.Chart, error) {
	if !f.hasSurface(surfaceID, GroupedBar) {
		return nil, nil
	}
	entries := make([]engine.Options, 0, len(datasets))
	for i, ds := range datasets {
		c, err := f.palette.At(i)
		if err != nil {
			return nil, fmt.Errorf("grouped bar %q dataset %d (%s): %w", surfaceID, i, ds.Label, err)
		}
		entry := engine.Options{
			"label":           ds.Label,
			"data":            copyFloats(ds.Data),
			"backgroundColor": gradientScript([]palette.RGB{c.RGB}, gradient.Vertical),
			"borderColor":     c.String(),
			"borderWidth":     1,
			"borderRadius":    6,
			"borderSkipped":   false,
		}
		entries = append(entries, engine.Merge(entry, ds.Style))
	}
	data := engine.Data{Labels: labels, Datasets: entries}
	return f.bind(surfaceID, GroupedBar, "bar", groupedBarStructure(), data, overrides)
}

// HorizontalBar draws bars along the y index axis. Colors are assigned per
// bar, not per series: bar i takes the i-th model color with a horizontal
// gradient. The legend is hidden.
func (f *Factory) HorizontalBar(surfaceID string, labels []string, datasets []Dataset, overrides engine.Options) (*engine.Chart, error) {
	if !f.hasSurface(surfaceID, HorizontalBar) {
		return nil, nil
	}
	entries := make([]engine.Options, 0, len(datasets))
	for _, ds := range datasets {
		rgbs := make([]palette.RGB, len(ds.Data))
		borders := make([]string, len(ds.Data))
		for i := range ds.Data {
			c, err := f.palette.At(i)
			if err != nil {
				return nil, fmt.Errorf("horizontal bar %q value %d: %w", surfaceID, i, err)
			}
			rgbs[i] = c.RGB
			borders[i] = c.String()
		}
		entry := engine.Options{
			"label":           ds.Label,
			"data":            copyFloats(ds.Data),
			"backgroundColor": gradientScript(rgbs, gradient.Horizontal),
			"borderColor":     borders,
			"borderWidth":     1,
			"borderRadius":    6,
			"borderSkipped":   false,
			"barThickness":    28,
		}
		entries = append(entries, engine.Merge(entry, ds.Style))
	}
	data := engine.Data{Labels: labels, Datasets: entries}
	return f.bind(surfaceID, HorizontalBar, "bar", horizontalBarStructure(), data, overrides)
}

// Radar draws one translucent polygon per model on a 0-100 radial axis.
func (f *Factory) Radar(surfaceID string, labels []string, datasets []Dataset, overrides engine.Options) (*engine.Chart, error) {
	if !f.hasSurface(surfaceID, Radar) {
		return nil, nil
	}
	entries := make([]engine.Options, 0, len(datasets))
	for i, ds := range datasets {
		c, err := f.palette.At(i)
		if err != nil {
			return nil, fmt.Errorf("radar %q dataset %d (%s): %w", surfaceID, i, ds.Label, err)
		}
		entry := engine.Options{
			"label":                ds.Label,
			"data":                 copyFloats(ds.Data),
			"fill":                 true,
			"backgroundColor":      c.RGB.Alpha(0.2).String(),
			"borderColor":          c.String(),
			"borderWidth":          2,
			"pointBackgroundColor": c.String(),
			"pointBorderColor":     "#ffffff",
			"pointRadius":          4,
			"pointHoverRadius":     6,
		}
		entries = append(entries, engine.Merge(entry, ds.Style))
	}
	data := engine.Data{Labels: labels, Datasets: entries}
	return f.bind(surfaceID, Radar, "radar", radarStructure(), data, overrides)
}

// Doughnut draws slices colored from an explicit hex list rather than the
// model palette. Malformed hex colors fail with palette.ErrFormat.
func (f *Factory) Doughnut(surfaceID string, labels []string, datasets []Dataset, colors []string, overrides engine.Options) (*engine.Chart, error) {
	if !f.hasSurface(surfaceID, Doughnut) {
		return nil, nil
	}
	fills := make([]string, len(colors))
	hovers := make([]string, len(colors))
	for i, hex := range colors {
		rgb, err := palette.HexToRGB(hex)
		if err != nil {
			return nil, fmt.Errorf("doughnut %q color %d: %w", surfaceID, i, err)
		}
		fills[i] = rgb.Alpha(0.85).String()
		hovers[i] = rgb.Alpha(1).String()
	}
	entries := make([]engine.Options, 0, len(datasets))
	for _, ds := range datasets {
		entry := engine.Options{
			"label":                ds.Label,
			"data":                 copyFloats(ds.Data),
			"backgroundColor":      append([]string(nil), fills...),
			"hoverBackgroundColor": append([]string(nil), hovers...),
			"borderColor":          "#0f172a",
			"borderWidth":          2,
			"hoverOffset":          8,
		}
		entries = append(entries, engine.Merge(entry, ds.Style))
	}
	data := engine.Data{Labels: labels, Datasets: entries}
	return f.bind(surfaceID, Doughnut, "doughnut", doughnutStructure(), data, overrides)
}

// StackedBar stacks datasets on both axes. It only contributes structure:
// dataset styling comes entirely from each Dataset.Style.
func (f *Factory) StackedBar(surfaceID string, labels []string, datasets []Dataset, overrides engine.Options) (*engine.Chart, error) {
	if !f.hasSurface(surfaceID, StackedBar) {
		return nil, nil
	}
	entries := make([]engine.Options, 0, len(datasets))
	for _, ds := range datasets {
		entry := engine.Options{"label": ds.Label, "data": copyFloats(ds.Data)}
		entries = append(entries, engine.Merge(entry, ds.Style))
	}
	data := engine.Data{Labels: labels, Datasets: entries}
	return f.bind(surfaceID, StackedBar, "bar", stackedBarStructure(), data, overrides)
}
