// internal/dashboard/panels.go
// Package dashboard assembles the benchmark comparison page: it lays out the
// chart surfaces, fills them through the chart factory and renders the result
// as a standalone HTML document.
package dashboard

import (
	"fmt"
	"math"

	"github.com/mwiater/mathbench/internal/chart"
	"github.com/mwiater/mathbench/internal/dataset"
	"github.com/mwiater/mathbench/internal/display"
	"github.com/mwiater/mathbench/internal/engine"
	"github.com/mwiater/mathbench/internal/gradient"
)

// Surface ids of the fixed panels. Topic panels use TopicSurface.
const (
	AccuracyByCategory = "accuracyByCategory"
	OverallAccuracy    = "overallAccuracy"
	CategoryRadar      = "categoryRadar"
	QuestionMix        = "questionMix"
	Outcomes           = "outcomes"
	MedianTiming       = "medianTiming"
)

// CategoryColors fill the question mix slices, cycled by category position.
var CategoryColors = []string{"#a855f7", "#06b6d4", "#eab308", "#ec4899", "#14b8a6"}

// Panel is one chart region of the page.
type Panel struct {
	SurfaceID string
	Shape     chart.Shape
	Section   string
	Title     string
	Subtitle  string
	Height    int
	Chart     *engine.Chart
}

// Page is an assembled dashboard.
type Page struct {
	Title    string
	Dataset  *dataset.Dataset
	Document *engine.Document
	Panels   []Panel
}

// Options controls assembly.
type Options struct {
	Title string
	Theme chart.Theme
	// Surfaces restricts the page to these surface ids; nil keeps every panel.
	Surfaces []string
}

// TopicSurface names the topic breakdown surface of a category.
func TopicSurface(categoryID string) string {
	return "topics-" + categoryID
}

type panelSpec struct {
	Panel
	build func(f *chart.Factory) (*engine.Chart, error)
}

// Assemble builds every panel whose surface is on the page.
func Assemble(ds *dataset.Dataset, opts Options) (*Page, error) {
	specs := panelSpecs(ds)

	doc := engine.NewDocument()
	keep := map[string]bool{}
	for _, id := range opts.Surfaces {
		keep[id] = true
	}
	for _, s := range specs {
		if opts.Surfaces != nil && !keep[s.SurfaceID] {
			continue
		}
		if err := doc.Add(engine.Surface{ID: s.SurfaceID, Width: 960, Height: s.Height}); err != nil {
			return nil, err
		}
	}

	factory := chart.NewFactory(doc, ds.Resolver(), chart.WithPresentation(opts.Theme.Options()))
	page := &Page{Title: opts.Title, Dataset: ds, Document: doc}
	for _, s := range specs {
		c, err := s.build(factory)
		if err != nil {
			return nil, fmt.Errorf("build %s: %w", s.SurfaceID, err)
		}
		if c == nil {
			continue
		}
		p := s.Panel
		p.Chart = c
		page.Panels = append(page.Panels, p)
	}
	return page, nil
}

// Panel returns the panel bound to a surface.
func (p *Page) Panel(surfaceID string) (Panel, bool) {
	for _, panel := range p.Panels {
		if panel.SurfaceID == surfaceID {
			return panel, true
		}
	}
	return Panel{}, false
}

// Layout measures every chart against its surface so scriptable values
// resolve to gradients instead of flat fallbacks.
func (p *Page) Layout() {
	for _, panel := range p.Panels {
		s, ok := p.Document.Surface(panel.SurfaceID)
		if !ok {
			continue
		}
		panel.Chart.Layout(plotArea(s))
	}
}

func plotArea(s *engine.Surface) *gradient.Area {
	return &gradient.Area{
		Left:   48,
		Top:    16,
		Right:  math.Max(48, float64(s.Width)-16),
		Bottom: math.Max(16, float64(s.Height)-40),
	}
}

func panelSpecs(ds *dataset.Dataset) []panelSpec {
	models := ds.OrderedModels()
	categories := ds.Categories

	shortNames := make([]string, len(categories))
	names := make([]string, len(categories))
	for i, c := range categories {
		shortNames[i] = c.ShortName
		names[i] = c.Name
	}
	modelNames := make([]string, len(models))
	for i, m := range models {
		modelNames[i] = m.Name
	}

	specs := []panelSpec{
		{
			Panel: Panel{SurfaceID: AccuracyByCategory, Shape: chart.GroupedBar, Section: "overview", Height: 420,
				Title: "Accuracy by Category", Subtitle: "Share of questions answered correctly"},
			build: func(f *chart.Factory) (*engine.Chart, error) {
				return f.GroupedBar(AccuracyByCategory, shortNames, accuracySeries(ds), nil)
			},
		},
		{
			Panel: Panel{SurfaceID: OverallAccuracy, Shape: chart.HorizontalBar, Section: "overview", Height: 300,
				Title: "Overall Accuracy", Subtitle: "All categories combined"},
			build: func(f *chart.Factory) (*engine.Chart, error) {
				overall := make([]float64, len(models))
				for i, m := range models {
					overall[i] = display.PctNum(ds.Overall(m.ID).Accuracy)
				}
				overrides := engine.Options{}
				overrides.Set("scales.x.max", 100)
				overrides.Set("scales.x.ticks.callback", chart.PercentTick())
				return f.HorizontalBar(OverallAccuracy, modelNames, []chart.Dataset{{Label: "Overall accuracy", Data: overall}}, overrides)
			},
		},
		{
			Panel: Panel{SurfaceID: CategoryRadar, Shape: chart.Radar, Section: "overview", Height: 420,
				Title: "Category Profile", Subtitle: "Accuracy on each category axis"},
			build: func(f *chart.Factory) (*engine.Chart, error) {
				return f.Radar(CategoryRadar, shortNames, accuracySeries(ds), nil)
			},
		},
		{
			Panel: Panel{SurfaceID: QuestionMix, Shape: chart.Doughnut, Section: "categories", Height: 320,
				Title: "Question Mix", Subtitle: "Questions per category"},
			build: func(f *chart.Factory) (*engine.Chart, error) {
				counts := make([]float64, len(categories))
				colors := make([]string, len(categories))
				for i, c := range categories {
					counts[i] = float64(c.Questions)
					colors[i] = CategoryColors[i%len(CategoryColors)]
				}
				return f.Doughnut(QuestionMix, names, []chart.Dataset{{Label: "Questions", Data: counts}}, colors, nil)
			},
		},
		{
			Panel: Panel{SurfaceID: Outcomes, Shape: chart.StackedBar, Section: "categories", Height: 320,
				Title: "Correct vs Incorrect", Subtitle: "Outcome share across all questions"},
			build: func(f *chart.Factory) (*engine.Chart, error) {
				return f.StackedBar(Outcomes, modelNames, outcomeSeries(ds), nil)
			},
		},
		{
			Panel: Panel{SurfaceID: MedianTiming, Shape: chart.GroupedBar, Section: "timing", Height: 380,
				Title: "Median Processing Time", Subtitle: "Seconds per question"},
			build: func(f *chart.Factory) (*engine.Chart, error) {
				series, peak := medianSeries(ds)
				overrides := engine.Options{}
				overrides.Set("scales.y.max", math.Ceil(peak*1.2))
				overrides.Set("scales.y.ticks.callback", chart.SecondsTick())
				return f.GroupedBar(MedianTiming, shortNames, series, overrides)
			},
		},
	}

	for _, category := range categories {
		category := category
		surfaceID := TopicSurface(category.ID)
		specs = append(specs, panelSpec{
			Panel: Panel{SurfaceID: surfaceID, Shape: chart.GroupedBar, Section: "topics", Height: 360,
				Title: category.Name + " Topics", Subtitle: fmt.Sprintf("%d questions", category.Questions)},
			build: func(f *chart.Factory) (*engine.Chart, error) {
				labels, series := topicSeries(ds, category)
				return f.GroupedBar(surfaceID, labels, series, nil)
			},
		})
	}
	return specs
}

func accuracySeries(ds *dataset.Dataset) []chart.Dataset {
	var out []chart.Dataset
	for _, m := range ds.OrderedModels() {
		data := make([]float64, len(ds.Categories))
		for i, c := range ds.Categories {
			data[i] = display.PctNum(c.Results[m.ID].Accuracy)
		}
		out = append(out, chart.Dataset{Label: m.Name, Data: data})
	}
	return out
}

func outcomeSeries(ds *dataset.Dataset) []chart.Dataset {
	models := ds.OrderedModels()
	correct := make([]float64, len(models))
	incorrect := make([]float64, len(models))
	for i, m := range models {
		t := ds.Overall(m.ID)
		if t.Questions == 0 {
			continue
		}
		correct[i] = display.PctNum(float64(t.Correct) / float64(t.Questions))
		incorrect[i] = display.PctNum(float64(t.Incorrect) / float64(t.Questions))
	}
	return []chart.Dataset{
		{Label: "Correct", Data: correct, Style: engine.Options{
			"backgroundColor": "rgba(34, 197, 94, 0.85)",
			"borderRadius":    4,
			"stack":           "outcome",
		}},
		{Label: "Incorrect", Data: incorrect, Style: engine.Options{
			"backgroundColor": "rgba(239, 68, 68, 0.75)",
			"borderRadius":    4,
			"stack":           "outcome",
		}},
	}
}

func medianSeries(ds *dataset.Dataset) ([]chart.Dataset, float64) {
	var out []chart.Dataset
	peak := 0.0
	for _, m := range ds.OrderedModels() {
		data := make([]float64, len(ds.Categories))
		for i, c := range ds.Categories {
			data[i] = c.Results[m.ID].Timing.Median
			peak = math.Max(peak, data[i])
		}
		out = append(out, chart.Dataset{Label: m.Name, Data: data})
	}
	if peak == 0 {
		peak = 1
	}
	return out, peak
}

func topicSeries(ds *dataset.Dataset, c dataset.Category) ([]string, []chart.Dataset) {
	labels := make([]string, len(c.Topics))
	for i, row := range c.Topics {
		labels[i] = row.Topic
	}
	var out []chart.Dataset
	for _, m := range ds.OrderedModels() {
		data := make([]float64, len(c.Topics))
		for i, row := range c.Topics {
			data[i] = display.PctNum(row.Accuracy[m.ID])
		}
		out = append(out, chart.Dataset{Label: m.Name, Data: data})
	}
	return labels, out
}
