package chart

import (
	"strconv"

	"github.com/mwiater/mathbench/internal/engine"
	"github.com/mwiater/mathbench/internal/gradient"
	"github.com/mwiater/mathbench/internal/palette"
)

// Shape names a chart family built by the factory.
type Shape string

const (
	GroupedBar    Shape = "grouped-bar"
	HorizontalBar Shape = "horizontal-bar"
	Radar         Shape = "radar"
	Doughnut      Shape = "doughnut"
	StackedBar    Shape = "stacked-bar"
)

// Shapes lists every supported shape.
var Shapes = []Shape{GroupedBar, HorizontalBar, Radar, Doughnut, StackedBar}

// Stagger is a linear reveal delay: index*PerIndex + series*PerSeries ms.
type Stagger struct {
	PerIndex  int
	PerSeries int
}

// Delay returns the reveal delay in milliseconds for one element.
func (s Stagger) Delay(index, series int) int {
	if index < 0 {
		index = 0
	}
	if series < 0 {
		series = 0
	}
	return index*s.PerIndex + series*s.PerSeries
}

var staggers = map[Shape]Stagger{
	GroupedBar:    {PerIndex: 120, PerSeries: 250},
	HorizontalBar: {PerIndex: 200},
	Radar:         {PerIndex: 60, PerSeries: 300},
	Doughnut:      {PerIndex: 150},
	StackedBar:    {PerIndex: 150},
}

// StaggerFor returns the reveal stagger of a shape.
func StaggerFor(shape Shape) Stagger {
	return staggers[shape]
}

func delayScript(shape Shape) engine.Scriptable {
	s := StaggerFor(shape)
	return engine.Scriptable{
		Name: "delay",
		Args: map[string]any{"perIndex": s.PerIndex, "perSeries": s.PerSeries},
		Eval: func(sc engine.ScriptContext) any {
			return s.Delay(sc.DataIndex, sc.DatasetIndex)
		},
	}
}

// PercentTick formats axis ticks as percentages.
func PercentTick() engine.Scriptable {
	return engine.Scriptable{
		Name:  "percentTick",
		Scope: engine.ScopeTick,
		Eval: func(sc engine.ScriptContext) any {
			return strconv.FormatFloat(sc.Value, 'f', -1, 64) + "%"
		},
	}
}

// SecondsTick formats axis ticks as seconds, for timing charts that override
// the percent axis.
func SecondsTick() engine.Scriptable {
	return engine.Scriptable{
		Name:  "secondsTick",
		Scope: engine.ScopeTick,
		Eval: func(sc engine.ScriptContext) any {
			return strconv.FormatFloat(sc.Value, 'f', -1, 64) + "s"
		},
	}
}

// gradientScript fills each element with a gradient built against the chart's
// current layout. With one color every element shares it; otherwise element i
// uses colors[i].
func gradientScript(colors []palette.RGB, o gradient.Orientation) engine.Scriptable {
	rgbs := append([]palette.RGB(nil), colors...)
	triples := make([]any, len(rgbs))
	for i, c := range rgbs {
		triples[i] = c.Triple()
	}
	return engine.Scriptable{
		Name: "gradient",
		Args: map[string]any{"orientation": string(o), "colors": triples},
		Eval: func(sc engine.ScriptContext) any {
			if len(rgbs) == 0 {
				return nil
			}
			rgb := rgbs[0]
			if len(rgbs) > 1 && sc.DataIndex < len(rgbs) {
				rgb = rgbs[sc.DataIndex]
			}
			return gradient.Build(sc.Chart.Context(), rgb, sc.Chart.ChartArea(), o)
		},
	}
}
