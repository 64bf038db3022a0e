// internal/chart/defaults.go
package chart

import "github.com/mwiater/mathbench/internal/engine"

const (
	// DefaultFontFamily is the typeface every chart renders text with.
	DefaultFontFamily = "'Inter', 'Segoe UI', system-ui, sans-serif"
	// DefaultAnimationMs is the reveal duration shared by all shapes.
	DefaultAnimationMs = 1200
	// Easing is the monotonic ease-out curve every shape animates with.
	Easing = "easeOutQuart"

	gridColor = "rgba(148, 163, 184, 0.12)"
	tickColor = "#94a3b8"
)

// presentation is the shared template. It is only ever read through
// PresentationDefaults, which hands out a deep copy.
var presentation = engine.Options{
	"responsive":          true,
	"maintainAspectRatio": false,
	"plugins": engine.Options{
		"legend": engine.Options{
			"labels": engine.Options{
				"color":         "#cbd5e1",
				"padding":       16,
				"usePointStyle": true,
				"font":          engine.Options{"family": DefaultFontFamily, "size": 12, "weight": "500"},
			},
		},
		"tooltip": engine.Options{
			"backgroundColor": "rgba(15, 23, 42, 0.95)",
			"titleColor":      "#f8fafc",
			"bodyColor":       "#cbd5e1",
			"borderColor":     "rgba(148, 163, 184, 0.25)",
			"borderWidth":     1,
			"padding":         12,
			"cornerRadius":    8,
			"titleFont":       engine.Options{"family": DefaultFontFamily, "size": 13, "weight": "600"},
			"bodyFont":        engine.Options{"family": DefaultFontFamily, "size": 12},
		},
	},
	"animation": engine.Options{
		"duration": DefaultAnimationMs,
		"easing":   Easing,
	},
}

// PresentationDefaults returns a fresh copy of the shared presentation
// defaults: typography, legend and tooltip styling, animation curve.
func PresentationDefaults() engine.Options {
	return presentation.Clone()
}

// Theme is the part of the presentation defaults exposed to configuration.
type Theme struct {
	FontFamily        string
	LegendColor       string
	TooltipBackground string
	AnimationMs       int
}

// Options turns non-zero theme fields into a presentation override tree.
func (t Theme) Options() engine.Options {
	o := engine.Options{}
	if t.FontFamily != "" {
		o.Set("plugins.legend.labels.font.family", t.FontFamily)
		o.Set("plugins.tooltip.titleFont.family", t.FontFamily)
		o.Set("plugins.tooltip.bodyFont.family", t.FontFamily)
	}
	if t.LegendColor != "" {
		o.Set("plugins.legend.labels.color", t.LegendColor)
	}
	if t.TooltipBackground != "" {
		o.Set("plugins.tooltip.backgroundColor", t.TooltipBackground)
	}
	if t.AnimationMs > 0 {
		o.Set("animation.duration", t.AnimationMs)
	}
	return o
}

func axisTicks() engine.Options {
	return engine.Options{"color": tickColor, "font": engine.Options{"family": DefaultFontFamily, "size": 11}}
}

func percentAxis() engine.Options {
	ticks := axisTicks()
	ticks["callback"] = PercentTick()
	return engine.Options{
		"beginAtZero": true,
		"min":         0,
		"max":         100,
		"ticks":       ticks,
		"grid":        engine.Options{"color": gridColor},
	}
}

func groupedBarStructure() engine.Options {
	return engine.Options{
		"scales": engine.Options{
			"x": engine.Options{"ticks": axisTicks(), "grid": engine.Options{"display": false}},
			"y": percentAxis(),
		},
		"animation": engine.Options{"delay": delayScript(GroupedBar)},
	}
}

func horizontalBarStructure() engine.Options {
	return engine.Options{
		"indexAxis": "y",
		"scales": engine.Options{
			"x": engine.Options{
				"beginAtZero": true,
				"min":         0,
				"ticks":       axisTicks(),
				"grid":        engine.Options{"color": gridColor},
			},
			"y": engine.Options{"ticks": axisTicks(), "grid": engine.Options{"display": false}},
		},
		"plugins":   engine.Options{"legend": engine.Options{"display": false}},
		"animation": engine.Options{"delay": delayScript(HorizontalBar)},
	}
}

func radarStructure() engine.Options {
	ticks := axisTicks()
	ticks["stepSize"] = 20
	ticks["backdropColor"] = "transparent"
	return engine.Options{
		"scales": engine.Options{
			"r": engine.Options{
				"min":         0,
				"max":         100,
				"beginAtZero": true,
				"ticks":       ticks,
				"grid":        engine.Options{"color": gridColor},
				"angleLines":  engine.Options{"color": gridColor},
				"pointLabels": engine.Options{"color": "#cbd5e1", "font": engine.Options{"family": DefaultFontFamily, "size": 12}},
			},
		},
		"elements":  engine.Options{"point": engine.Options{"radius": 4, "hoverRadius": 6}},
		"animation": engine.Options{"delay": delayScript(Radar)},
	}
}

func doughnutStructure() engine.Options {
	return engine.Options{
		"cutout": "60%",
		"plugins": engine.Options{
			"legend": engine.Options{"display": true, "position": "bottom"},
		},
		"animation": engine.Options{"delay": delayScript(Doughnut), "animateRotate": true},
	}
}

func stackedBarStructure() engine.Options {
	return engine.Options{
		"scales": engine.Options{
			"x": engine.Options{"stacked": true, "ticks": axisTicks(), "grid": engine.Options{"display": false}},
			"y": func() engine.Options {
				y := percentAxis()
				y["stacked"] = true
				return y
			}(),
		},
		"animation": engine.Options{"delay": delayScript(StackedBar)},
	}
}
