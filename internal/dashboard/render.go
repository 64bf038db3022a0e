// internal/dashboard/render.go
package dashboard

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/mwiater/mathbench/internal/dataset"
	"github.com/mwiater/mathbench/internal/display"
	"github.com/mwiater/mathbench/internal/gradient"
	"github.com/mwiater/mathbench/internal/logging"
	"github.com/mwiater/mathbench/internal/util"
)

type pageData struct {
	Title        string
	Counters     []counterView
	Models       []modelView
	Categories   []categoryView
	Sections     []sectionView
	ChartsJSON   template.JS
	GradientJSON template.JS
}

type counterView struct {
	Label    string
	Value    float64
	Decimals int
	Suffix   string
}

type modelView struct {
	Name         string
	Organization string
	Parameters   string
	Color        string
	Accuracy     float64
}

type categoryView struct {
	Name      string
	Questions int
	Cells     []float64
}

type sectionView struct {
	ID     string
	Title  string
	Panels []Panel
}

var sectionTitles = []struct{ id, title string }{
	{"overview", "Overview"},
	{"categories", "Categories"},
	{"timing", "Timing"},
	{"topics", "Topic Breakdown"},
}

var funcs = template.FuncMap{
	"pct":           display.Pct,
	"accuracyBg":    display.AccuracyBg,
	"accuracyColor": display.AccuracyColor,
}

var pageTemplate = template.Must(template.New("dashboard").Funcs(funcs).Parse(pageTemplateHTML))

// Render produces the standalone HTML page.
func (p *Page) Render() (string, error) {
	specs := make(map[string]json.RawMessage, len(p.Panels))
	for _, panel := range p.Panels {
		raw, err := panel.Chart.Spec()
		if err != nil {
			return "", fmt.Errorf("encode %s: %w", panel.SurfaceID, err)
		}
		specs[panel.SurfaceID] = raw
	}
	chartsJSON, err := json.Marshal(specs)
	if err != nil {
		return "", err
	}
	gradientJSON, err := json.Marshal(map[string]float64{
		"verticalStart":   gradient.VerticalStart,
		"verticalEnd":     gradient.VerticalEnd,
		"horizontalStart": gradient.HorizontalStart,
		"horizontalEnd":   gradient.HorizontalEnd,
		"flat":            gradient.FlatAlpha,
	})
	if err != nil {
		return "", err
	}

	view := pageData{
		Title:        p.Title,
		Counters:     counters(p.Dataset),
		Models:       models(p.Dataset),
		Categories:   categories(p.Dataset),
		Sections:     sections(p.Panels),
		ChartsJSON:   template.JS(chartsJSON),
		GradientJSON: template.JS(gradientJSON),
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Write renders the page to path, creating parent directories.
func (p *Page) Write(path string) error {
	html, err := p.Render()
	if err != nil {
		return err
	}
	if err := util.WriteFile(path, []byte(html)); err != nil {
		return err
	}
	logging.LogEvent("[DASHBOARD] wrote %d charts to %s", len(p.Panels), path)
	return nil
}

func counters(ds *dataset.Dataset) []counterView {
	best := 0.0
	for _, id := range ds.ModelOrder {
		if acc := ds.Overall(id).Accuracy; acc > best {
			best = acc
		}
	}
	return []counterView{
		{Label: "Questions", Value: float64(ds.TotalQuestions())},
		{Label: "Models", Value: float64(len(ds.ModelOrder))},
		{Label: "Categories", Value: float64(len(ds.Categories))},
		{Label: "Best Overall", Value: display.PctNum(best), Decimals: 1, Suffix: "%"},
	}
}

func models(ds *dataset.Dataset) []modelView {
	var out []modelView
	for _, m := range ds.OrderedModels() {
		out = append(out, modelView{
			Name:         m.Name,
			Organization: m.Organization,
			Parameters:   m.Parameters,
			Color:        m.RGB.Hex(),
			Accuracy:     ds.Overall(m.ID).Accuracy,
		})
	}
	return out
}

func categories(ds *dataset.Dataset) []categoryView {
	var out []categoryView
	for _, c := range ds.Categories {
		row := categoryView{Name: c.Name, Questions: c.Questions}
		for _, id := range ds.ModelOrder {
			row.Cells = append(row.Cells, c.Results[id].Accuracy)
		}
		out = append(out, row)
	}
	return out
}

func sections(panels []Panel) []sectionView {
	var out []sectionView
	for _, s := range sectionTitles {
		view := sectionView{ID: s.id, Title: s.title}
		for _, p := range panels {
			if p.Section == s.id {
				view.Panels = append(view.Panels, p)
			}
		}
		if len(view.Panels) > 0 {
			out = append(out, view)
		}
	}
	return out
}

const pageTemplateHTML = `<!DOCTYPE html>
<html lang="en" data-theme="dark">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{ .Title }}</title>
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css">
  <link rel="stylesheet" href="https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700&display=swap">
  <style>
    :root {
      --primary: #0F172A;
      --secondary: #94A3B8;
      --accent: #60A5FA;
      --light: #0B1220;
      --background: #111827;
      --text: #E2E8F0;
      --border: rgba(148, 163, 184, 0.25);
    }
    body {
      background-color: var(--light);
      color: var(--text);
      font-family: 'Inter', 'Segoe UI', system-ui, sans-serif;
    }
    .navbar-dark { background-color: var(--primary) !important; }
    .chart-card {
      background: var(--background);
      border-radius: 16px;
      padding: 1.5rem;
      border: 1px solid var(--border);
      margin-bottom: 1.5rem;
    }
    .chart-title { font-size: 1.25rem; font-weight: 700; margin-bottom: 0.25rem; }
    .chart-subtitle { color: var(--secondary); margin-bottom: 1rem; }
    .chart-canvas { position: relative; }
    .counter-card { text-align: center; }
    .counter-value { font-size: 2rem; font-weight: 700; color: var(--accent); }
    .legend-color { display: inline-block; width: 14px; height: 14px; border-radius: 4px; margin-right: 0.5rem; }
    .reveal { opacity: 0; transform: translateY(24px); transition: opacity 0.6s ease-out, transform 0.6s ease-out; }
    .reveal.visible { opacity: 1; transform: none; }
    .table { --bs-table-bg: transparent; --bs-table-color: var(--text); border-color: var(--border); }
    .text-good { color: #22c55e; }
    .text-moderate { color: #eab308; }
    .text-poor { color: #ef4444; }
    .bg-good { background-color: rgba(34, 197, 94, 0.18) !important; }
    .bg-moderate { background-color: rgba(234, 179, 8, 0.18) !important; }
    .bg-poor { background-color: rgba(239, 68, 68, 0.18) !important; }
  </style>
</head>
<body>
  <nav class="navbar navbar-dark sticky-top">
    <div class="container">
      <span class="navbar-brand fw-semibold">{{ .Title }}</span>
      <div class="d-flex gap-3">
        {{- range .Sections }}
        <a class="text-light text-decoration-none" href="#{{ .ID }}">{{ .Title }}</a>
        {{- end }}
      </div>
    </div>
  </nav>

  <main class="container py-4">
    <div class="row g-3 mb-4">
      {{- range .Counters }}
      <div class="col-6 col-md-3">
        <div class="chart-card counter-card reveal">
          <div class="counter-value counter" data-target="{{ .Value }}" data-decimals="{{ .Decimals }}" data-suffix="{{ .Suffix }}">0</div>
          <div class="chart-subtitle mb-0">{{ .Label }}</div>
        </div>
      </div>
      {{- end }}
    </div>

    <div class="chart-card reveal">
      <div class="chart-title">Models</div>
      <table class="table mb-0">
        <thead><tr><th>Model</th><th>Organization</th><th>Parameters</th><th>Overall</th></tr></thead>
        <tbody>
          {{- range .Models }}
          <tr>
            <td><span class="legend-color" style="background-color: {{ .Color }}"></span>{{ .Name }}</td>
            <td>{{ .Organization }}</td>
            <td>{{ .Parameters }}</td>
            <td class="{{ accuracyColor .Accuracy }} fw-semibold">{{ pct .Accuracy }}</td>
          </tr>
          {{- end }}
        </tbody>
      </table>
    </div>

    <div class="chart-card reveal">
      <div class="chart-title">Accuracy by Category</div>
      <table class="table mb-0">
        <thead>
          <tr><th>Category</th><th>Questions</th>{{ range .Models }}<th>{{ .Name }}</th>{{ end }}</tr>
        </thead>
        <tbody>
          {{- range .Categories }}
          <tr>
            <td>{{ .Name }}</td>
            <td>{{ .Questions }}</td>
            {{- range .Cells }}
            <td class="{{ accuracyBg . }}">{{ pct . }}</td>
            {{- end }}
          </tr>
          {{- end }}
        </tbody>
      </table>
    </div>

    {{- range .Sections }}
    <section id="{{ .ID }}" class="pt-3">
      <h2 class="h4 mb-3">{{ .Title }}</h2>
      {{- range .Panels }}
      <div class="chart-card reveal">
        <div class="chart-title">{{ .Title }}</div>
        <div class="chart-subtitle">{{ .Subtitle }}</div>
        <div class="chart-canvas" style="height: {{ .Height }}px">
          <canvas id="{{ .SurfaceID }}"></canvas>
        </div>
      </div>
      {{- end }}
    </section>
    {{- end }}
  </main>

  <script src="https://cdn.jsdelivr.net/npm/chart.js@4.4.2/dist/chart.umd.min.js"></script>
  <script>
    const chartSpecs = {{ .ChartsJSON }};
    const stops = {{ .GradientJSON }};

    const rgba = (c, a) => 'rgba(' + c[0] + ', ' + c[1] + ', ' + c[2] + ', ' + a + ')';

    const resolvers = {
      gradient(args) {
        return (ctx) => {
          const colors = args.colors || [];
          if (colors.length === 0) return undefined;
          const c = colors.length === 1 ? colors[0] : (colors[ctx.dataIndex] || colors[0]);
          const chart = ctx.chart;
          const area = chart.chartArea;
          if (!area) return rgba(c, stops.flat);
          let g;
          if (args.orientation === 'horizontal') {
            g = chart.ctx.createLinearGradient(area.left, 0, area.right, 0);
            g.addColorStop(0, rgba(c, stops.horizontalStart));
            g.addColorStop(1, rgba(c, stops.horizontalEnd));
          } else {
            g = chart.ctx.createLinearGradient(0, area.top, 0, area.bottom);
            g.addColorStop(0, rgba(c, stops.verticalStart));
            g.addColorStop(1, rgba(c, stops.verticalEnd));
          }
          return g;
        };
      },
      delay(args) {
        return (ctx) => {
          if (ctx.type !== 'data' || ctx.mode !== 'default') return 0;
          return ctx.dataIndex * (args.perIndex || 0) + ctx.datasetIndex * (args.perSeries || 0);
        };
      },
      percentTick() {
        return (value) => value + '%';
      },
      secondsTick() {
        return (value) => value + 's';
      },
    };

    function revive(node) {
      if (Array.isArray(node)) return node.map(revive);
      if (node && typeof node === 'object') {
        if (typeof node.$script === 'string') {
          const make = resolvers[node.$script];
          return make ? make(node.args || {}) : undefined;
        }
        const out = {};
        for (const key of Object.keys(node)) out[key] = revive(node[key]);
        return out;
      }
      return node;
    }

    const easeOutQuart = (t) => 1 - Math.pow(1 - t, 4);

    function runCounter(el) {
      const target = parseFloat(el.dataset.target) || 0;
      const decimals = parseInt(el.dataset.decimals, 10) || 0;
      const suffix = el.dataset.suffix || '';
      const duration = 1200;
      let start = null;
      const frame = (now) => {
        if (start === null) start = now;
        const t = Math.min(1, (now - start) / duration);
        const value = t >= 1 ? target : target * easeOutQuart(t);
        el.textContent = value.toFixed(decimals) + suffix;
        if (t < 1) requestAnimationFrame(frame);
      };
      requestAnimationFrame(frame);
    }

    const observer = new IntersectionObserver((entries) => {
      for (const entry of entries) {
        if (!entry.isIntersecting) continue;
        entry.target.classList.add('visible');
        for (const el of entry.target.querySelectorAll('.counter')) runCounter(el);
        observer.unobserve(entry.target);
      }
    }, { threshold: 0.15 });

    document.addEventListener('DOMContentLoaded', () => {
      for (const el of document.querySelectorAll('.reveal')) observer.observe(el);
      for (const id of Object.keys(chartSpecs)) {
        const canvas = document.getElementById(id);
        if (!canvas) continue;
        new Chart(canvas, revive(chartSpecs[id]));
      }
    });
  </script>
</body>
</html>
`
