package dashboard

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mwiater/mathbench/internal/chart"
	"github.com/mwiater/mathbench/internal/dataset"
	"github.com/mwiater/mathbench/internal/display"
	"github.com/mwiater/mathbench/internal/engine"
	"github.com/mwiater/mathbench/internal/gradient"
)

func loadDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.Default()
	if err != nil {
		t.Fatalf("load dataset: %v", err)
	}
	return ds
}

func TestAssembleBuildsEveryPanel(t *testing.T) {
	ds := loadDataset(t)
	page, err := Assemble(ds, Options{Title: "Bench"})
	if err != nil {
		t.Fatalf("Assemble error: %v", err)
	}
	want := 6 + len(ds.Categories)
	if len(page.Panels) != want {
		t.Fatalf("expected %d panels, got %d", want, len(page.Panels))
	}
	if n := len(page.Document.Charts()); n != want {
		t.Fatalf("expected %d bound charts, got %d", want, n)
	}
	for _, c := range ds.Categories {
		if _, ok := page.Panel(TopicSurface(c.ID)); !ok {
			t.Fatalf("missing topic panel for %s", c.ID)
		}
	}
	shapes := map[chart.Shape]bool{}
	for _, p := range page.Panels {
		shapes[p.Shape] = true
	}
	for _, s := range chart.Shapes {
		if !shapes[s] {
			t.Fatalf("no panel exercises shape %s", s)
		}
	}
}

func TestAssembleSkipsOmittedSurfaces(t *testing.T) {
	ds := loadDataset(t)
	page, err := Assemble(ds, Options{Surfaces: []string{CategoryRadar, QuestionMix}})
	if err != nil {
		t.Fatalf("Assemble error: %v", err)
	}
	if len(page.Panels) != 2 {
		t.Fatalf("expected 2 panels, got %d", len(page.Panels))
	}
	if _, ok := page.Panel(AccuracyByCategory); ok {
		t.Fatal("omitted surface must not get a panel")
	}
}

func TestAccuracyPanelData(t *testing.T) {
	ds := loadDataset(t)
	page, err := Assemble(ds, Options{})
	if err != nil {
		t.Fatalf("Assemble error: %v", err)
	}
	panel, _ := page.Panel(AccuracyByCategory)
	cfg := panel.Chart.Config()
	if len(cfg.Data.Datasets) != len(ds.ModelOrder) {
		t.Fatalf("expected one dataset per model, got %d", len(cfg.Data.Datasets))
	}
	first := ds.Categories[0]
	model := ds.ModelOrder[0]
	data := cfg.Data.Datasets[0]["data"].([]float64)
	want := display.PctNum(first.Results[model].Accuracy)
	if data[0] != want {
		t.Fatalf("expected %.1f, got %.1f", want, data[0])
	}
	if cfg.Data.Labels[0] != first.ShortName {
		t.Fatalf("expected short name label, got %s", cfg.Data.Labels[0])
	}
}

func TestMedianTimingOverrides(t *testing.T) {
	ds := loadDataset(t)
	page, err := Assemble(ds, Options{Surfaces: []string{MedianTiming}})
	if err != nil {
		t.Fatalf("Assemble error: %v", err)
	}
	panel, _ := page.Panel(MedianTiming)
	opts := panel.Chart.Config().Options
	yMax, _ := opts.Get("scales.y.max")
	if v, ok := yMax.(float64); !ok || v == 100 {
		t.Fatalf("expected seconds-scaled max, got %v", yMax)
	}
	cb, _ := opts.Get("scales.y.ticks.callback")
	if s, ok := cb.(engine.Scriptable); !ok || s.Name != "secondsTick" {
		t.Fatalf("expected seconds tick callback, got %v", cb)
	}
	if size, _ := opts.Get("scales.y.ticks.font.size"); size != 11 {
		t.Fatalf("expected structural tick font kept, got %v", size)
	}
}

func TestLayoutResolvesGradients(t *testing.T) {
	ds := loadDataset(t)
	page, err := Assemble(ds, Options{Surfaces: []string{OverallAccuracy}})
	if err != nil {
		t.Fatalf("Assemble error: %v", err)
	}
	panel, _ := page.Panel(OverallAccuracy)
	before := panel.Chart.Resolved().Data.Datasets[0]["backgroundColor"].([]any)
	if _, ok := before[0].(string); !ok {
		t.Fatalf("expected flat fallback before layout, got %T", before[0])
	}
	page.Layout()
	after := panel.Chart.Resolved().Data.Datasets[0]["backgroundColor"].([]any)
	g, ok := after[0].(*gradient.Linear)
	if !ok {
		t.Fatalf("expected gradient after layout, got %T", after[0])
	}
	if g.X0 != 48 || g.X1 != 944 {
		t.Fatalf("unexpected horizontal span %+v", g)
	}
}

func TestThemeReachesCharts(t *testing.T) {
	ds := loadDataset(t)
	page, err := Assemble(ds, Options{Theme: chart.Theme{LegendColor: "#ffffff"}, Surfaces: []string{CategoryRadar}})
	if err != nil {
		t.Fatalf("Assemble error: %v", err)
	}
	panel, _ := page.Panel(CategoryRadar)
	if got, _ := panel.Chart.Config().Options.Get("plugins.legend.labels.color"); got != "#ffffff" {
		t.Fatalf("expected themed legend color, got %v", got)
	}
}

func TestRenderEmbedsEveryChart(t *testing.T) {
	ds := loadDataset(t)
	page, err := Assemble(ds, Options{Title: "Math Benchmark Comparison"})
	if err != nil {
		t.Fatalf("Assemble error: %v", err)
	}
	html, err := page.Render()
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	for _, p := range page.Panels {
		if !strings.Contains(html, `<canvas id="`+p.SurfaceID+`">`) {
			t.Fatalf("missing canvas for %s", p.SurfaceID)
		}
		if !strings.Contains(html, `"`+p.SurfaceID+`":{`) {
			t.Fatalf("missing spec for %s", p.SurfaceID)
		}
	}
	for _, want := range []string{
		"<title>Math Benchmark Comparison</title>",
		`"$script":"gradient"`,
		`"$script":"delay"`,
		"IntersectionObserver",
		"observer.unobserve",
		"bg-good",
		ds.OrderedModels()[0].Name,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected page to contain %q", want)
		}
	}
}

func TestWriteCreatesFile(t *testing.T) {
	ds := loadDataset(t)
	page, err := Assemble(ds, Options{Title: "Bench", Surfaces: []string{QuestionMix}})
	if err != nil {
		t.Fatalf("Assemble error: %v", err)
	}
	path := filepath.Join(t.TempDir(), "dist", "index.html")
	if err := page.Write(path); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read page: %v", err)
	}
	if !strings.Contains(string(data), `id="questionMix"`) {
		t.Fatal("written page is missing the question mix canvas")
	}
}
