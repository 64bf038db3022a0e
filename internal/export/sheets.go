package export

import (
	"fmt"

	"github.com/mwiater/mathbench/internal/dataset"
)

// modelTiming aggregates processing time across categories.
type modelTiming struct {
	Count int
	Total float64
}

func (t modelTiming) Avg() float64 {
	if t.Count == 0 {
		return 0
	}
	return t.Total / float64(t.Count)
}

func timingFor(ds *dataset.Dataset, modelID string) modelTiming {
	var t modelTiming
	for _, c := range ds.Categories {
		r, ok := c.Results[modelID]
		if !ok {
			continue
		}
		t.Count += r.Timing.Count
		t.Total += r.Timing.Mean * float64(r.Timing.Count)
	}
	return t
}

func (w *writer) summary(ds *dataset.Dataset) error {
	sheet := SummarySheet
	models := ds.OrderedModels()
	lastCol := 1 + len(models)

	if err := w.heading(sheet, 1, lastCol, "LLM Math Benchmark - Executive Summary", w.title); err != nil {
		return err
	}
	note := fmt.Sprintf("%d models, %d categories, %d questions per model", len(models), len(ds.Categories), ds.TotalQuestions())
	if err := w.heading(sheet, 2, lastCol, note, w.subtitle); err != nil {
		return err
	}

	row := 4
	names := []string{"Metric"}
	for _, m := range models {
		names = append(names, m.Name)
	}
	if err := w.headers(sheet, row, names...); err != nil {
		return err
	}

	type metric struct {
		label string
		value func(id string) float64
		style int
		acc   bool
	}
	metrics := []metric{
		{"Total Questions Attempted", func(id string) float64 { return float64(ds.Overall(id).Questions) }, w.num, false},
		{"Total Correct", func(id string) float64 { return float64(ds.Overall(id).Correct) }, w.num, false},
		{"Total Incorrect", func(id string) float64 { return float64(ds.Overall(id).Incorrect) }, w.num, false},
		{"Overall Accuracy", func(id string) float64 { return ds.Overall(id).Accuracy }, 0, true},
		{"Total Processing Time (s)", func(id string) float64 { return timingFor(ds, id).Total }, w.time, false},
		{"Avg Time Per Question (s)", func(id string) float64 { return timingFor(ds, id).Avg() }, w.dec2, false},
	}
	for i, m := range metrics {
		r := row + 1 + i
		if err := w.put(sheet, 1, r, m.label, w.label); err != nil {
			return err
		}
		for mi, model := range models {
			v := m.value(model.ID)
			var err error
			if m.acc {
				err = w.accuracy(sheet, 2+mi, r, v)
			} else {
				err = w.put(sheet, 2+mi, r, v, m.style)
			}
			if err != nil {
				return err
			}
		}
	}

	row += len(metrics) + 3
	if err := w.heading(sheet, row, 1+2*len(models), "Performance by Category", w.section); err != nil {
		return err
	}
	row++
	names = []string{"Category"}
	for _, m := range models {
		names = append(names, m.Name+" Questions", m.Name+" Accuracy")
	}
	if err := w.headers(sheet, row, names...); err != nil {
		return err
	}
	for i, c := range ds.Categories {
		r := row + 1 + i
		if err := w.put(sheet, 1, r, c.Name, w.label); err != nil {
			return err
		}
		for mi, m := range models {
			res, ok := c.Results[m.ID]
			if !ok {
				continue
			}
			if err := w.put(sheet, 2+mi*2, r, res.Correct+res.Incorrect, w.num); err != nil {
				return err
			}
			if err := w.accuracy(sheet, 3+mi*2, r, res.Accuracy); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *writer) comparison(ds *dataset.Dataset) error {
	sheet := ComparisonSheet
	if err := w.newSheet(sheet); err != nil {
		return err
	}
	if err := w.heading(sheet, 1, 10, "Category-Level Comparison", w.title); err != nil {
		return err
	}
	row := 3
	if err := w.headers(sheet, row, "Category", "Model", "Questions", "Correct", "Incorrect",
		"Accuracy %", "Avg Time (s)", "Median Time (s)", "Min Time (s)", "Max Time (s)"); err != nil {
		return err
	}
	r := row + 1
	for _, c := range ds.Categories {
		for _, m := range ds.OrderedModels() {
			res, ok := c.Results[m.ID]
			if !ok {
				continue
			}
			cells := []struct {
				value any
				style int
			}{
				{c.Name, w.label},
				{m.Name, w.text},
				{c.Questions, w.num},
				{res.Correct, w.num},
				{res.Incorrect, w.num},
			}
			for i, cell := range cells {
				if err := w.put(sheet, 1+i, r, cell.value, cell.style); err != nil {
					return err
				}
			}
			if err := w.accuracy(sheet, 6, r, res.Accuracy); err != nil {
				return err
			}
			for i, v := range []float64{res.Timing.Mean, res.Timing.Median, res.Timing.Min, res.Timing.Max} {
				if err := w.put(sheet, 7+i, r, v, w.dec2); err != nil {
					return err
				}
			}
			r++
		}
	}
	return nil
}

func (w *writer) topics(ds *dataset.Dataset) error {
	models := ds.OrderedModels()
	for _, c := range ds.Categories {
		sheet := TopicSheet(c)
		if err := w.newSheet(sheet); err != nil {
			return err
		}
		if err := w.heading(sheet, 1, 2+len(models), c.Name+" - Topic Breakdown", w.title); err != nil {
			return err
		}
		row := 3
		names := []string{"Topic", "Samples"}
		for _, m := range models {
			names = append(names, m.Name)
		}
		if err := w.headers(sheet, row, names...); err != nil {
			return err
		}
		for i, t := range c.Topics {
			r := row + 1 + i
			if err := w.put(sheet, 1, r, t.Topic, w.label); err != nil {
				return err
			}
			if err := w.put(sheet, 2, r, t.Samples, w.num); err != nil {
				return err
			}
			for mi, m := range models {
				acc, ok := t.Accuracy[m.ID]
				if !ok {
					continue
				}
				if err := w.accuracy(sheet, 3+mi, r, acc); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func optional(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func (w *writer) timing(ds *dataset.Dataset) error {
	sheet := TimingSheet
	if err := w.newSheet(sheet); err != nil {
		return err
	}
	if err := w.heading(sheet, 1, 11, "Processing Time Analysis", w.title); err != nil {
		return err
	}
	row := 3
	if err := w.headers(sheet, row, "Category", "Model", "Count", "Mean (s)", "Median (s)", "Std Dev (s)",
		"P25 (s)", "P75 (s)", "P95 (s)", "Min (s)", "Max (s)"); err != nil {
		return err
	}
	r := row + 1
	for _, tr := range ds.TimingRows() {
		m, _ := ds.Model(tr.ModelID)
		t := tr.Timing
		if err := w.put(sheet, 1, r, tr.CategoryName, w.label); err != nil {
			return err
		}
		if err := w.put(sheet, 2, r, m.Name, w.text); err != nil {
			return err
		}
		if err := w.put(sheet, 3, r, t.Count, w.num); err != nil {
			return err
		}
		values := []any{t.Mean, t.Median, t.StdDev, optional(t.P25), optional(t.P75), optional(t.P95), t.Min, t.Max}
		for i, v := range values {
			if err := w.put(sheet, 4+i, r, v, w.dec2); err != nil {
				return err
			}
		}
		r++
	}

	r++
	if err := w.heading(sheet, r, 1, "Overall Model Timing Summary", w.section); err != nil {
		return err
	}
	r++
	if err := w.headers(sheet, r, "Model", "Total Questions", "Total Time (s)", "Total Time (min)", "Avg Time (s)"); err != nil {
		return err
	}
	r++
	for _, m := range ds.OrderedModels() {
		t := timingFor(ds, m.ID)
		cells := []struct {
			value any
			style int
		}{
			{m.Name, w.label},
			{t.Count, w.num},
			{t.Total, w.time},
			{t.Total / 60, w.dec2},
			{t.Avg(), w.dec2},
		}
		for i, cell := range cells {
			if err := w.put(sheet, 1+i, r, cell.value, cell.style); err != nil {
				return err
			}
		}
		r++
	}
	return nil
}
