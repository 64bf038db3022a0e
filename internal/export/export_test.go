package export

import (
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/mwiater/mathbench/internal/dataset"
	"github.com/mwiater/mathbench/internal/display"
	"github.com/xuri/excelize/v2"
)

func loadDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.Default()
	if err != nil {
		t.Fatalf("load dataset: %v", err)
	}
	return ds
}

func raw(t *testing.T, f *excelize.File, sheet, cell string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
	if err != nil {
		t.Fatalf("GetCellValue %s!%s: %v", sheet, cell, err)
	}
	return v
}

func TestWorkbookSheets(t *testing.T) {
	ds := loadDataset(t)
	f, err := Workbook(ds)
	if err != nil {
		t.Fatalf("Workbook error: %v", err)
	}
	defer f.Close()

	want := []string{SummarySheet, ComparisonSheet}
	for _, c := range ds.Categories {
		want = append(want, TopicSheet(c))
	}
	want = append(want, TimingSheet)

	got := f.GetSheetList()
	if len(got) != len(want) {
		t.Fatalf("expected sheets %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sheet %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestSummaryValues(t *testing.T) {
	ds := loadDataset(t)
	f, err := Workbook(ds)
	if err != nil {
		t.Fatalf("Workbook error: %v", err)
	}
	defer f.Close()

	first := ds.OrderedModels()[0]
	if got := raw(t, f, SummarySheet, "B4"); got != first.Name {
		t.Fatalf("expected header %q, got %q", first.Name, got)
	}
	if got := raw(t, f, SummarySheet, "A8"); got != "Overall Accuracy" {
		t.Fatalf("expected accuracy label, got %q", got)
	}
	acc, err := strconv.ParseFloat(raw(t, f, SummarySheet, "B8"), 64)
	if err != nil {
		t.Fatalf("parse accuracy: %v", err)
	}
	if want := ds.Overall(first.ID).Accuracy; acc-want > 1e-9 || want-acc > 1e-9 {
		t.Fatalf("expected accuracy %v, got %v", want, acc)
	}
	total := raw(t, f, SummarySheet, "B5")
	if total != strconv.Itoa(ds.Overall(first.ID).Questions) {
		t.Fatalf("expected %d questions, got %s", ds.Overall(first.ID).Questions, total)
	}
}

func TestAccuracyFillsFollowBuckets(t *testing.T) {
	ds := loadDataset(t)
	f, err := Workbook(ds)
	if err != nil {
		t.Fatalf("Workbook error: %v", err)
	}
	defer f.Close()

	r := 4
	for _, c := range ds.Categories {
		for _, m := range ds.OrderedModels() {
			res := c.Results[m.ID]
			cell := "F" + strconv.Itoa(r)
			id, err := f.GetCellStyle(ComparisonSheet, cell)
			if err != nil {
				t.Fatalf("GetCellStyle %s: %v", cell, err)
			}
			style, err := f.GetStyle(id)
			if err != nil {
				t.Fatalf("GetStyle %d: %v", id, err)
			}
			want := display.Fill(display.BucketOf(res.Accuracy)).Fill
			if len(style.Fill.Color) == 0 || !strings.EqualFold(style.Fill.Color[0], want) {
				t.Fatalf("%s (%s/%s): expected fill %s, got %v", cell, c.ID, m.ID, want, style.Fill.Color)
			}
			r++
		}
	}
}

func TestTopicSheetRows(t *testing.T) {
	ds := loadDataset(t)
	f, err := Workbook(ds)
	if err != nil {
		t.Fatalf("Workbook error: %v", err)
	}
	defer f.Close()

	c := ds.Categories[0]
	sheet := TopicSheet(c)
	rows, err := f.GetRows(sheet)
	if err != nil {
		t.Fatalf("GetRows error: %v", err)
	}
	if len(rows) != 3+len(c.Topics) {
		t.Fatalf("expected %d rows, got %d", 3+len(c.Topics), len(rows))
	}
	if got := raw(t, f, sheet, "A4"); got != c.Topics[0].Topic {
		t.Fatalf("expected first topic %q, got %q", c.Topics[0].Topic, got)
	}
}

func TestSheetName(t *testing.T) {
	if got := sheetName("a/b:c"); got != "a-b-c" {
		t.Fatalf("expected sanitized name, got %q", got)
	}
	if got := sheetName(strings.Repeat("x", 40)); len(got) != 31 {
		t.Fatalf("expected 31 characters, got %d", len(got))
	}
	if got := TopicSheet(dataset.Category{ID: "calc", ShortName: "Calc I"}); got != "Calc I Topics" {
		t.Fatalf("unexpected topic sheet name %q", got)
	}
}

func TestWriteSavesWorkbook(t *testing.T) {
	ds := loadDataset(t)
	path := filepath.Join(t.TempDir(), "out", "report.xlsx")
	if err := Write(ds, path); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile error: %v", err)
	}
	defer f.Close()
	if got := raw(t, f, TimingSheet, "A1"); got != "Processing Time Analysis" {
		t.Fatalf("unexpected timing title %q", got)
	}
}
