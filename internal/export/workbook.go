// internal/export/workbook.go
// Package export writes the benchmark dataset as a styled spreadsheet report.
package export

import (
	"fmt"
	"strings"

	"github.com/mwiater/mathbench/internal/dataset"
	"github.com/mwiater/mathbench/internal/display"
	"github.com/mwiater/mathbench/internal/logging"
	"github.com/mwiater/mathbench/internal/util"
	"github.com/xuri/excelize/v2"
)

// Fixed sheet names. Topic sheets are named by TopicSheet.
const (
	SummarySheet    = "Executive Summary"
	ComparisonSheet = "Category Comparison"
	TimingSheet     = "Timing Analysis"
)

const (
	pctFmt  = "0.0%"
	numFmt  = "#,##0"
	dec2Fmt = "0.00"
	timeFmt = "#,##0.00"

	headerFill = "2F5496"
	labelFill  = "D6E4F0"
)

// TopicSheet names the topic breakdown sheet of a category.
func TopicSheet(c dataset.Category) string {
	name := strings.TrimSpace(c.ShortName)
	if name == "" {
		name = c.ID
	}
	return sheetName(name + " Topics")
}

// sheetName strips characters spreadsheets reject and caps the length at 31.
func sheetName(s string) string {
	s = strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '-'
		}
		return r
	}, s)
	if runes := []rune(s); len(runes) > 31 {
		s = string(runes[:31])
	}
	return s
}

// Workbook builds the report for ds.
func Workbook(ds *dataset.Dataset) (*excelize.File, error) {
	f := excelize.NewFile()
	w := &writer{f: f, widths: map[string]map[int]int{}}
	if err := w.initStyles(); err != nil {
		_ = f.Close()
		return nil, err
	}

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		_ = f.Close()
		return nil, err
	}
	steps := []func(*dataset.Dataset) error{
		w.summary,
		w.comparison,
		w.topics,
		w.timing,
	}
	for _, step := range steps {
		if err := step(ds); err != nil {
			_ = f.Close()
			return nil, err
		}
	}
	if err := w.fitColumns(); err != nil {
		_ = f.Close()
		return nil, err
	}
	f.SetActiveSheet(0)
	return f, nil
}

// Write saves the report for ds to path, creating parent directories.
func Write(ds *dataset.Dataset, path string) error {
	f, err := Workbook(ds)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := util.EnsureDir(path); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	logging.LogEvent("[EXPORT] wrote %d sheets to %s", len(f.GetSheetList()), path)
	return nil
}

type writer struct {
	f      *excelize.File
	widths map[string]map[int]int

	title, subtitle, section, header, label, text int
	num, dec2, time                               int
	pct                                           map[display.Bucket]int
}

func border() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
}

func format(s string) *string { return &s }

func (w *writer) initStyles() error {
	center := &excelize.Alignment{Horizontal: "center", Vertical: "center"}
	left := &excelize.Alignment{Horizontal: "left", Vertical: "center"}
	data := &excelize.Font{Family: "Calibri", Size: 10}

	defs := []struct {
		id    *int
		style *excelize.Style
	}{
		{&w.title, &excelize.Style{Font: &excelize.Font{Family: "Calibri", Bold: true, Size: 14, Color: headerFill}, Alignment: left}},
		{&w.subtitle, &excelize.Style{Font: &excelize.Font{Family: "Calibri", Italic: true, Size: 10, Color: "808080"}}},
		{&w.section, &excelize.Style{Font: &excelize.Font{Family: "Calibri", Bold: true, Size: 12, Color: headerFill}}},
		{&w.header, &excelize.Style{
			Font:      &excelize.Font{Family: "Calibri", Bold: true, Size: 11, Color: "FFFFFF"},
			Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFill}},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
			Border:    border(),
		}},
		{&w.label, &excelize.Style{
			Font:      &excelize.Font{Family: "Calibri", Bold: true, Size: 10, Color: headerFill},
			Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{labelFill}},
			Alignment: left,
			Border:    border(),
		}},
		{&w.text, &excelize.Style{Font: data, Alignment: center, Border: border()}},
		{&w.num, &excelize.Style{Font: data, Alignment: center, Border: border(), CustomNumFmt: format(numFmt)}},
		{&w.dec2, &excelize.Style{Font: data, Alignment: center, Border: border(), CustomNumFmt: format(dec2Fmt)}},
		{&w.time, &excelize.Style{Font: data, Alignment: center, Border: border(), CustomNumFmt: format(timeFmt)}},
	}
	for _, d := range defs {
		id, err := w.f.NewStyle(d.style)
		if err != nil {
			return fmt.Errorf("create style: %w", err)
		}
		*d.id = id
	}

	w.pct = map[display.Bucket]int{}
	for _, b := range []display.Bucket{display.Good, display.Moderate, display.Poor} {
		fill := display.Fill(b)
		id, err := w.f.NewStyle(&excelize.Style{
			Font:         &excelize.Font{Family: "Calibri", Size: 10, Color: fill.Font},
			Fill:         excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{fill.Fill}},
			Alignment:    center,
			Border:       border(),
			CustomNumFmt: format(pctFmt),
		})
		if err != nil {
			return fmt.Errorf("create accuracy style: %w", err)
		}
		w.pct[b] = id
	}
	return nil
}

// put writes value at (col,row), both 1-based, and applies style.
func (w *writer) put(sheet string, col, row int, value any, style int) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if value != nil {
		if err := w.f.SetCellValue(sheet, cell, value); err != nil {
			return err
		}
	}
	if err := w.f.SetCellStyle(sheet, cell, cell, style); err != nil {
		return err
	}
	w.track(sheet, col, value)
	return nil
}

func (w *writer) accuracy(sheet string, col, row int, value float64) error {
	return w.put(sheet, col, row, value, w.pct[display.BucketOf(value)])
}

func (w *writer) headers(sheet string, row int, names ...string) error {
	for i, name := range names {
		if err := w.put(sheet, i+1, row, name, w.header); err != nil {
			return err
		}
	}
	return nil
}

func (w *writer) heading(sheet string, row, lastCol int, text string, style int) error {
	start, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := w.f.SetCellValue(sheet, start, text); err != nil {
		return err
	}
	if err := w.f.SetCellStyle(sheet, start, start, style); err != nil {
		return err
	}
	if lastCol <= 1 {
		return nil
	}
	end, err := excelize.CoordinatesToCellName(lastCol, row)
	if err != nil {
		return err
	}
	return w.f.MergeCell(sheet, start, end)
}

// track records the display width of a cell for column fitting.
func (w *writer) track(sheet string, col int, value any) {
	if value == nil {
		return
	}
	n := len(fmt.Sprint(value))
	if _, ok := value.(float64); ok && n > 8 {
		n = 8
	}
	cols, ok := w.widths[sheet]
	if !ok {
		cols = map[int]int{}
		w.widths[sheet] = cols
	}
	if n > cols[col] {
		cols[col] = n
	}
}

func (w *writer) fitColumns() error {
	for sheet, cols := range w.widths {
		for col, n := range cols {
			name, err := excelize.ColumnNumberToName(col)
			if err != nil {
				return err
			}
			width := float64(n + 3)
			if width < 10 {
				width = 10
			}
			if width > 45 {
				width = 45
			}
			if err := w.f.SetColWidth(sheet, name, name, width); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *writer) newSheet(name string) error {
	if _, err := w.f.NewSheet(name); err != nil {
		return fmt.Errorf("create sheet %q: %w", name, err)
	}
	return nil
}
