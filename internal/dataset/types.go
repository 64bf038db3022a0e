// internal/dataset/types.go
package dataset

import "github.com/mwiater/mathbench/internal/palette"

// Model describes one evaluated language model.
type Model struct {
	ID           string      `json:"-"`
	Name         string      `json:"name"`
	Organization string      `json:"organization"`
	Parameters   string      `json:"parameters"`
	Color        string      `json:"color"`
	RGB          palette.RGB `json:"-"`
}

// Timing is a processing-time distribution, in seconds.
type Timing struct {
	Count  int      `json:"count"`
	Mean   float64  `json:"mean"`
	Median float64  `json:"median"`
	StdDev float64  `json:"stdDev"`
	Min    float64  `json:"min"`
	Max    float64  `json:"max"`
	P25    *float64 `json:"p25,omitempty"`
	P75    *float64 `json:"p75,omitempty"`
	P95    *float64 `json:"p95,omitempty"`
}

// Result is one model's outcome on one category.
type Result struct {
	Correct   int     `json:"correct"`
	Incorrect int     `json:"incorrect"`
	Accuracy  float64 `json:"accuracy"`
	Timing    Timing  `json:"timing"`
}

// TopicRow is a fine-grained accuracy breakdown within a category.
type TopicRow struct {
	Topic    string             `json:"topic"`
	Samples  int                `json:"samples"`
	Accuracy map[string]float64 `json:"accuracy"`
}

// Category is a group of benchmark questions and every model's result on it.
type Category struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	ShortName string            `json:"shortName"`
	Questions int               `json:"questions"`
	Results   map[string]Result `json:"results"`
	Topics    []TopicRow        `json:"topics"`
}

// Dataset is the complete, read-only benchmark document.
type Dataset struct {
	Models     map[string]Model `json:"models"`
	ModelOrder []string         `json:"modelOrder"`
	Categories []Category       `json:"categories"`
}

// Totals aggregates a model's results across every category.
type Totals struct {
	Questions int
	Correct   int
	Incorrect int
	Accuracy  float64
}

// TimingRow pairs a timing distribution with the category and model it belongs to.
type TimingRow struct {
	CategoryID   string
	CategoryName string
	ModelID      string
	Timing       Timing
}
