// internal/display/display.go
// Package display maps accuracy fractions to severity buckets and formats
// fractions as percentages for templates, terminals and spreadsheets.
package display

import (
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// Bucket is a qualitative severity label for an accuracy fraction.
type Bucket string

const (
	Good     Bucket = "good"
	Moderate Bucket = "moderate"
	Poor     Bucket = "poor"
)

// Lower bounds of each bucket; a bound belongs to the bucket it starts.
const (
	GoodThreshold     = 0.70
	ModerateThreshold = 0.40
)

// BucketOf classifies an accuracy fraction. NaN is Poor.
func BucketOf(accuracy float64) Bucket {
	switch {
	case accuracy >= GoodThreshold:
		return Good
	case accuracy >= ModerateThreshold:
		return Moderate
	default:
		return Poor
	}
}

// AccuracyColor returns the text style token for the accuracy's bucket.
func AccuracyColor(accuracy float64) string {
	return "text-" + string(BucketOf(accuracy))
}

// AccuracyBg returns the background style token for the accuracy's bucket.
func AccuracyBg(accuracy float64) string {
	return "bg-" + string(BucketOf(accuracy))
}

// Pct formats a fraction as a percentage with one decimal, e.g. 0.6384 -> "63.8%".
func Pct(fraction float64) string {
	return strconv.FormatFloat(PctNum(fraction), 'f', 1, 64) + "%"
}

// PctNum converts a fraction to a percentage rounded to one decimal.
func PctNum(fraction float64) float64 {
	if math.IsNaN(fraction) || math.IsInf(fraction, 0) {
		return 0
	}
	return math.Round(fraction*1000) / 10
}

var bucketStyles = map[Bucket]lipgloss.Style{
	Good:     lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
	Moderate: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	Poor:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
}

// Style returns the terminal style for a bucket.
func Style(b Bucket) lipgloss.Style {
	if s, ok := bucketStyles[b]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// SheetFill holds spreadsheet fill and font colors (RRGGBB, no '#').
type SheetFill struct {
	Fill string
	Font string
}

// Fill returns the spreadsheet conditional-format colors for a bucket.
func Fill(b Bucket) SheetFill {
	switch b {
	case Good:
		return SheetFill{Fill: "C6EFCE", Font: "006100"}
	case Moderate:
		return SheetFill{Fill: "FFEB9C", Font: "9C6500"}
	default:
		return SheetFill{Fill: "FFC7CE", Font: "9C0006"}
	}
}
