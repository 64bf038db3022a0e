package dataset

import (
	"fmt"
	"math"
	"strings"

	"github.com/mwiater/mathbench/internal/palette"
)

// accuracyTolerance covers accuracy fractions stored rounded to four places.
const accuracyTolerance = 0.0005

// Issue is one broken invariant.
type Issue struct {
	Category string
	Model    string
	Message  string
}

func (i Issue) String() string {
	var parts []string
	if i.Category != "" {
		parts = append(parts, "category="+i.Category)
	}
	if i.Model != "" {
		parts = append(parts, "model="+i.Model)
	}
	parts = append(parts, i.Message)
	return strings.Join(parts, " ")
}

// Validate checks every cross-field invariant and reports all violations.
func Validate(d *Dataset) []Issue {
	var issues []Issue
	add := func(category, model, format string, args ...any) {
		issues = append(issues, Issue{Category: category, Model: model, Message: fmt.Sprintf(format, args...)})
	}

	seen := make(map[string]bool, len(d.ModelOrder))
	for _, id := range d.ModelOrder {
		if seen[id] {
			add("", id, "appears twice in model order")
		}
		seen[id] = true
		if _, ok := d.Models[id]; !ok {
			add("", id, "model order names an undefined model")
		}
	}
	for id, m := range d.Models {
		if _, err := palette.HexToRGB(m.Color); err != nil {
			add("", id, "color: %v", err)
		}
	}

	categoryIDs := make(map[string]bool, len(d.Categories))
	for _, c := range d.Categories {
		if categoryIDs[c.ID] {
			add(c.ID, "", "duplicate category id")
		}
		categoryIDs[c.ID] = true

		for _, id := range d.ModelOrder {
			r, ok := c.Results[id]
			if !ok {
				add(c.ID, id, "missing result")
				continue
			}
			if r.Correct+r.Incorrect != c.Questions {
				add(c.ID, id, "correct (%d) + incorrect (%d) != questions (%d)", r.Correct, r.Incorrect, c.Questions)
			}
			if !inUnit(r.Accuracy) {
				add(c.ID, id, "accuracy %v outside [0,1]", r.Accuracy)
			} else if c.Questions > 0 {
				expected := float64(r.Correct) / float64(c.Questions)
				if math.Abs(expected-r.Accuracy) > accuracyTolerance {
					add(c.ID, id, "accuracy %v disagrees with correct/questions %.4f", r.Accuracy, expected)
				}
			}
			for _, msg := range timingIssues(r.Timing) {
				add(c.ID, id, "timing: %s", msg)
			}
		}
		for id := range c.Results {
			if _, ok := d.Models[id]; !ok {
				add(c.ID, id, "result for undefined model")
			}
		}

		for _, row := range c.Topics {
			for id, acc := range row.Accuracy {
				if _, ok := d.Models[id]; !ok {
					add(c.ID, id, "topic %q: accuracy for undefined model", row.Topic)
					continue
				}
				if !inUnit(acc) {
					add(c.ID, id, "topic %q: accuracy %v outside [0,1]", row.Topic, acc)
				}
			}
		}
	}
	return issues
}

// timingIssues checks min <= p25 <= median <= p75 <= p95 <= max over the
// markers that are present.
func timingIssues(t Timing) []string {
	type marker struct {
		name  string
		value float64
	}
	markers := []marker{{"min", t.Min}}
	if t.P25 != nil {
		markers = append(markers, marker{"p25", *t.P25})
	}
	markers = append(markers, marker{"median", t.Median})
	if t.P75 != nil {
		markers = append(markers, marker{"p75", *t.P75})
	}
	if t.P95 != nil {
		markers = append(markers, marker{"p95", *t.P95})
	}
	markers = append(markers, marker{"max", t.Max})

	var out []string
	for i := 1; i < len(markers); i++ {
		prev, cur := markers[i-1], markers[i]
		if prev.value > cur.value {
			out = append(out, fmt.Sprintf("%s (%v) > %s (%v)", prev.name, prev.value, cur.name, cur.value))
		}
	}
	if t.Mean < t.Min || t.Mean > t.Max {
		out = append(out, fmt.Sprintf("mean (%v) outside [min, max]", t.Mean))
	}
	if t.StdDev < 0 {
		out = append(out, fmt.Sprintf("negative stdDev (%v)", t.StdDev))
	}
	return out
}

func inUnit(f float64) bool {
	return !math.IsNaN(f) && f >= 0 && f <= 1
}
