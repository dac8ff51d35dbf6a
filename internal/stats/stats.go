// Package stats derives grade distribution and average from a roster.
package stats

import (
	"github.com/mind-engage/gradescale/internal/grading"
	"github.com/mind-engage/gradescale/internal/roster"
)

// Distribution counts students per grade. Every grade is present.
type Distribution map[grading.Grade]int

type Summary struct {
	Students     int                     `json:"students"`
	Distribution Distribution            `json:"distribution"`
	Counts       [grading.GradeCount]int `json:"counts"`
	Average      float64                 `json:"average"`
}

// GradeDistribution grades every student of r on scale.
func GradeDistribution(r *roster.Roster, scale *grading.Scale) Distribution {
	d := make(Distribution, grading.GradeCount)
	for _, g := range grading.Grades() {
		d[g] = 0
	}
	if r == nil {
		return d
	}
	for _, s := range r.Students() {
		d[roster.GradeOf(s, scale)]++
	}
	return d
}

// Average is the count-weighted mean grade rounded to two decimals.
// An empty distribution averages to 0.
func Average(d Distribution) float64 {
	total, weighted := 0, 0
	for g, n := range d {
		total += n
		weighted += g.Number() * n
	}
	if total == 0 {
		return 0
	}
	return grading.RoundTo(float64(weighted)/float64(total), 2)
}

// Counts flattens d into best-to-worst order for charting.
func Counts(d Distribution) [grading.GradeCount]int {
	var out [grading.GradeCount]int
	for i, g := range grading.Grades() {
		out[i] = d[g]
	}
	return out
}

func Summarize(r *roster.Roster, scale *grading.Scale) Summary {
	d := GradeDistribution(r, scale)
	n := 0
	if r != nil {
		n = r.Len()
	}
	return Summary{Students: n, Distribution: d, Counts: Counts(d), Average: Average(d)}
}
