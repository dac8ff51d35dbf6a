package grading

// DisplayRow is one grade band of the scale table.
type DisplayRow struct {
	Grade      Grade   `json:"grade" toml:"grade"`
	Min        float64 `json:"min" toml:"min"`
	Max        float64 `json:"max" toml:"max"`
	Percentage float64 `json:"percentage" toml:"percentage"`
}

// Rows derives the six grade bands, best first. A band ends one step below
// the next better grade's minimum; the best band ends at max points.
func (s *Scale) Rows() [GradeCount]DisplayRow {
	var rows [GradeCount]DisplayRow
	for i, g := range Grades() {
		lower := s.thresholds[g.index()]
		upper := s.maxPoints
		if better, ok := g.NextBetter(); ok {
			upper = s.thresholds[better.index()] - s.Step()
		}
		rows[i] = DisplayRow{
			Grade:      g,
			Min:        lower,
			Max:        upper,
			Percentage: PercentageForPoints(lower, s.maxPoints),
		}
	}
	return rows
}
