package grading

import (
	"fmt"
	"log"
	"math"
)

// Scale converts a Definition into absolute point thresholds for an exam
// with MaxPoints reachable points. It is owned by a single session and is
// not safe for concurrent use.
type Scale struct {
	def        Definition
	maxPoints  float64
	halfPoints bool
	thresholds [GradeCount]float64 // minimum points, indexed by grade-1
}

// NewScale builds a scale from def; maxPoints must be positive.
func NewScale(def Definition, maxPoints float64) (*Scale, error) {
	if !(maxPoints > 0) {
		return nil, fmt.Errorf("%w: max points %v", ErrInvalidPoints, maxPoints)
	}
	s := &Scale{def: def, maxPoints: maxPoints}
	s.Recompute()
	return s, nil
}

func (s *Scale) Definition() Definition { return s.def }
func (s *Scale) Kind() Kind             { return s.def.Kind() }
func (s *Scale) MaxPoints() float64     { return s.maxPoints }
func (s *Scale) HalfPoints() bool       { return s.halfPoints }

// Step is the threshold increment: 0.5 in half-point mode, otherwise 1.
func (s *Scale) Step() float64 {
	if s.halfPoints {
		return 0.5
	}
	return 1
}

// Threshold returns the minimum points for g.
func (s *Scale) Threshold(g Grade) (float64, error) {
	if !g.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownGrade, int(g))
	}
	return s.thresholds[g.index()], nil
}

// Thresholds returns a copy of all minimums keyed by grade.
func (s *Scale) Thresholds() map[Grade]float64 {
	out := make(map[Grade]float64, GradeCount)
	for _, g := range Grades() {
		out[g] = s.thresholds[g.index()]
	}
	return out
}

// Recompute derives every threshold from the definition and max points.
// Presets round to whole points; a custom table rounds to the active step
// so half-point edits survive.
func (s *Scale) Recompute() {
	for _, b := range s.def.Values() {
		if !b.Grade.Valid() {
			panic(fmt.Sprintf("grading: boundary table holds grade %d", int(b.Grade)))
		}
		v := b.Percentage * s.maxPoints
		if s.def.IsCustom() {
			v = s.round(v)
		} else {
			v = math.Round(v)
		}
		s.thresholds[b.Grade.index()] = v
	}
}

// SetMaxPoints changes the exam total and recomputes thresholds.
func (s *Scale) SetMaxPoints(points float64) error {
	if !(points > 0) {
		return fmt.Errorf("%w: max points %v", ErrInvalidPoints, points)
	}
	s.maxPoints = points
	s.Recompute()
	return nil
}

// ToggleHalfPoints switches the step. Minimum thresholds stay where they
// are; only the displayed band maxima move.
func (s *Scale) ToggleHalfPoints() {
	s.halfPoints = !s.halfPoints
}

// ChangeDefinition switches to def and recomputes thresholds.
func (s *Scale) ChangeDefinition(def Definition) {
	s.def = def
	s.Recompute()
}

func (s *Scale) IncrementThreshold(g Grade) error {
	cur, err := s.Threshold(g)
	if err != nil {
		return err
	}
	return s.UpdateThreshold(g, cur+s.Step())
}

func (s *Scale) DecrementThreshold(g Grade) error {
	cur, err := s.Threshold(g)
	if err != nil {
		return err
	}
	return s.UpdateThreshold(g, cur-s.Step())
}

// UpdateThreshold sets the minimum points for g. A standard definition is
// first promoted to a custom copy, so presets never change. The value is
// rounded to the active step and kept between the neighbouring thresholds;
// the custom percentage for g follows the new value.
func (s *Scale) UpdateThreshold(g Grade, points float64) error {
	if !g.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownGrade, int(g))
	}
	if math.IsNaN(points) || math.IsInf(points, 0) {
		return fmt.Errorf("%w: threshold %v", ErrInvalidPoints, points)
	}
	if !s.def.IsCustom() {
		log.Printf("grading: promoting %s scale to custom", s.def.Kind().Text())
		s.def = s.def.ToCustom()
	}

	lo, hi := 0.0, s.maxPoints
	if worse, ok := g.NextWorse(); ok {
		lo = s.thresholds[worse.index()]
	}
	if better, ok := g.NextBetter(); ok {
		hi = s.thresholds[better.index()]
	}
	if g == Fail {
		hi = lo
	}
	v := clamp(s.round(points), lo, hi)

	s.thresholds[g.index()] = v
	s.def.Change(g.index(), v/s.maxPoints)
	return nil
}

func (s *Scale) round(v float64) float64 {
	if s.halfPoints {
		return math.Round(v*2) / 2
	}
	return math.Round(v)
}

// GradeForPoints returns the best grade whose minimum is strictly below
// points. Points equal to a threshold fall to the next worse grade. A full
// score always earns the best grade, even on tiny scales where the best
// minimum rounds up to max points.
func (s *Scale) GradeForPoints(points float64) (Grade, bool) {
	if points >= s.maxPoints {
		return VeryGood, true
	}
	for _, g := range Grades() {
		if s.thresholds[g.index()] < points {
			return g, true
		}
	}
	return 0, false
}

// PercentageForPoints returns points/total rounded to two decimals.
func PercentageForPoints(points, total float64) float64 {
	return RoundTo(points/total, 2)
}

// RoundTo rounds v to dp decimal places.
func RoundTo(v float64, dp int) float64 {
	x := math.Pow(10, float64(dp))
	return math.Round(v*x) / x
}
