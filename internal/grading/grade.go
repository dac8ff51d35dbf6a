package grading

import (
	"errors"
	"fmt"
	"strconv"
)

// Grade is an exam outcome from VeryGood (1) to Fail (6).
// Declaration order is the ordering: a smaller value is a better grade.
type Grade int

const (
	VeryGood     Grade = iota + 1 // 1
	Good                          // 2
	Satisfactory                  // 3
	Sufficient                    // 4
	Poor                          // 5
	Fail                          // 6
)

// GradeCount is the size of the grade domain.
const GradeCount = 6

var (
	ErrUnknownGrade  = errors.New("unknown grade")
	ErrInvalidPoints = errors.New("invalid points")
)

var gradeLabels = [GradeCount]string{
	"Very Good", "Good", "Satisfactory", "Sufficient", "Poor", "Fail",
}

// Grades lists every grade from best to worst.
func Grades() [GradeCount]Grade {
	return [GradeCount]Grade{VeryGood, Good, Satisfactory, Sufficient, Poor, Fail}
}

// GradeFromNumber converts 1..6 into a Grade.
func GradeFromNumber(n int) (Grade, error) {
	if n < int(VeryGood) || n > int(Fail) {
		return 0, fmt.Errorf("%w: %d", ErrUnknownGrade, n)
	}
	return Grade(n), nil
}

// ParseGrade accepts the numeric form ("1".."6").
func ParseGrade(s string) (Grade, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownGrade, s)
	}
	return GradeFromNumber(n)
}

// Valid reports whether g is one of the six grades.
func (g Grade) Valid() bool { return g >= VeryGood && g <= Fail }

// Number is the grade as 1..6; an invalid grade returns its raw value.
func (g Grade) Number() int { return int(g) }

func (g Grade) index() int { return int(g) - 1 }

// Label is the English name, e.g. "Very Good"; "Unknown" outside 1..6.
func (g Grade) Label() string {
	if !g.Valid() {
		return "Unknown"
	}
	return gradeLabels[g.index()]
}

// String is the bare number, as shown in the scale table.
func (g Grade) String() string { return strconv.Itoa(int(g)) }

// NextBetter returns the grade one step better; false for VeryGood.
func (g Grade) NextBetter() (Grade, bool) {
	if !g.Valid() || g == VeryGood {
		return 0, false
	}
	return g - 1, true
}

// NextWorse returns the grade one step worse; false for Fail.
func (g Grade) NextWorse() (Grade, bool) {
	if !g.Valid() || g == Fail {
		return 0, false
	}
	return g + 1, true
}
