package roster

import (
	"errors"
	"fmt"
	"math"

	"github.com/mind-engage/gradescale/internal/grading"
)

var (
	ErrMalformed = errors.New("malformed roster")
	ErrDuplicate = errors.New("duplicate student")
)

type Student struct {
	Name   string  `json:"name"`
	Points float64 `json:"points"`
}

// Result is a student's row in the exam result table.
type Result struct {
	Name       string        `json:"name"`
	Points     float64       `json:"points"`
	Percentage float64       `json:"percentage"`
	Grade      grading.Grade `json:"grade"`
}

// Roster is a course's ordered student list keyed by name.
type Roster struct {
	ClassName string
	students  []Student
}

func New(className string) *Roster { return &Roster{ClassName: className} }

func (r *Roster) Len() int { return len(r.students) }

// Students returns a copy in load order.
func (r *Roster) Students() []Student {
	out := make([]Student, len(r.students))
	copy(out, r.students)
	return out
}

func (r *Roster) Student(name string) (Student, bool) {
	if i := r.find(name); i >= 0 {
		return r.students[i], true
	}
	return Student{}, false
}

func (r *Roster) AddStudent(s Student) error {
	if s.Name == "" {
		return fmt.Errorf("%w: empty name", ErrMalformed)
	}
	if math.IsNaN(s.Points) || math.IsInf(s.Points, 0) {
		return fmt.Errorf("%w: %s has points %v", ErrMalformed, s.Name, s.Points)
	}
	if s.Points < 0 {
		return fmt.Errorf("%w: %s has negative points", ErrMalformed, s.Name)
	}
	if r.find(s.Name) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicate, s.Name)
	}
	r.students = append(r.students, s)
	return nil
}

// AdjustStudentPoints adds delta to the named student's points when the
// result stays within [0, maxPoints]. Unknown names and out-of-range
// results leave the roster untouched; the return reports whether it changed.
func (r *Roster) AdjustStudentPoints(name string, delta, maxPoints float64) bool {
	i := r.find(name)
	if i < 0 {
		return false
	}
	next := r.students[i].Points + delta
	if !(next >= 0 && next <= maxPoints) {
		return false
	}
	r.students[i].Points = next
	return true
}

// GradeOf grades s on scale, treating points at or below zero as Fail.
func GradeOf(s Student, scale *grading.Scale) grading.Grade {
	if g, ok := scale.GradeForPoints(s.Points); ok {
		return g
	}
	return grading.Fail
}

// Results grades every student on scale.
func (r *Roster) Results(scale *grading.Scale) []Result {
	out := make([]Result, 0, len(r.students))
	for _, s := range r.students {
		out = append(out, Result{
			Name:       s.Name,
			Points:     s.Points,
			Percentage: grading.PercentageForPoints(s.Points, scale.MaxPoints()),
			Grade:      GradeOf(s, scale),
		})
	}
	return out
}

func (r *Roster) String() string { return r.ClassName }

func (r *Roster) find(name string) int {
	for i := range r.students {
		if r.students[i].Name == name {
			return i
		}
	}
	return -1
}
