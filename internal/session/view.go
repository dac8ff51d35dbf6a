package session

import (
	"github.com/mind-engage/gradescale/internal/grading"
	"github.com/mind-engage/gradescale/internal/journal"
	"github.com/mind-engage/gradescale/internal/roster"
	"github.com/mind-engage/gradescale/internal/stats"
	"github.com/mind-engage/gradescale/internal/table"
)

// View is a read-only snapshot for rendering.
type View struct {
	SessionID  string                                 `json:"session_id"`
	Kind       grading.Kind                           `json:"kind"`
	MaxPoints  float64                                `json:"max_points"`
	HalfPoints bool                                   `json:"half_points"`
	Rows       [grading.GradeCount]grading.DisplayRow `json:"rows"`
	Selected   grading.Grade                          `json:"selected"`
	Column     table.Column                           `json:"column"`
	ClassName  string                                 `json:"class_name,omitempty"`
	Results    []roster.Result                        `json:"results,omitempty"`
	Summary    stats.Summary                          `json:"summary"`
	Status     string                                 `json:"status,omitempty"`
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		SessionID:  s.id,
		Kind:       s.scale.Kind(),
		MaxPoints:  s.scale.MaxPoints(),
		HalfPoints: s.scale.HalfPoints(),
		Rows:       s.scale.Rows(),
		Selected:   s.table.SelectedGrade(),
		Column:     s.table.Column(),
		Summary:    stats.Summarize(s.roster, s.scale),
		Status:     s.status,
	}
	if s.roster != nil {
		v.ClassName = s.roster.ClassName
		v.Results = s.roster.Results(s.scale)
	}
	return v
}

// Students returns the loaded roster's students, or ErrNoRoster.
func (s *Session) Students() (string, []roster.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.roster == nil {
		return "", nil, ErrNoRoster
	}
	return s.roster.ClassName, s.roster.Students(), nil
}

func (s *Session) Journal() journal.Journal { return s.journal }
