// Package intent holds the requests a UI can make of a grading session.
package intent

import (
	"github.com/mind-engage/gradescale/internal/grading"
)

// Intent is one user request. Name is stable and used for logging and the journal.
type Intent interface {
	Name() string
}

type SetMaxPoints struct {
	Points uint32 `json:"points"`
}

type ChangeScaleKind struct {
	Kind grading.Kind `json:"kind"`
}

type IncrementThreshold struct {
	Grade grading.Grade `json:"grade"`
}

type DecrementThreshold struct {
	Grade grading.Grade `json:"grade"`
}

type ToggleHalfPoints struct{}

// AdjustStudentPoints moves a student's points by Step (usually ±1 or ±0.5).
type AdjustStudentPoints struct {
	Student string  `json:"name"`
	Step    float64 `json:"step"`
}

type LoadRoster struct {
	Path string `json:"path"`
}

type SaveRoster struct {
	Path string `json:"path,omitempty"` // empty: back to the loaded file
}

type ExportScale struct {
	Path string `json:"path"`
}

// MoveSelection moves the scale table cursor by By rows (wrapping).
type MoveSelection struct {
	By int `json:"by"`
}

// SelectColumn routes later Increase/Decrease to "min", "max" or "none".
type SelectColumn struct {
	Column string `json:"column"`
}

// IncreaseSelected and DecreaseSelected act on the table cursor's cell.
type IncreaseSelected struct{}
type DecreaseSelected struct{}

func (SetMaxPoints) Name() string        { return "SetMaxPoints" }
func (ChangeScaleKind) Name() string     { return "ChangeScaleKind" }
func (IncrementThreshold) Name() string  { return "IncrementThreshold" }
func (DecrementThreshold) Name() string  { return "DecrementThreshold" }
func (ToggleHalfPoints) Name() string    { return "ToggleHalfPoints" }
func (AdjustStudentPoints) Name() string { return "AdjustStudentPoints" }
func (LoadRoster) Name() string          { return "LoadRoster" }
func (SaveRoster) Name() string          { return "SaveRoster" }
func (ExportScale) Name() string         { return "ExportScale" }
func (MoveSelection) Name() string       { return "MoveSelection" }
func (SelectColumn) Name() string        { return "SelectColumn" }
func (IncreaseSelected) Name() string    { return "IncreaseSelected" }
func (DecreaseSelected) Name() string    { return "DecreaseSelected" }
