// Package table tracks the row/column cursor over the six-row scale table
// and turns increase/decrease requests into intents.
package table

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/mind-engage/gradescale/internal/grading"
	"github.com/mind-engage/gradescale/internal/intent"
)

var ErrUnknownColumn = errors.New("unknown column")

type Column int

const (
	ColumnNone Column = iota
	ColumnMin
	ColumnMax
)

func (c Column) String() string {
	switch c {
	case ColumnMin:
		return "min"
	case ColumnMax:
		return "max"
	}
	return "none"
}

func ParseColumn(s string) (Column, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return ColumnNone, nil
	case "min":
		return ColumnMin, nil
	case "max":
		return ColumnMax, nil
	}
	return ColumnNone, fmt.Errorf("%w %q", ErrUnknownColumn, s)
}

func (c Column) MarshalJSON() ([]byte, error) { return json.Marshal(c.String()) }

func (c *Column) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := ParseColumn(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Controller is the selection state of the scale table.
// The zero value selects the first row with no column.
type Controller struct {
	row    int
	column Column
}

func (c *Controller) Row() int       { return c.row }
func (c *Controller) Column() Column { return c.column }

func (c *Controller) SelectNext()     { c.row = (c.row + 1) % grading.GradeCount }
func (c *Controller) SelectPrevious() { c.row = (c.row + grading.GradeCount - 1) % grading.GradeCount }

// Select moves the cursor to row; out-of-range rows are ignored.
func (c *Controller) Select(row int) {
	if row >= 0 && row < grading.GradeCount {
		c.row = row
	}
}

func (c *Controller) SelectColumn(col Column) { c.column = col }

// SelectedGrade is the grade shown on the selected row.
func (c *Controller) SelectedGrade() grading.Grade {
	return grading.Grades()[c.row]
}

// Increase returns the intent for "+" on the current cell.
func (c *Controller) Increase(maxPoints float64) intent.Intent { return c.adjust(maxPoints, +1) }

// Decrease returns the intent for "-" on the current cell.
func (c *Controller) Decrease(maxPoints float64) intent.Intent { return c.adjust(maxPoints, -1) }

// A band's min is its own threshold; its max is derived from the next better
// grade's threshold, so editing the max column targets that grade. The best
// band's max is the exam total.
func (c *Controller) adjust(maxPoints float64, dir int) intent.Intent {
	g := c.SelectedGrade()
	if c.column == ColumnMax {
		better, ok := g.NextBetter()
		if !ok {
			next := math.Round(maxPoints + float64(dir))
			next = math.Max(1, math.Min(next, math.MaxUint32))
			return intent.SetMaxPoints{Points: uint32(next)}
		}
		g = better
	}
	if dir > 0 {
		return intent.IncrementThreshold{Grade: g}
	}
	return intent.DecrementThreshold{Grade: g}
}
