package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

var header = []string{"name", "points"}

// LoadError reports why a roster could not be read.
type LoadError struct {
	Source string
	Line   int // 0 when the failure is not tied to a row
	Err    error
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("load roster %s line %d: %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("load roster %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SaveError reports why a roster could not be written.
type SaveError struct {
	Destination string
	Err         error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("save roster %s: %v", e.Destination, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }

// Load reads a name,points CSV file. The class name is the file stem.
func Load(path string) (*Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	defer f.Close()
	return LoadFrom(ClassNameFromPath(path), f)
}

// ClassNameFromPath returns the base name without extension.
func ClassNameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// LoadFrom parses CSV rows from rd into a roster named className. Any row
// that does not parse fails the whole load.
func LoadFrom(className string, rd io.Reader) (*Roster, error) {
	cr := csv.NewReader(rd)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	fail := func(line int, err error) (*Roster, error) {
		return nil, &LoadError{Source: className, Line: line, Err: err}
	}

	head, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return fail(0, fmt.Errorf("%w: missing header", ErrMalformed))
	}
	if err != nil {
		return fail(1, fmt.Errorf("%w: %v", ErrMalformed, err))
	}
	nameCol, pointsCol := -1, -1
	for i, h := range head {
		switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))) {
		case "name":
			nameCol = i
		case "points":
			pointsCol = i
		}
	}
	if nameCol < 0 || pointsCol < 0 {
		return fail(1, fmt.Errorf("%w: header must contain name and points", ErrMalformed))
	}

	r := New(className)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			line := 0
			if errors.As(err, &pe) {
				line = pe.Line
			}
			return fail(line, fmt.Errorf("%w: %v", ErrMalformed, err))
		}
		line, _ := cr.FieldPos(0)
		if len(rec) != len(head) {
			return fail(line, fmt.Errorf("%w: expected %d fields, got %d", ErrMalformed, len(head), len(rec)))
		}
		pts, err := strconv.ParseFloat(strings.TrimSpace(rec[pointsCol]), 64)
		if err != nil {
			return fail(line, fmt.Errorf("%w: points %q", ErrMalformed, rec[pointsCol]))
		}
		if err := r.AddStudent(Student{Name: strings.TrimSpace(rec[nameCol]), Points: pts}); err != nil {
			if errors.Is(err, ErrDuplicate) {
				err = fmt.Errorf("%w: %v", ErrMalformed, err)
			}
			return fail(line, err)
		}
	}
	return r, nil
}

// Save writes the roster to path in the same shape Load reads.
func (r *Roster) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &SaveError{Destination: path, Err: err}
	}
	if err := r.Write(f); err != nil {
		f.Close()
		return &SaveError{Destination: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &SaveError{Destination: path, Err: err}
	}
	return nil
}

// Write serialises the roster as CSV with a name,points header.
func (r *Roster) Write(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, s := range r.students {
		if err := cw.Write([]string{s.Name, strconv.FormatFloat(s.Points, 'f', -1, 64)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
