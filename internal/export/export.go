// Package export writes the grading scale table to csv, toml or xlsx.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/mind-engage/gradescale/internal/grading"
	"github.com/mind-engage/gradescale/internal/storage"
)

var ErrFormatNotSupported = errors.New("format not supported")

// Error wraps a failed export with its destination.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string { return fmt.Sprintf("export %s: %v", e.Path, e.Err) }
func (e *Error) Unwrap() error { return e.Err }

// Sheet is everything an exporter writes.
type Sheet struct {
	Scale      string                                 `toml:"scale"`
	MaxPoints  float64                                `toml:"max_points"`
	HalfPoints bool                                   `toml:"half_points"`
	Rows       [grading.GradeCount]grading.DisplayRow `toml:"grade"`
}

// SheetFor snapshots scale.
func SheetFor(s *grading.Scale) Sheet {
	return Sheet{
		Scale:      s.Kind().Text(),
		MaxPoints:  s.MaxPoints(),
		HalfPoints: s.HalfPoints(),
		Rows:       s.Rows(),
	}
}

type Exporter interface {
	Export(w io.Writer, sh Sheet) error
}

var byExt = map[string]Exporter{
	".csv":  CSV{},
	".toml": TOML{},
	".xlsx": XLSX{},
}

// ForPath picks an exporter from the destination's extension.
func ForPath(path string) (Exporter, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if e, ok := byExt[ext]; ok {
		return e, nil
	}
	if ext == "" {
		ext = "(none)"
	}
	return nil, fmt.Errorf("%w: %s", ErrFormatNotSupported, ext)
}

// ToStore renders sh for key and stores it; it returns the written path.
func ToStore(bs storage.BlobStore, key string, sh Sheet) (string, error) {
	e, err := ForPath(key)
	if err != nil {
		return "", &Error{Path: key, Err: err}
	}
	var buf bytes.Buffer
	if err := e.Export(&buf, sh); err != nil {
		return "", &Error{Path: key, Err: err}
	}
	p, err := bs.Put(key, &buf)
	if err != nil {
		return "", &Error{Path: key, Err: err}
	}
	return p, nil
}
