// Package session owns one grading scale, its optional roster and the
// table cursor, and applies intents to them one at a time.
package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/mind-engage/gradescale/internal/export"
	"github.com/mind-engage/gradescale/internal/grading"
	"github.com/mind-engage/gradescale/internal/intent"
	"github.com/mind-engage/gradescale/internal/journal"
	"github.com/mind-engage/gradescale/internal/roster"
	"github.com/mind-engage/gradescale/internal/storage"
	"github.com/mind-engage/gradescale/internal/table"
)

var (
	ErrNoRoster      = errors.New("no roster loaded")
	ErrUnknownIntent = errors.New("unknown intent")
)

type Options struct {
	Definition grading.Definition
	MaxPoints  float64
	Store      storage.BlobStore
	Journal    journal.Journal // nil: journal.Nop
}

// Session serialises access to its model with a mutex; the model itself
// is plain single-owner state.
type Session struct {
	mu sync.Mutex

	id         string
	scale      *grading.Scale
	roster     *roster.Roster
	rosterPath string
	table      table.Controller
	store      storage.BlobStore
	journal    journal.Journal
	status     string
}

func New(opts Options) (*Session, error) {
	scale, err := grading.NewScale(opts.Definition, opts.MaxPoints)
	if err != nil {
		return nil, err
	}
	if opts.Store == nil {
		return nil, errors.New("session: store is required")
	}
	j := opts.Journal
	if j == nil {
		j = journal.Nop{}
	}
	return &Session{
		id:      uuid.NewString(),
		scale:   scale,
		store:   opts.Store,
		journal: j,
	}, nil
}

func (s *Session) ID() string { return s.id }

// Apply runs in against the model. On error the model is unchanged and the
// error doubles as the status message.
func (s *Session) Apply(ctx context.Context, in intent.Intent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = ""
	if err := s.apply(in); err != nil {
		s.status = err.Error()
		log.Printf("session %s: %s failed: %v", s.id, in.Name(), err)
		return err
	}
	if err := journal.Record(ctx, s.journal, s.id, in); err != nil {
		log.Printf("session %s: journal %s: %v", s.id, in.Name(), err)
	}
	return nil
}

func (s *Session) apply(in intent.Intent) error {
	switch v := in.(type) {
	case intent.SetMaxPoints:
		if err := s.scale.SetMaxPoints(float64(v.Points)); err != nil {
			return err
		}
		s.status = fmt.Sprintf("max points set to %d", v.Points)

	case intent.ChangeScaleKind:
		def := grading.Standard(v.Kind)
		if v.Kind == grading.KindCustom {
			def = s.scale.Definition().ToCustom()
		}
		s.scale.ChangeDefinition(def)
		s.status = "scale " + v.Kind.Text()

	case intent.IncrementThreshold:
		return s.scale.IncrementThreshold(v.Grade)

	case intent.DecrementThreshold:
		return s.scale.DecrementThreshold(v.Grade)

	case intent.ToggleHalfPoints:
		s.scale.ToggleHalfPoints()

	case intent.AdjustStudentPoints:
		if s.roster == nil {
			s.status = ErrNoRoster.Error()
			return nil
		}
		if !s.roster.AdjustStudentPoints(v.Student, v.Step, s.scale.MaxPoints()) {
			s.status = fmt.Sprintf("points for %q unchanged", v.Student)
		}

	case intent.LoadRoster:
		path, err := s.store.Resolve(v.Path)
		if err != nil {
			return &roster.LoadError{Source: v.Path, Err: err}
		}
		r, err := roster.Load(path)
		if err != nil {
			return err
		}
		s.roster, s.rosterPath = r, path
		s.status = fmt.Sprintf("loaded %d students of %s", r.Len(), r.ClassName)

	case intent.SaveRoster:
		if s.roster == nil {
			return ErrNoRoster
		}
		path := s.rosterPath
		if v.Path != "" {
			p, err := s.store.Resolve(v.Path)
			if err != nil {
				return &roster.SaveError{Destination: v.Path, Err: err}
			}
			path = p
		}
		if err := s.roster.Save(path); err != nil {
			return err
		}
		s.status = "saved roster to " + path

	case intent.ExportScale:
		p, err := export.ToStore(s.store, v.Path, export.SheetFor(s.scale))
		if err != nil {
			return err
		}
		s.status = "exported scale to " + p

	case intent.MoveSelection:
		for i := 0; i < v.By; i++ {
			s.table.SelectNext()
		}
		for i := 0; i > v.By; i-- {
			s.table.SelectPrevious()
		}

	case intent.SelectColumn:
		col, err := table.ParseColumn(v.Column)
		if err != nil {
			return err
		}
		s.table.SelectColumn(col)

	case intent.IncreaseSelected:
		return s.apply(s.table.Increase(s.scale.MaxPoints()))

	case intent.DecreaseSelected:
		return s.apply(s.table.Decrease(s.scale.MaxPoints()))

	default:
		return fmt.Errorf("%w: %T", ErrUnknownIntent, in)
	}
	return nil
}
