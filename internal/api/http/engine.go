package http

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"log"
	"net/http"

	authmw "github.com/mind-engage/gradescale/internal/auth/middleware"
	"github.com/mind-engage/gradescale/internal/export"
	"github.com/mind-engage/gradescale/internal/grading"
	"github.com/mind-engage/gradescale/internal/intent"
	"github.com/mind-engage/gradescale/internal/journal"
	"github.com/mind-engage/gradescale/internal/roster"
	"github.com/mind-engage/gradescale/internal/session"
	"github.com/mind-engage/gradescale/internal/storage"
	"github.com/mind-engage/gradescale/internal/table"
)

// Engine is the session surface the handlers need.
type Engine interface {
	Apply(ctx context.Context, in intent.Intent) error
	View() session.View
	Students() (string, []roster.Student, error)
	Journal() journal.Journal
}

var _ Engine = (*session.Session)(nil)

// statusFor maps engine errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, grading.ErrInvalidPoints),
		errors.Is(err, grading.ErrUnknownGrade),
		errors.Is(err, table.ErrUnknownColumn),
		errors.Is(err, roster.ErrMalformed),
		errors.Is(err, export.ErrFormatNotSupported):
		return http.StatusBadRequest
	case errors.Is(err, storage.ErrOutsideBase):
		return http.StatusForbidden
	case errors.Is(err, fs.ErrNotExist):
		return http.StatusNotFound
	case errors.Is(err, session.ErrNoRoster):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// apply runs one intent and answers with the resulting view.
func apply(w http.ResponseWriter, r *http.Request, e Engine, in intent.Intent) {
	sub := authmw.SubjectFromContext(r.Context())
	if err := e.Apply(r.Context(), in); err != nil {
		log.Printf("api: %s by %q rejected: %v", in.Name(), sub, err)
		http.Error(w, in.Name()+": "+err.Error(), statusFor(err))
		return
	}
	log.Printf("api: %s by %q", in.Name(), sub)
	writeJSON(w, e.View())
}

// applyJSON decodes the body into T and applies it.
func applyJSON[T intent.Intent](e Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in T
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		apply(w, r, e, in)
	}
}

// applyFixed applies the same body-less intent on every call.
func applyFixed(e Engine, in intent.Intent) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) { apply(w, r, e, in) }
}
