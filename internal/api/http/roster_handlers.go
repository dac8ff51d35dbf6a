package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mind-engage/gradescale/internal/intent"
	"github.com/mind-engage/gradescale/internal/roster"
)

type rosterOut struct {
	ClassName string           `json:"class_name"`
	Students  []roster.Student `json:"students"`
}

// GET /roster
func GetRosterHandler(e Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, students, err := e.Students()
		if err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		writeJSON(w, rosterOut{ClassName: name, Students: students})
	}
}

// GET /stats
func GetStatsHandler(e Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, e.View().Summary)
	}
}

// POST /roster/save; an empty body writes back to the loaded file.
func SaveRosterHandler(e Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in intent.SaveRoster
		if err := decode(r, &in); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		apply(w, r, e, in)
	}
}

// POST /roster/students/{name}/increment and .../decrement. The step
// follows the scale's half-point mode.
func StudentPointsHandler(e Engine, up bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimSpace(chi.URLParam(r, "name"))
		if name == "" {
			http.Error(w, "name required", http.StatusBadRequest)
			return
		}
		step := 1.0
		if e.View().HalfPoints {
			step = 0.5
		}
		if !up {
			step = -step
		}
		apply(w, r, e, intent.AdjustStudentPoints{Student: name, Step: step})
	}
}

// decode tolerates an empty body.
func decode(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
