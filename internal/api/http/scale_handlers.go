package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mind-engage/gradescale/internal/grading"
	"github.com/mind-engage/gradescale/internal/intent"
)

// GET /scale
func GetScaleHandler(e Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, e.View())
	}
}

// POST /scale/thresholds/{grade}/increment and .../decrement
func ThresholdHandler(e Engine, up bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g, err := grading.ParseGrade(strings.TrimSpace(chi.URLParam(r, "grade")))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		var in intent.Intent = intent.DecrementThreshold{Grade: g}
		if up {
			in = intent.IncrementThreshold{Grade: g}
		}
		apply(w, r, e, in)
	}
}

// POST /command  {"command": ":p 120"}
func CommandHandler(e Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Command string `json:"command"`
		}
		if err := decode(r, &req); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		in, err := intent.ParseCommand(req.Command)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		apply(w, r, e, in)
	}
}
