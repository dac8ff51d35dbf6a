package http

import (
	"net/http"
	"strconv"

	"github.com/mind-engage/gradescale/internal/journal"
)

// GET /journal?limit=50
func GetJournalHandler(e Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 50
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				http.Error(w, "bad limit", http.StatusBadRequest)
				return
			}
			limit = n
		}
		events, err := e.Journal().Recent(r.Context(), limit)
		if err != nil {
			http.Error(w, "journal: "+err.Error(), http.StatusInternalServerError)
			return
		}
		if events == nil {
			events = []journal.Event{}
		}
		writeJSON(w, events)
	}
}
