package auth

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"
)

// GuestHandler hands out read-only viewer tokens, e.g. for a projector
// showing the scale during a grading session.
func GuestHandler(a *AuthService, enabled bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !enabled {
			http.Error(w, "guest view disabled", http.StatusForbidden)
			return
		}
		sfx := strconv.FormatInt(time.Now().UnixNano(), 36)
		tok, err := a.IssueJWT("guest|"+sfx, RoleViewer)
		if err != nil {
			http.Error(w, "issue token", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(tokenOut{AccessToken: tok, Role: RoleViewer})
	}
}
