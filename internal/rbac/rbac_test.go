package rbac

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestChecker_DefaultPolicy(t *testing.T) {
	c := NewChecker(nil)
	cases := []struct {
		role, perm string
		want       bool
	}{
		{"viewer", PermScaleView, true},
		{"viewer", PermScaleEdit, false},
		{"viewer", PermExportRun, false},
		{"teacher", PermScaleEdit, true},
		{"teacher", PermRosterEdit, true},
		{"teacher", PermJournalView, true},
		{"admin", "anything:at-all", true},
		{"", PermScaleView, false},
		{"student", PermScaleView, false},
	}
	for _, tc := range cases {
		if got := c.Has(tc.role, tc.perm); got != tc.want {
			t.Fatalf("Has(%q,%q)=%v want %v", tc.role, tc.perm, got, tc.want)
		}
	}
}

func TestRequire(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })
	h := Require(PermScaleEdit)(ok)

	run := func(role string) int {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		if role != "" {
			req = req.WithContext(WithRole(context.Background(), role))
		}
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr.Code
	}
	if got := run("teacher"); got != http.StatusNoContent {
		t.Fatalf("teacher: %d", got)
	}
	if got := run("viewer"); got != http.StatusForbidden {
		t.Fatalf("viewer: %d", got)
	}
	if got := run(""); got != http.StatusForbidden {
		t.Fatalf("anonymous: %d", got)
	}
}
