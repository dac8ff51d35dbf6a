package http

import (
	"github.com/go-chi/chi/v5"

	"github.com/mind-engage/gradescale/internal/intent"
	"github.com/mind-engage/gradescale/internal/rbac"
	"github.com/mind-engage/gradescale/internal/storage"
)

// Mount registers the session API on r. Callers put authentication in
// front of r; each route here only checks the role's permission.
func Mount(r chi.Router, e Engine, bs storage.BlobStore) {
	r.With(rbac.Require(rbac.PermScaleView)).Get("/scale", GetScaleHandler(e))
	r.With(rbac.Require(rbac.PermScaleView)).Get("/stats", GetStatsHandler(e))
	r.With(rbac.Require(rbac.PermRosterView)).Get("/roster", GetRosterHandler(e))
	r.With(rbac.Require(rbac.PermJournalView)).Get("/journal", GetJournalHandler(e))

	r.Group(func(sr chi.Router) {
		sr.Use(rbac.Require(rbac.PermScaleEdit))
		sr.Put("/scale/max-points", applyJSON[intent.SetMaxPoints](e))
		sr.Put("/scale/kind", applyJSON[intent.ChangeScaleKind](e))
		sr.Post("/scale/half-points/toggle", applyFixed(e, intent.ToggleHalfPoints{}))
		sr.Post("/scale/thresholds/{grade}/increment", ThresholdHandler(e, true))
		sr.Post("/scale/thresholds/{grade}/decrement", ThresholdHandler(e, false))

		sr.Post("/table/next", applyFixed(e, intent.MoveSelection{By: 1}))
		sr.Post("/table/previous", applyFixed(e, intent.MoveSelection{By: -1}))
		sr.Put("/table/column", applyJSON[intent.SelectColumn](e))
		sr.Post("/table/increase", applyFixed(e, intent.IncreaseSelected{}))
		sr.Post("/table/decrease", applyFixed(e, intent.DecreaseSelected{}))
	})

	r.Group(func(rr chi.Router) {
		rr.Use(rbac.Require(rbac.PermRosterEdit))
		rr.Post("/roster/load", applyJSON[intent.LoadRoster](e))
		rr.Post("/roster/save", SaveRosterHandler(e))
		rr.Post("/roster/students/{name}/increment", StudentPointsHandler(e, true))
		rr.Post("/roster/students/{name}/decrement", StudentPointsHandler(e, false))
	})

	r.With(rbac.Require(rbac.PermExportRun)).Post("/export", applyJSON[intent.ExportScale](e))
	r.With(rbac.RequireAny(rbac.PermScaleEdit, rbac.PermRosterEdit, rbac.PermExportRun)).
		Post("/command", CommandHandler(e))
	r.With(rbac.Require(rbac.PermExportRun)).Route("/exports", func(er chi.Router) {
		MountExports(er, bs)
	})
}
