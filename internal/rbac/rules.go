package rbac

const (
	PermScaleView   = "scale:view"
	PermScaleEdit   = "scale:edit"
	PermRosterView  = "roster:view"
	PermRosterEdit  = "roster:edit"
	PermExportRun   = "export:run"
	PermJournalView = "journal:view"
)

// RolePermissions is the default policy.
var RolePermissions = map[string][]string{
	"viewer": {
		PermScaleView,
		PermRosterView,
	},
	"teacher": {
		"scale:*",
		"roster:*",
		PermExportRun,
		PermJournalView,
	},
	"admin": {
		"*",
	},
}
