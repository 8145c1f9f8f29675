package application

import "expvar"

// authStats is published at /api/debug/vars under "auth".
var authStats = expvar.NewMap("auth")

const (
	statRegistrations     = "registrations"
	statLogins            = "logins"
	statLoginFailures     = "login_failures"
	statRefreshes         = "refreshes"
	statRefreshRejections = "refresh_rejections"
	statLogouts           = "logouts"
	statLogoutAlls        = "logout_alls"
	statSaveConflicts     = "save_conflicts"
)

func count(name string) { authStats.Add(name, 1) }
