package application

import (
	"context"
	"time"
)

// Audit actions
const (
	AuditRegister        = "register"
	AuditLoginSuccess    = "login_success"
	AuditLoginFailure    = "login_failure"
	AuditRefresh         = "refresh"
	AuditRefreshRejected = "refresh_rejected"
	AuditLogout          = "logout"
	AuditLogoutAll       = "logout_all"
	AuditProfileUpdated  = "profile_updated"
	AuditUserDeactivated = "account_deactivated"
)

// AuditEvent is one entry of the authentication trail.
type AuditEvent struct {
	Action    string         `json:"action"`
	UserID    string         `json:"user_id,omitempty"`
	Email     string         `json:"email,omitempty"`
	IP        string         `json:"ip,omitempty"`
	UserAgent string         `json:"user_agent,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	At        time.Time      `json:"at"`
}

// AuditSink stores audit events. Implementations must not block the
// request for long; failures are logged by the caller and otherwise ignored.
type AuditSink interface {
	Record(ctx context.Context, ev AuditEvent) error
}

// NopAuditSink drops every event.
type NopAuditSink struct{}

func (NopAuditSink) Record(context.Context, AuditEvent) error { return nil }
