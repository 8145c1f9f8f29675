package mailer

import (
	"errors"
	"fmt"
	"strings"
)

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Either Template (+Data) or Subject with Text/HTML must be set.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"` // welcome, login_notification, logout_all, account_deactivated
	Data     map[string]any `json:"data,omitempty"`
}

var ErrEmptyJob = errors.New("email job has neither template nor body")

// Normalize fills recipient fields templates rely on and validates the job.
func (j *EmailJob) Normalize() error {
	if strings.TrimSpace(j.To) == "" {
		return errors.New("email job has no recipient")
	}
	if j.Template == "" && (j.Subject == "" || (j.Text == "" && j.HTML == "")) {
		return ErrEmptyJob
	}
	if j.Data == nil {
		j.Data = map[string]any{}
	}
	if v, ok := j.Data["Email"]; !ok || fmt.Sprintf("%v", v) == "" {
		j.Data["Email"] = j.To
	}
	return nil
}
