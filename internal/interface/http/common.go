package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/finance-tracker-api/config"
	"github.com/oksasatya/finance-tracker-api/internal/application"
	"github.com/oksasatya/finance-tracker-api/internal/domain/entity"
	"github.com/oksasatya/finance-tracker-api/internal/interface/middleware"
	"github.com/oksasatya/finance-tracker-api/pkg/helpers"
	"github.com/oksasatya/finance-tracker-api/pkg/mailer"
	tpl "github.com/oksasatya/finance-tracker-api/pkg/mailer/templates"
	"github.com/oksasatya/finance-tracker-api/pkg/response"
	"github.com/oksasatya/finance-tracker-api/pkg/validation"
)

// Publisher puts notification jobs on the email queue.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// sideEffects records audit events and queues notification emails. Neither
// ever fails the request.
type sideEffects struct {
	Audit  application.AuditSink
	Pub    Publisher
	Cfg    *config.Config
	Logger *logrus.Logger
}

func clientIP(c *gin.Context) string {
	return middleware.ClientIP(c)
}

func (s sideEffects) audit(c *gin.Context, action, userID, email string, metadata map[string]any) {
	if s.Audit == nil {
		return
	}
	ev := application.AuditEvent{
		Action:    action,
		UserID:    userID,
		Email:     email,
		IP:        clientIP(c),
		UserAgent: c.GetHeader("User-Agent"),
		Metadata:  metadata,
		At:        time.Now().UTC(),
	}
	if err := s.Audit.Record(c.Request.Context(), ev); err != nil {
		fields := helpers.RequestFields(c)
		fields["action"] = action
		helpers.LogError(s.Logger, "audit record failed", err, fields)
	}
}

// notify queues template for u when email sending is enabled.
func (s sideEffects) notify(c *gin.Context, template string, u *entity.User) {
	if s.Pub == nil || s.Cfg == nil || !s.Cfg.MailSendEnabled || u == nil {
		return
	}
	data := tpl.NewData(s.Cfg, template, u.Name, u.Email,
		tpl.WithIP(clientIP(c)),
		tpl.WithUserAgent(c.GetHeader("User-Agent")),
		tpl.WithTime(time.Now()),
	)
	job := mailer.EmailJob{To: u.Email, Template: template, Data: data}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := s.Pub.PublishJSON(ctx, job); err != nil {
		fields := helpers.RequestFields(c)
		fields["template"] = template
		fields["user_id"] = u.ID
		helpers.LogError(s.Logger, "enqueue email failed", err, fields)
	}
}

// bindJSON decodes the body into dst. An empty body leaves dst zeroed and is
// still validated, so it fails the same way as "{}". Malformed JSON is a 400.
func bindJSON(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if errors.Is(err, io.EOF) {
		err = binding.Validator.ValidateStruct(dst)
	}
	if err != nil {
		response.Error(c, http.StatusBadRequest, validation.Message(err))
		return false
	}
	return true
}
