package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/finance-tracker-api/config"
	"github.com/oksasatya/finance-tracker-api/internal/application"
	"github.com/oksasatya/finance-tracker-api/internal/domain/entity"
	"github.com/oksasatya/finance-tracker-api/internal/interface/apierror"
	"github.com/oksasatya/finance-tracker-api/pkg/helpers"
	tpl "github.com/oksasatya/finance-tracker-api/pkg/mailer/templates"
	"github.com/oksasatya/finance-tracker-api/pkg/response"
)

type UserHandler struct {
	Svc     *application.UserService
	Cookies *helpers.CookieManager
	Errors  apierror.Writer
	side    sideEffects
}

func NewUserHandler(svc *application.UserService, audit application.AuditSink, pub Publisher, cfg *config.Config, logger *logrus.Logger) *UserHandler {
	return &UserHandler{
		Svc:     svc,
		Cookies: helpers.NewCookie(cfg.CookieDomain, cfg.CookieSecure),
		Errors:  apierror.NewWriter(logger, cfg.IsProduction()),
		side:    sideEffects{Audit: audit, Pub: pub, Cfg: cfg, Logger: logger},
	}
}

type updateProfileRequest struct {
	Name string `json:"name" binding:"required"`
}

type profileResponse struct {
	Message string            `json:"message"`
	User    entity.PublicUser `json:"user"`
}

// UpdateProfile PUT /api/users/me
func (h *UserHandler) UpdateProfile(c *gin.Context, p application.Principal) {
	var req updateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	u, err := h.Svc.UpdateName(c.Request.Context(), p.UserID, req.Name)
	if err != nil {
		h.Errors.Write(c, err, http.StatusNotFound)
		return
	}
	h.side.audit(c, application.AuditProfileUpdated, u.ID, u.Email, nil)
	response.JSON(c, http.StatusOK, profileResponse{Message: "Profile updated", User: u.Public()})
}

// Deactivate POST /api/users/me/deactivate
func (h *UserHandler) Deactivate(c *gin.Context, p application.Principal) {
	u, err := h.Svc.Deactivate(c.Request.Context(), p.UserID)
	if err != nil {
		h.Errors.Write(c, err, http.StatusNotFound)
		return
	}
	h.Cookies.Clear(c)
	h.side.audit(c, application.AuditUserDeactivated, u.ID, u.Email, nil)
	h.side.notify(c, tpl.AccountDeactivated, u)
	response.Message(c, http.StatusOK, "Account deactivated")
}
