package handlers

import (
	"errors"
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

type AuthHandler struct {
	Svc     *application.AuthService
	Cookies *helpers.CookieManager
	Errors  apierror.Writer
	side    sideEffects
}

func NewAuthHandler(svc *application.AuthService, audit application.AuditSink, pub Publisher, cfg *config.Config, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		Svc:     svc,
		Cookies: helpers.NewCookie(cfg.CookieDomain, cfg.CookieSecure),
		Errors:  apierror.NewWriter(logger, cfg.IsProduction()),
		side:    sideEffects{Audit: audit, Pub: pub, Cfg: cfg, Logger: logger},
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Message     string            `json:"message"`
	User        entity.PublicUser `json:"user"`
	AccessToken string            `json:"accessToken"`
}

type accessTokenResponse struct {
	AccessToken string `json:"accessToken"`
}

type userResponse struct {
	User entity.PublicUser `json:"user"`
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if !bindJSON(c, &req) {
		return
	}

	sess, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		h.Errors.Write(c, err, 0)
		return
	}

	h.Cookies.SetRefresh(c, sess.Tokens.RefreshToken, sess.Tokens.RefreshTokenExpiry)
	h.side.audit(c, application.AuditRegister, sess.User.ID, sess.User.Email, nil)
	h.side.notify(c, tpl.Welcome, sess.User)
	response.JSON(c, http.StatusCreated, sessionResponse{
		Message:     "Registration successful",
		User:        sess.User.Public(),
		AccessToken: sess.Tokens.AccessToken,
	})
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}

	sess, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		var appErr *application.Error
		if errors.As(err, &appErr) && appErr.Kind == application.KindAuthentication {
			h.side.audit(c, application.AuditLoginFailure, "", application.NormalizeEmail(req.Email),
				map[string]any{"reason": appErr.Message})
		}
		h.Errors.Write(c, err, 0)
		return
	}

	h.Cookies.SetRefresh(c, sess.Tokens.RefreshToken, sess.Tokens.RefreshTokenExpiry)
	h.side.audit(c, application.AuditLoginSuccess, sess.User.ID, sess.User.Email, nil)
	h.side.notify(c, tpl.LoginNotification, sess.User)
	response.JSON(c, http.StatusOK, sessionResponse{
		Message:     "Login successful",
		User:        sess.User.Public(),
		AccessToken: sess.Tokens.AccessToken,
	})
}

// Refresh POST /api/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	sess, err := h.Svc.Refresh(c.Request.Context(), h.Cookies.Refresh(c))
	if err != nil {
		var appErr *application.Error
		if errors.As(err, &appErr) && appErr != application.ErrRefreshTokenRequired {
			h.side.audit(c, application.AuditRefreshRejected, "", "", map[string]any{"reason": appErr.Message})
		}
		h.Errors.Write(c, err, http.StatusUnauthorized)
		return
	}

	h.Cookies.SetRefresh(c, sess.Tokens.RefreshToken, sess.Tokens.RefreshTokenExpiry)
	h.side.audit(c, application.AuditRefresh, sess.User.ID, sess.User.Email, nil)
	response.JSON(c, http.StatusOK, accessTokenResponse{AccessToken: sess.Tokens.AccessToken})
}

// Logout POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	uid := h.Svc.Logout(c.Request.Context(), h.Cookies.Refresh(c))
	h.Cookies.Clear(c)
	if uid != "" {
		h.side.audit(c, application.AuditLogout, uid, "", nil)
	}
	response.Message(c, http.StatusOK, "Logout successful")
}

// LogoutAll POST /api/auth/logout-all
func (h *AuthHandler) LogoutAll(c *gin.Context) {
	u, err := h.Svc.LogoutAll(c.Request.Context(), h.Cookies.Refresh(c))
	if err != nil {
		var appErr *application.Error
		if errors.As(err, &appErr) {
			h.Cookies.Clear(c)
		}
		h.Errors.Write(c, err, http.StatusUnauthorized)
		return
	}

	h.Cookies.Clear(c)
	h.side.audit(c, application.AuditLogoutAll, u.ID, u.Email, nil)
	h.side.notify(c, tpl.LogoutAll, u)
	response.Message(c, http.StatusOK, "Logged out from all devices")
}

// Me GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context, p application.Principal) {
	response.JSON(c, http.StatusOK, userResponse{User: p.User.Public()})
}
