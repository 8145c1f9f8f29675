package modules

import (
	"net/http"

	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/finance-tracker-api/internal/interface/http"
	"github.com/oksasatya/finance-tracker-api/internal/interface/middleware"
)

type AuthModule struct {
	Handler *handlers.AuthHandler
	Gate    *middleware.Gate
	// Limiter is the stricter per-IP limiter for credential endpoints
	Limiter gin.HandlerFunc
}

func NewAuthModule(h *handlers.AuthHandler, gate *middleware.Gate, limiter gin.HandlerFunc) *AuthModule {
	return &AuthModule{Handler: h, Gate: gate, Limiter: limiter}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	if m.Limiter != nil {
		auth.Use(m.Limiter)
	}
	auth.POST("/register", m.Handler.Register)
	auth.POST("/login", m.Handler.Login)
	auth.POST("/refresh", m.Handler.Refresh)
	auth.POST("/logout", m.Handler.Logout)
	auth.POST("/logout-all", m.Handler.LogoutAll)
	auth.GET("/me", m.Gate.Require(m.Handler.Me, middleware.WithNotFoundStatus(http.StatusNotFound)))
}
