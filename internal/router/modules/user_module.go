package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/finance-tracker-api/internal/interface/http"
	"github.com/oksasatya/finance-tracker-api/internal/interface/middleware"
)

type UserModule struct {
	Handler *handlers.UserHandler
	Gate    *middleware.Gate
}

func NewUserModule(h *handlers.UserHandler, gate *middleware.Gate) *UserModule {
	return &UserModule{Handler: h, Gate: gate}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rg.PUT("/users/me", m.Gate.Require(m.Handler.UpdateProfile))
	rg.POST("/users/me/deactivate", m.Gate.Require(m.Handler.Deactivate))
}
