package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/finance-tracker-api/config"
	"github.com/oksasatya/finance-tracker-api/internal/container"
	"github.com/oksasatya/finance-tracker-api/internal/infrastructure/memory"
	"github.com/oksasatya/finance-tracker-api/pkg/helpers"
)

func newEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Env:                 "test",
		StoreDriver:         "memory",
		DebugMetricsEnabled: true,
		RateLimitMax:        100,
		AuthRateLimitMax:    10,
	}
	container.SetConfig(cfg)
	container.SetLogger(helpers.NewDiscardLogger())
	container.SetUserRepo(memory.NewUserRepository())
	container.SetJWT(helpers.NewJWTManager("a", "b", config.AccessTTL, config.RefreshTTL))
	container.SetHasher(helpers.NewPasswordHasher(bcrypt.MinCost))

	r := gin.New()
	reg := NewRegistry(r)
	InitModules(reg)
	reg.RegisterAll()
	return r
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRoutes(t *testing.T) {
	r := newEngine(t)

	notFound := serve(r, http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, notFound.Code)
	assert.JSONEq(t, `{"error":"Endpoint not found"}`, notFound.Body.String())

	health := serve(r, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, health.Code)

	vars := serve(r, http.MethodGet, "/api/debug/vars", "")
	assert.Equal(t, http.StatusOK, vars.Code)
	assert.Contains(t, vars.Body.String(), `"auth"`)

	reg := serve(r, http.MethodPost, "/api/auth/register", `{"email":"a@x.com","password":"GoodPass1","name":"Ann"}`)
	require.Equal(t, http.StatusCreated, reg.Code)

	me := serve(r, http.MethodGet, "/api/auth/me", "")
	assert.Equal(t, http.StatusUnauthorized, me.Code)

	profile := serve(r, http.MethodPut, "/api/users/me", `{"name":"Bob"}`)
	assert.Equal(t, http.StatusUnauthorized, profile.Code)
}
