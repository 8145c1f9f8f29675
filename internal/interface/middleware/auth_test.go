package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/oksasatya/finance-tracker-api/internal/application"
	"github.com/oksasatya/finance-tracker-api/internal/domain/entity"
	"github.com/oksasatya/finance-tracker-api/internal/interface/apierror"
	"github.com/oksasatya/finance-tracker-api/pkg/helpers"
)

type stubAuth map[string]error

func (s stubAuth) Authenticate(_ context.Context, token string) (application.Principal, error) {
	if token == "" {
		return application.Principal{}, application.ErrAccessTokenRequired
	}
	if err, ok := s[token]; ok {
		return application.Principal{}, err
	}
	return application.Principal{UserID: "u-" + token, User: &entity.User{ID: "u-" + token}}, nil
}

func newGateEngine(auth Authenticator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	g := NewGate(auth, apierror.NewWriter(helpers.NewDiscardLogger(), true))

	r := gin.New()
	r.GET("/required", g.Require(func(c *gin.Context, p application.Principal) {
		c.String(http.StatusOK, p.UserID)
	}))
	r.GET("/me", g.Require(func(c *gin.Context, p application.Principal) {
		c.String(http.StatusOK, p.UserID)
	}, WithNotFoundStatus(http.StatusNotFound)))
	r.GET("/optional", g.Optional(func(c *gin.Context, p *application.Principal) {
		if p == nil {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, p.UserID)
	}))
	return r
}

func get(r http.Handler, path, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestGate_Require(t *testing.T) {
	r := newGateEngine(stubAuth{
		"expired": application.ErrTokenExpired,
		"bad":     application.ErrInvalidToken,
		"gone":    application.ErrUserNotFound,
		"off":     application.ErrAccountDeactivated,
	})

	tests := []struct {
		name   string
		path   string
		header string
		status int
		body   string
	}{
		{"ok", "/required", "Bearer abc", http.StatusOK, "u-abc"},
		{"missing", "/required", "", http.StatusUnauthorized, `{"error":"Access token required"}`},
		{"wrong scheme", "/required", "Basic abc", http.StatusUnauthorized, `{"error":"Access token required"}`},
		{"invalid", "/required", "Bearer bad", http.StatusUnauthorized, `{"error":"Invalid token"}`},
		{"expired", "/required", "Bearer expired", http.StatusUnauthorized, `{"error":"Token expired","code":"TOKEN_EXPIRED"}`},
		{"user gone", "/required", "Bearer gone", http.StatusUnauthorized, `{"error":"User not found"}`},
		{"user gone on me", "/me", "Bearer gone", http.StatusNotFound, `{"error":"User not found"}`},
		{"deactivated", "/required", "Bearer off", http.StatusUnauthorized, `{"error":"Account is deactivated"}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := get(r, tc.path, tc.header)
			assert.Equal(t, tc.status, rec.Code)
			if tc.status == http.StatusOK {
				assert.Equal(t, tc.body, rec.Body.String())
			} else {
				assert.JSONEq(t, tc.body, rec.Body.String())
			}
		})
	}
}

func TestGate_Optional(t *testing.T) {
	r := newGateEngine(stubAuth{
		"expired": application.ErrTokenExpired,
		"broken":  errors.New("db down"),
	})

	assert.Equal(t, "anonymous", get(r, "/optional", "").Body.String())
	assert.Equal(t, "anonymous", get(r, "/optional", "Bearer expired").Body.String())
	assert.Equal(t, "anonymous", get(r, "/optional", "Bearer broken").Body.String())
	assert.Equal(t, "u-abc", get(r, "/optional", "Bearer abc").Body.String())
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", BearerToken("Bearer abc"))
	assert.Equal(t, "abc", BearerToken("bearer  abc "))
	assert.Equal(t, "", BearerToken("Bearer"))
	assert.Equal(t, "", BearerToken("Token abc"))
	assert.Equal(t, "", BearerToken(""))
}
