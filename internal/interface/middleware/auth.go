package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/finance-tracker-api/internal/application"
	"github.com/oksasatya/finance-tracker-api/internal/interface/apierror"
	"github.com/oksasatya/finance-tracker-api/pkg/helpers"
)

// Authenticator resolves an access token into a principal.
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (application.Principal, error)
}

// PrincipalHandlerFunc is a handler that runs only for authenticated callers.
type PrincipalHandlerFunc func(c *gin.Context, p application.Principal)

// OptionalPrincipalHandlerFunc receives nil when the caller is anonymous or
// presented an unusable token.
type OptionalPrincipalHandlerFunc func(c *gin.Context, p *application.Principal)

// Gate guards handlers behind a bearer access token. The resolved principal
// is handed to the wrapped handler as an argument.
type Gate struct {
	Auth   Authenticator
	Errors apierror.Writer
}

func NewGate(auth Authenticator, errs apierror.Writer) *Gate {
	return &Gate{Auth: auth, Errors: errs}
}

type gateOptions struct {
	notFound int
}

type GateOption func(*gateOptions)

// WithNotFoundStatus sets the status used when the token names a user that
// no longer exists. Defaults to 401.
func WithNotFoundStatus(status int) GateOption {
	return func(o *gateOptions) { o.notFound = status }
}

// Require rejects the request unless it carries a valid access token for an
// active user.
func (g *Gate) Require(h PrincipalHandlerFunc, opts ...GateOption) gin.HandlerFunc {
	o := gateOptions{notFound: http.StatusUnauthorized}
	for _, opt := range opts {
		opt(&o)
	}
	return func(c *gin.Context) {
		p, err := g.Auth.Authenticate(c.Request.Context(), BearerToken(c.GetHeader("Authorization")))
		if err != nil {
			g.Errors.Write(c, err, o.notFound)
			return
		}
		h(c, p)
	}
}

// Optional never rejects; it resolves the principal when it can.
func (g *Gate) Optional(h OptionalPrincipalHandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c.GetHeader("Authorization"))
		if token == "" {
			h(c, nil)
			return
		}
		p, err := g.Auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			var appErr *application.Error
			if !errors.As(err, &appErr) {
				helpers.LogError(g.Errors.Logger, "optional auth failed", err, helpers.RequestFields(c))
			}
			h(c, nil)
			return
		}
		h(c, &p)
	}
}

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. Anything else yields "".
func BearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
