package helpers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// RefreshCookieName is the cookie carrying the refresh token. The refresh token
// never travels in a JSON body.
const RefreshCookieName = "refreshToken"

type CookieManager struct {
	Domain string
	Secure bool
}

func NewCookie(domain string, secure bool) *CookieManager {
	return &CookieManager{Domain: domain, Secure: secure}
}

// SetRefresh stores the refresh token as an http-only, same-site strict cookie.
func (m *CookieManager) SetRefresh(c *gin.Context, refresh string, exp time.Time) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(RefreshCookieName, refresh, maxAgeFrom(exp), "/", m.Domain, m.Secure, true)
}

// Refresh returns the refresh token presented by the client, or "".
func (m *CookieManager) Refresh(c *gin.Context) string {
	v, err := c.Cookie(RefreshCookieName)
	if err != nil {
		return ""
	}
	return v
}

func (m *CookieManager) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(RefreshCookieName, "", -1, "/", m.Domain, m.Secure, true)
}

func maxAgeFrom(exp time.Time) int {
	sec := int(time.Until(exp).Seconds())
	if sec < 0 {
		return 0
	}
	return sec
}
