package middleware

import (
	"net"

	"github.com/gin-gonic/gin"
)

// AllowPrivateIP bypasses the limiter for loopback and RFC 1918 clients,
// such as a metrics scraper inside the cluster.
func AllowPrivateIP() AllowFunc {
	return func(c *gin.Context) bool {
		parsed := net.ParseIP(ipFromCtx(c))
		if parsed == nil {
			return false
		}
		return parsed.IsLoopback() || parsed.IsPrivate()
	}
}

// AllowPaths bypasses the limiter for requests to exactly one of paths.
func AllowPaths(paths ...string) AllowFunc {
	return func(c *gin.Context) bool {
		path := c.Request.URL.Path
		for _, p := range paths {
			if path == p {
				return true
			}
		}
		return false
	}
}
