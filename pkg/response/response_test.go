package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newCtx() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	return c, rec
}

func TestErrorCode(t *testing.T) {
	c, rec := newCtx()
	ErrorCode(c, http.StatusUnauthorized, "Token expired", "TOKEN_EXPIRED")

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Token expired","code":"TOKEN_EXPIRED"}`, rec.Body.String())
}

func TestError_OmitsEmptyCode(t *testing.T) {
	c, rec := newCtx()
	Error(c, 0, "bad")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, `{"error":"bad"}`, rec.Body.String())
}

func TestInternal(t *testing.T) {
	c, rec := newCtx()
	Internal(c, true, errors.New("pg: connection refused"))
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())

	c, rec = newCtx()
	Internal(c, false, errors.New("pg: connection refused"))
	assert.JSONEq(t, `{"error":"pg: connection refused"}`, rec.Body.String())
}
