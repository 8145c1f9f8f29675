package apierror

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/finance-tracker-api/internal/application"
	"github.com/oksasatya/finance-tracker-api/pkg/helpers"
	"github.com/oksasatya/finance-tracker-api/pkg/response"
)

// Status maps an error kind to its HTTP status. notFound is used for
// KindNotFound, since some endpoints report a vanished user as 401.
func Status(kind application.Kind, notFound int) int {
	switch kind {
	case application.KindValidation:
		return http.StatusBadRequest
	case application.KindAuthentication:
		return http.StatusUnauthorized
	case application.KindConflict:
		return http.StatusConflict
	case application.KindNotFound:
		if notFound == 0 {
			return http.StatusNotFound
		}
		return notFound
	}
	return http.StatusInternalServerError
}

// Writer renders errors as {error[, code]} and aborts the chain.
type Writer struct {
	Logger     *logrus.Logger
	Production bool
}

func NewWriter(logger *logrus.Logger, production bool) Writer {
	return Writer{Logger: logger, Production: production}
}

func (w Writer) Write(c *gin.Context, err error, notFound int) {
	var appErr *application.Error
	if errors.As(err, &appErr) {
		response.ErrorCode(c, Status(appErr.Kind, notFound), appErr.Message, appErr.Code)
		return
	}
	helpers.LogError(w.Logger, "request failed", err, helpers.RequestFields(c))
	response.Internal(c, w.Production, err)
}
