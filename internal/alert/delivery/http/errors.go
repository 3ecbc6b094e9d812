package http

import (
	"context"
	"errors"
	"net/http"

	"safespace-srv/internal/alert"
	pkgErrors "safespace-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// mapError turns a request or dispatch error into a status and message.
// Unknown errors panic and are handled by the recovery middleware.
func (h *Handler) mapError(err error) (int, string) {
	var validationErr *pkgErrors.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, validationErr.Error()
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return http.StatusServiceUnavailable, err.Error()
	}

	var providerErr *alert.ProviderError
	if errors.As(err, &providerErr) {
		return http.StatusInternalServerError, providerErr.Message
	}

	panic(err)
}

func (h *Handler) abortWithError(c *gin.Context, err error) {
	status, msg := h.mapError(err)
	if status >= http.StatusInternalServerError {
		h.logger.Errorf(c.Request.Context(), "internal.alert.delivery.http: %s %s: %s", c.Request.Method, c.Request.URL.Path, msg)
	} else {
		h.logger.Warnf(c.Request.Context(), "internal.alert.delivery.http: %s %s: %s", c.Request.Method, c.Request.URL.Path, msg)
	}
	c.AbortWithStatusJSON(status, ErrorResp{Error: msg})
}
