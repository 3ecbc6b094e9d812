package httpserver

import (
	"safespace-srv/pkg/errors"
	"safespace-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	serviceName    = "safespace-srv"
	serviceVersion = "1.0.0"
	serviceMessage = "SafeSpace alert service"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the alert service is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Service is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": serviceMessage,
		"version": serviceVersion,
		"service": serviceName,
	})
}

// readyCheck handles readiness check requests
// @Summary Readiness Check
// @Description Check if the alert service can dispatch alerts
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Service is ready"
// @Failure 503 {object} response.Resp "Service is not ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	if srv.notifier == nil || srv.fromNumber == "" {
		response.HttpError(c, errors.NewUnavailableHTTPError("Alert provider not configured"))
		return
	}

	response.OK(c, gin.H{
		"status":           "ready",
		"message":          serviceMessage,
		"version":          serviceVersion,
		"service":          serviceName,
		"trusted_contacts": len(srv.contacts),
		"ops_reporting":    srv.discord != nil,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the alert service is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Service is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": serviceMessage,
		"version": serviceVersion,
		"service": serviceName,
	})
}
