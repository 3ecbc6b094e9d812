package http

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the alert endpoints at the router root.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.POST("/detect-danger", h.DetectDanger)
	r.POST("/send-alert", h.SendAlert)
	r.GET("/safe-path", h.SafePath)
	r.POST("/offline-alert", h.OfflineAlert)
}
