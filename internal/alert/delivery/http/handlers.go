package http

import (
	"net/http"

	"safespace-srv/internal/alert"

	"github.com/gin-gonic/gin"
)

// DetectDanger classifies a signal.
// @Summary Detect danger
// @Description Placeholder classifier: alert is true only for the exact signal "danger".
// @Tags Alert
// @Accept json
// @Produce json
// @Param request body DetectDangerReq true "Signal"
// @Success 200 {object} DangerCheckResp
// @Failure 400 {object} ErrorResp
// @Router /detect-danger [POST]
func (h *Handler) DetectDanger(c *gin.Context) {
	req, err := h.processDetectDangerRequest(c)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	out := h.uc.DetectDanger(c.Request.Context(), req.toInput())
	c.JSON(http.StatusOK, newDangerCheckResp(out))
}

// SendAlert texts and calls every trusted contact.
// @Summary Send danger alert
// @Description Sends an SMS and places a voice call to each trusted contact in order. Stops at the first provider failure.
// @Tags Alert
// @Accept json
// @Produce json
// @Param request body SendAlertReq true "Location"
// @Success 200 {object} StatusResp
// @Failure 400 {object} ErrorResp
// @Failure 500 {object} ErrorResp "Provider error message"
// @Router /send-alert [POST]
func (h *Handler) SendAlert(c *gin.Context) {
	req, err := h.processSendAlertRequest(c)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	if err := h.uc.SendAlert(c.Request.Context(), req.toInput()); err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, StatusResp{Status: alert.StatusAlertSent})
}

// SafePath returns a suggested route.
// @Summary Suggest safe path
// @Description Placeholder route suggestion with fixed content.
// @Tags Alert
// @Produce json
// @Success 200 {object} SafePathResp
// @Router /safe-path [GET]
func (h *Handler) SafePath(c *gin.Context) {
	out := h.uc.SuggestSafePath(c.Request.Context())
	c.JSON(http.StatusOK, newSafePathResp(out))
}

// OfflineAlert texts every trusted contact.
// @Summary Send offline alert
// @Description SMS-only fallback. Sends the message to each trusted contact in order and stops at the first provider failure.
// @Tags Alert
// @Accept json
// @Produce json
// @Param request body OfflineAlertReq true "Message"
// @Success 200 {object} StatusResp
// @Failure 400 {object} ErrorResp
// @Failure 500 {object} ErrorResp "Provider error message"
// @Router /offline-alert [POST]
func (h *Handler) OfflineAlert(c *gin.Context) {
	req, err := h.processOfflineAlertRequest(c)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	if err := h.uc.SendOfflineAlert(c.Request.Context(), req.toInput()); err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, StatusResp{Status: alert.StatusOfflineAlertSent})
}
