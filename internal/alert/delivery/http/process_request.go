package http

import (
	"errors"
	"io"

	pkgErrors "safespace-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

const ErrCodeValidation = 400

// bindJSON decodes the body into req. An empty body leaves req zero-valued.
func bindJSON(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return pkgErrors.NewValidationError(ErrCodeValidation, "", "malformed JSON body")
	}
	return nil
}

func (h *Handler) processDetectDangerRequest(c *gin.Context) (DetectDangerReq, error) {
	var req DetectDangerReq
	if err := bindJSON(c, &req); err != nil {
		return DetectDangerReq{}, err
	}
	return req, nil
}

func (h *Handler) processSendAlertRequest(c *gin.Context) (SendAlertReq, error) {
	var req SendAlertReq
	if err := bindJSON(c, &req); err != nil {
		return SendAlertReq{}, err
	}
	if err := req.validate(); err != nil {
		return SendAlertReq{}, err
	}
	return req, nil
}

func (h *Handler) processOfflineAlertRequest(c *gin.Context) (OfflineAlertReq, error) {
	var req OfflineAlertReq
	if err := bindJSON(c, &req); err != nil {
		return OfflineAlertReq{}, err
	}
	if err := req.validate(); err != nil {
		return OfflineAlertReq{}, err
	}
	return req, nil
}
