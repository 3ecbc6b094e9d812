package http

import (
	"encoding/json"

	"safespace-srv/internal/alert"
	pkgErrors "safespace-srv/pkg/errors"
)

// --- Request DTOs ---

// DetectDangerReq accepts a signal of any JSON type. Only a string can match
// the danger signal; every other value classifies as safe.
type DetectDangerReq struct {
	Signal json.RawMessage `json:"signal" swaggertype:"string" example:"danger"`
}

func (r DetectDangerReq) toInput() alert.DetectDangerInput {
	var signal string
	if err := json.Unmarshal(r.Signal, &signal); err != nil {
		signal = ""
	}
	return alert.DetectDangerInput{Signal: signal}
}

type SendAlertReq struct {
	Location string `json:"location" example:"Main St"`
}

func (r SendAlertReq) validate() error {
	if r.Location == "" {
		return pkgErrors.NewValidationError(ErrCodeValidation, "location", pkgErrors.MessageFieldMissing)
	}
	return nil
}

func (r SendAlertReq) toInput() alert.SendAlertInput {
	return alert.SendAlertInput{Location: r.Location}
}

type OfflineAlertReq struct {
	Message string `json:"message" example:"Phone battery low, near the station"`
}

func (r OfflineAlertReq) validate() error {
	if r.Message == "" {
		return pkgErrors.NewValidationError(ErrCodeValidation, "message", pkgErrors.MessageFieldMissing)
	}
	return nil
}

func (r OfflineAlertReq) toInput() alert.OfflineAlertInput {
	return alert.OfflineAlertInput{Message: r.Message}
}

// --- Response DTOs ---

type DangerCheckResp struct {
	Status string `json:"status" example:"Danger detected"`
	Alert  bool   `json:"alert" example:"true"`
}

func newDangerCheckResp(o alert.DangerCheck) DangerCheckResp {
	return DangerCheckResp{Status: o.Status, Alert: o.Alert}
}

type StatusResp struct {
	Status string `json:"status" example:"SMS + Calls sent successfully"`
}

type SafePathResp struct {
	CurrentLocation string   `json:"currentLocation" example:"User Location"`
	SuggestedPath   []string `json:"suggestedPath"`
}

func newSafePathResp(o alert.SafePath) SafePathResp {
	return SafePathResp{CurrentLocation: o.CurrentLocation, SuggestedPath: o.SuggestedPath}
}

type ErrorResp struct {
	Error string `json:"error" example:"The 'To' number is not a valid phone number."`
}
