package handler

import (
	"errors"
	"net/http"

	"github.com/njaumatilda/PRODIGY-BD-03/internal/model"
)

type errorResponse struct {
	Message string `json:"message"`
}

// handleError translates a domain error into an HTTP status and a
// caller-facing message. Anything unrecognized degrades to 500 without
// leaking internal detail.
func handleError(err error) (int, string) {
	var verr *model.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, verr.Message
	case errors.Is(err, model.ErrInvalidID):
		return http.StatusBadRequest, "Invalid ID format"
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, model.ErrEmailTaken):
		return http.StatusConflict, "Email is already in use"
	case errors.Is(err, model.ErrEmailDomain):
		return http.StatusBadRequest, "Invalid email domain"
	default:
		return http.StatusInternalServerError, "Internal Server Error"
	}
}

func (h *User) respondError(w http.ResponseWriter, err error) {
	status, message := handleError(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("User handler: request failed",
			"error", err.Error())
	}
	writeJSON(w, status, errorResponse{Message: message})
}
