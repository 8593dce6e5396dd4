package handler

import (
	"errors"
	"net/http"

	"github.com/homequest/homequest-go/internal/middleware"
	"github.com/homequest/homequest-go/internal/model"
	"github.com/homequest/homequest-go/internal/service"
)

// MessageHandler handles HTTP requests for buyer inquiries.
type MessageHandler struct {
	service *service.MessageService
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(svc *service.MessageService) *MessageHandler {
	return &MessageHandler{service: svc}
}

// HandleInquire handles POST /api/v1/homes/{id}/inquire requests.
func (h *MessageHandler) HandleInquire(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	id, ok := homeID(w, r)
	if !ok {
		return
	}

	var req model.InquireRequest
	if !decodeJSON(w, r, 1<<20, &req) {
		return
	}

	msg, err := h.service.Inquire(r.Context(), identity.ID, id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMessageRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrHomeNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]int64{"id": msg.ID})
}

// HandleHomeMessages handles GET /api/v1/homes/{id}/messages requests.
func (h *MessageHandler) HandleHomeMessages(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	id, ok := homeID(w, r)
	if !ok {
		return
	}

	messages, err := h.service.HomeMessages(r.Context(), identity.ID, id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrHomeNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		case errors.Is(err, service.ErrNotOwner):
			writeJSON(w, http.StatusUnauthorized, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	if messages == nil {
		messages = []model.MessageResponse{}
	}
	writeJSON(w, http.StatusOK, messages)
}
