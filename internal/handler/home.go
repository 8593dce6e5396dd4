package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/homequest/homequest-go/internal/middleware"
	"github.com/homequest/homequest-go/internal/model"
	"github.com/homequest/homequest-go/internal/service"
)

// HomeHandler handles HTTP requests for property listings.
type HomeHandler struct {
	service *service.HomeService
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(svc *service.HomeService) *HomeHandler {
	return &HomeHandler{service: svc}
}

// HandleListHomes handles GET /api/v1/homes requests with optional
// city, min_price, max_price and property_type query filters.
func (h *HomeHandler) HandleListHomes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := model.HomeFilter{City: q.Get("city")}

	if v := q.Get("min_price"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse("invalid min_price"))
			return
		}
		filter.MinPrice = &p
	}
	if v := q.Get("max_price"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse("invalid max_price"))
			return
		}
		filter.MaxPrice = &p
	}
	if v := q.Get("property_type"); v != "" {
		propertyType, ok := model.ParsePropertyType(v)
		if !ok {
			writeJSON(w, http.StatusBadRequest, errorResponse("invalid property_type"))
			return
		}
		filter.PropertyType = propertyType
	}

	homes, err := h.service.ListHomes(r.Context(), filter)
	if err != nil {
		if errors.Is(err, service.ErrHomeNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse("no homes found"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, homes)
}

// HandleGetHome handles GET /api/v1/homes/{id} requests.
func (h *HomeHandler) HandleGetHome(w http.ResponseWriter, r *http.Request) {
	id, ok := homeID(w, r)
	if !ok {
		return
	}

	home, err := h.service.GetHome(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrHomeNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, home)
}

// HandleCreateHome handles POST /api/v1/homes requests.
func (h *HomeHandler) HandleCreateHome(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.CreateHomeRequest
	if !decodeJSON(w, r, 1<<20, &req) {
		return
	}

	home, err := h.service.CreateHome(r.Context(), identity.ID, req)
	if err != nil {
		if isHomeValidationError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusCreated, home)
}

// HandleUpdateHome handles PUT /api/v1/homes/{id} requests.
func (h *HomeHandler) HandleUpdateHome(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	id, ok := homeID(w, r)
	if !ok {
		return
	}

	var req model.UpdateHomeRequest
	if !decodeJSON(w, r, 1<<20, &req) {
		return
	}

	home, err := h.service.UpdateHome(r.Context(), identity.ID, id, req)
	if err != nil {
		h.writeMutationError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, home)
}

// HandleDeleteHome handles DELETE /api/v1/homes/{id} requests.
func (h *HomeHandler) HandleDeleteHome(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	id, ok := homeID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteHome(r.Context(), identity.ID, id); err != nil {
		h.writeMutationError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *HomeHandler) writeMutationError(w http.ResponseWriter, err error) {
	switch {
	case isHomeValidationError(err):
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, service.ErrHomeNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
	case errors.Is(err, service.ErrNotOwner):
		writeJSON(w, http.StatusUnauthorized, errorResponse(err.Error()))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
	}
}

func homeID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid home id"))
		return 0, false
	}
	return id, true
}
