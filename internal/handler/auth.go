package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/homequest/homequest-go/internal/middleware"
	"github.com/homequest/homequest-go/internal/model"
	"github.com/homequest/homequest-go/internal/service"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// HandleSignup handles POST /api/v1/auth/signup/{role} requests.
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	role, ok := model.ParseRole(chi.URLParam(r, "role"))
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid role"))
		return
	}

	var req model.SignupRequest
	if !decodeJSON(w, r, 1<<20, &req) {
		return
	}

	resp, err := h.service.Signup(r.Context(), role, req)
	if err != nil {
		switch {
		case isSignupValidationError(err):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrEmailTaken):
			writeJSON(w, http.StatusConflict, errorResponse(err.Error()))
		case errors.Is(err, service.ErrProductKeyRequired), errors.Is(err, service.ErrInvalidProductKey):
			writeJSON(w, http.StatusUnauthorized, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleSignin handles POST /api/v1/auth/signin requests.
func (h *AuthHandler) HandleSignin(w http.ResponseWriter, r *http.Request) {
	var req model.SigninRequest
	if !decodeJSON(w, r, 1<<20, &req) {
		return
	}

	resp, err := h.service.Signin(r.Context(), req)
	if err != nil {
		// Unknown email and wrong password look identical here.
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleGenerateKey handles POST /api/v1/auth/key requests.
func (h *AuthHandler) HandleGenerateKey(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateKeyRequest
	if !decodeJSON(w, r, 1<<20, &req) {
		return
	}

	resp, err := h.service.GenerateProductKey(r.Context(), req.Email, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRole), errors.Is(err, service.ErrInvalidEmail):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleMe handles GET /api/v1/auth/me requests.
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	resp, err := h.service.CurrentUser(r.Context(), identity.ID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
