package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/homequest/homequest-go/internal/model"
	"github.com/homequest/homequest-go/internal/repository"
	"github.com/homequest/homequest-go/internal/service"
)

type memUserStore struct {
	users  map[string]*model.User
	nextID int64
}

func (s *memUserStore) Create(_ context.Context, user *model.User) error {
	if _, exists := s.users[user.Email]; exists {
		return repository.ErrDuplicateEmail
	}
	s.nextID++
	user.ID = s.nextID
	copied := *user
	s.users[user.Email] = &copied
	return nil
}

func (s *memUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	user, ok := s.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

func (s *memUserStore) GetByID(_ context.Context, id int64) (*model.User, error) {
	for _, user := range s.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func newTestRouter() *chi.Mux {
	store := &memUserStore{users: make(map[string]*model.User)}
	svc := service.NewAuthService(store, "test-secret", time.Hour, "test-product-secret", zerolog.Nop())
	h := NewAuthHandler(svc)

	r := chi.NewRouter()
	r.Post("/auth/signup/{role}", h.HandleSignup)
	r.Post("/auth/signin", h.HandleSignin)
	r.Post("/auth/key", h.HandleGenerateKey)
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

const signupBody = `{"name":"A","phone":"555-123-4567","email":"a@x.com","password":"secret1"}`

func TestHandleSignupCreated(t *testing.T) {
	r := newTestRouter()

	rec := doJSON(r, http.MethodPost, "/auth/signup/BUYER", signupBody)
	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}
}

func TestHandleSignupEmailTaken(t *testing.T) {
	r := newTestRouter()

	doJSON(r, http.MethodPost, "/auth/signup/BUYER", signupBody)
	rec := doJSON(r, http.MethodPost, "/auth/signup/BUYER", signupBody)
	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusConflict)
	}
}

func TestHandleSignupUnknownRole(t *testing.T) {
	r := newTestRouter()

	rec := doJSON(r, http.MethodPost, "/auth/signup/WIZARD", signupBody)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleSignupRealtorGarbageKey(t *testing.T) {
	r := newTestRouter()

	body := `{"name":"A","phone":"555-123-4567","email":"r@x.com","password":"secret1","product_key":"garbage"}`
	rec := doJSON(r, http.MethodPost, "/auth/signup/REALTOR", body)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestHandleSignupRealtorMissingKey(t *testing.T) {
	r := newTestRouter()

	body := `{"name":"A","phone":"555-123-4567","email":"r@x.com","password":"secret1"}`
	rec := doJSON(r, http.MethodPost, "/auth/signup/REALTOR", body)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestHandleSigninWrongPassword(t *testing.T) {
	r := newTestRouter()

	doJSON(r, http.MethodPost, "/auth/signup/BUYER", signupBody)
	rec := doJSON(r, http.MethodPost, "/auth/signin", `{"email":"a@x.com","password":"wrong"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleSigninUnknownEmail(t *testing.T) {
	r := newTestRouter()

	rec := doJSON(r, http.MethodPost, "/auth/signin", `{"email":"nobody@x.com","password":"whatever"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleGenerateKey(t *testing.T) {
	r := newTestRouter()

	rec := doJSON(r, http.MethodPost, "/auth/key", `{"email":"r@x.com","role":"REALTOR"}`)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "product_key") {
		t.Errorf("body missing product_key: %s", rec.Body.String())
	}
}

func TestHandleGenerateKeyBuyerRejected(t *testing.T) {
	r := newTestRouter()

	rec := doJSON(r, http.MethodPost, "/auth/key", `{"email":"r@x.com","role":"BUYER"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleSignupMalformedBody(t *testing.T) {
	r := newTestRouter()

	rec := doJSON(r, http.MethodPost, "/auth/signup/BUYER", `{not json`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
