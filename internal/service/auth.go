package service

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/rs/zerolog"

	"github.com/homequest/homequest-go/internal/crypto"
	"github.com/homequest/homequest-go/internal/model"
	"github.com/homequest/homequest-go/internal/repository"
)

var (
	ErrEmailTaken         = errors.New("email already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrProductKeyRequired = errors.New("product key is required for this role")
	ErrInvalidProductKey  = errors.New("invalid product key")
	ErrInvalidRole        = errors.New("invalid role")

	ErrNameRequired     = errors.New("name is required")
	ErrInvalidPhone     = errors.New("phone must be a valid phone number")
	ErrInvalidEmail     = errors.New("email must be a valid email address")
	ErrPasswordTooShort = errors.New("password must be at least 5 characters")
)

var (
	phoneRe = regexp.MustCompile(`^\+?\(?[0-9]{3}\)?[-\s.]?[0-9]{3}[-\s.]?[0-9]{4,6}$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// UserStore is the credential store contract the auth service consumes.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

// AuthService handles signup, signin and product key issuance.
type AuthService struct {
	users            UserStore
	jwtSecret        string
	jwtExpiry        time.Duration
	productKeySecret string
	logger           zerolog.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, jwtSecret string, jwtExpiry time.Duration, productKeySecret string, logger zerolog.Logger) *AuthService {
	return &AuthService{
		users:            users,
		jwtSecret:        jwtSecret,
		jwtExpiry:        jwtExpiry,
		productKeySecret: productKeySecret,
		logger:           logger,
	}
}

// Signup creates a new user with the given role and returns a session
// token. Roles other than BUYER must present a product key issued for
// exactly this (email, role) pair.
func (s *AuthService) Signup(ctx context.Context, role model.UserRole, req model.SignupRequest) (model.AuthResponse, error) {
	if err := validateSignup(req); err != nil {
		return model.AuthResponse{}, err
	}

	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return model.AuthResponse{}, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return model.AuthResponse{}, err
	}

	if role.Privileged() {
		if req.ProductKey == "" {
			return model.AuthResponse{}, ErrProductKeyRequired
		}
		ok, err := crypto.VerifyProductKey(req.Email, string(role), s.productKeySecret, req.ProductKey)
		if err != nil || !ok {
			return model.AuthResponse{}, ErrInvalidProductKey
		}
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.AuthResponse{}, err
	}

	user := &model.User{
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.AuthResponse{}, ErrEmailTaken
		}
		return model.AuthResponse{}, err
	}

	s.logger.Info().Int64("user_id", user.ID).Str("role", string(role)).Msg("user signed up")

	return s.authResponse(user)
}

// Signin authenticates a user and returns a session token. Unknown
// emails and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Signin(ctx context.Context, req model.SigninRequest) (model.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AuthResponse{}, ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}

	match, err := crypto.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return model.AuthResponse{}, err
	}
	if !match {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	return s.authResponse(user)
}

// GenerateProductKey issues a key authorizing email to sign up with a
// privileged role. The endpoint serving this is unauthenticated, so
// every issuance is logged.
func (s *AuthService) GenerateProductKey(ctx context.Context, email, role string) (model.ProductKeyResponse, error) {
	parsed, ok := model.ParseRole(role)
	if !ok || !parsed.Privileged() {
		return model.ProductKeyResponse{}, ErrInvalidRole
	}
	if !emailRe.MatchString(email) {
		return model.ProductKeyResponse{}, ErrInvalidEmail
	}

	key, err := crypto.IssueProductKey(email, string(parsed), s.productKeySecret)
	if err != nil {
		return model.ProductKeyResponse{}, err
	}

	s.logger.Warn().Str("email", email).Str("role", string(parsed)).Msg("product key issued")

	return model.ProductKeyResponse{ProductKey: key}, nil
}

// CurrentUser retrieves the caller's profile for GET /auth/me.
func (s *AuthService) CurrentUser(ctx context.Context, userID int64) (model.UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return model.UserResponse{}, err
	}
	return userResponse(user), nil
}

func (s *AuthService) authResponse(user *model.User) (model.AuthResponse, error) {
	token, err := crypto.GenerateToken(user.ID, user.Name, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.AuthResponse{}, err
	}
	return model.AuthResponse{Token: token, User: userResponse(user)}, nil
}

func userResponse(user *model.User) model.UserResponse {
	return model.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Phone:     user.Phone,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

func validateSignup(req model.SignupRequest) error {
	if req.Name == "" {
		return ErrNameRequired
	}
	if !phoneRe.MatchString(req.Phone) {
		return ErrInvalidPhone
	}
	if !emailRe.MatchString(req.Email) {
		return ErrInvalidEmail
	}
	if len(req.Password) < 5 {
		return ErrPasswordTooShort
	}
	return nil
}
