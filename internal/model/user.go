package model

import "time"

// UserRole determines what a user may do. Roles are fixed at signup;
// there is no promotion path.
type UserRole string

const (
	RoleBuyer   UserRole = "BUYER"
	RoleRealtor UserRole = "REALTOR"
	RoleAdmin   UserRole = "ADMIN"
)

// ParseRole maps a URL/body role string onto a known role.
func ParseRole(s string) (UserRole, bool) {
	switch UserRole(s) {
	case RoleBuyer, RoleRealtor, RoleAdmin:
		return UserRole(s), true
	default:
		return "", false
	}
}

// Privileged reports whether signing up with this role requires a product key.
func (r UserRole) Privileged() bool {
	return r != RoleBuyer
}

// User represents a user in the database.
type User struct {
	ID           int64
	Name         string
	Phone        string
	Email        string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SignupRequest represents a signup request body. ProductKey is only
// required for privileged roles.
type SignupRequest struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	ProductKey string `json:"product_key,omitempty"`
}

// SigninRequest represents a signin request body.
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GenerateKeyRequest asks for a product key binding an email to a role.
type GenerateKeyRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ProductKeyResponse carries a freshly issued product key.
type ProductKeyResponse struct {
	ProductKey string `json:"product_key"`
}

// AuthResponse carries a session token plus safe user data.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse represents user data safe for API responses (no hash).
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
