package models

// RegisterRequest is the body accepted by POST /auth/register.
type RegisterRequest struct {
	NombreCompleto string `json:"nombreCompleto"`
	Email          string `json:"email"`
	Password       string `json:"password"`
}

// CreateUserRequest is the body accepted by POST /users.
// Unlike registration it may carry an explicit role.
type CreateUserRequest struct {
	NombreCompleto string `json:"nombreCompleto"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	Role           string `json:"role,omitempty"`
}

// LoginRequest is the body accepted by POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
