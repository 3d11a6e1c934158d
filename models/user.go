package models

import "time"

// User represents a registered account. It contains identity attributes and
// credential-related data. Sensitive fields must never be exposed outside
// trusted boundaries.
type User struct {
	// ID is the unique identifier of the user, assigned by the database
	// on creation and immutable afterwards.
	ID int64 `json:"id"`

	// NombreCompleto is the user's full name. Required, non-empty.
	NombreCompleto string `json:"nombreCompleto"`

	// Email is the unique login identifier. Uniqueness is enforced by the
	// database constraint; no case normalization is applied.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a derived value, never plaintext.
	// It is excluded from JSON so it can never appear in a response payload.
	PasswordHash string `json:"-"`

	// Role is a free-form role tag. Defaults to "user" when unspecified.
	Role string `json:"role"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp of the last modification, maintained by
	// the persistence layer.
	UpdatedAt time.Time `json:"updatedAt"`
}

// DefaultRole is assigned to accounts created without an explicit role.
const DefaultRole = "user"

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserUpdate carries a partial set of changes for an existing user.
// Only non-nil fields are applied; a Password value triggers re-hashing
// at the service layer before it reaches the store.
type UserUpdate struct {
	NombreCompleto *string `json:"nombreCompleto,omitempty"`
	Email          *string `json:"email,omitempty"`
	Role           *string `json:"role,omitempty"`
	Password       *string `json:"password,omitempty"`
}

// Empty reports whether the update carries no changes at all.
// An empty update degrades to a plain read of the current record.
func (u UserUpdate) Empty() bool {
	return u.NombreCompleto == nil && u.Email == nil && u.Role == nil && u.Password == nil
}
