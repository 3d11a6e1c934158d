package service

import (
	"context"

	"github.com/epadrino/proyecto-api/models"
)

// UserService orchestrates credential hashing and the user repository to
// implement registration and CRUD. Every returned [models.User] is a public
// projection: the password hash is stripped before it leaves this layer.
type UserService interface {
	// RegisterUser hashes the password and persists a new account.
	// An empty role defaults to [models.DefaultRole].
	RegisterUser(ctx context.Context, fullName, email, password, role string) (models.User, error)

	// GetUserByID returns a single user or store.ErrNoUserWasFound.
	GetUserByID(ctx context.Context, id int64) (models.User, error)

	// GetAllUsers returns every user, newest first.
	GetAllUsers(ctx context.Context) ([]models.User, error)

	// UpdateUser applies the present fields of update; a present password is
	// re-hashed before persistence. An empty update degrades to a read.
	UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error)

	// DeleteUser removes an account. The boolean result distinguishes a
	// removed row from an absent one; absence is not an error.
	DeleteUser(ctx context.Context, id int64) (bool, error)
}

// AuthService verifies credentials and manages the token lifecycle.
type AuthService interface {
	// Authenticate checks the email/password pair against the store.
	// Unknown email and wrong password both yield ErrInvalidCredentials so
	// callers cannot tell registered addresses apart from unregistered ones.
	Authenticate(ctx context.Context, email, password string) (models.User, error)

	// CreateToken issues a signed JWT for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates and parses a raw JWT string.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}
