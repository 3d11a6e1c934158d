package store

import (
	"context"

	"github.com/epadrino/proyecto-api/models"
)

// UserRepository is the persistence gateway for User records.
//
// Implementations translate backend-specific failure modes into the
// package's sentinel errors: a uniqueness violation on the email column
// surfaces as [ErrEmailAlreadyExists], an empty result set as
// [ErrNoUserWasFound]. The service layer never inspects driver errors.
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields (ID, CreatedAt, UpdatedAt) populated.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the full record, including the password hash,
	// for credential verification.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the public projection of a single user.
	// The password hash column is not part of the query.
	FindUserByID(ctx context.Context, id int64) (models.User, error)

	// FindAllUsers returns the public projection of every user,
	// ordered by creation time descending.
	FindAllUsers(ctx context.Context) ([]models.User, error)

	// UpdateUser applies the non-nil fields of update to the user with the
	// given id and returns the updated public projection. The update map
	// receives an already-hashed password under the password_hash column.
	UpdateUser(ctx context.Context, id int64, update UserColumnUpdate) (models.User, error)

	// DeleteUser removes the user with the given id. Returns false, without
	// an error, when no row matched.
	DeleteUser(ctx context.Context, id int64) (bool, error)
}

// UserColumnUpdate carries column-level changes for UpdateUser.
// Nil fields are left untouched.
type UserColumnUpdate struct {
	NombreCompleto *string
	Email          *string
	Role           *string
	PasswordHash   *string
}

// Empty reports whether no column would change.
func (u UserColumnUpdate) Empty() bool {
	return u.NombreCompleto == nil && u.Email == nil && u.Role == nil && u.PasswordHash == nil
}
