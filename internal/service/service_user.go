package service

import (
	"context"
	"fmt"

	"github.com/epadrino/proyecto-api/internal/logger"
	"github.com/epadrino/proyecto-api/internal/store"
	"github.com/epadrino/proyecto-api/internal/utils"
	"github.com/epadrino/proyecto-api/models"
)

// userService is the concrete implementation of UserService.
// It hashes credentials before they reach the repository and strips them
// from everything that comes back.
type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewUserService constructs a UserService wired to the given UserRepository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// RegisterUser creates a new account.
//
// It validates that full name, email and password are non-empty, hashes the
// password with bcrypt, and delegates persistence to the repository. There
// is no pre-insert existence check: the store's unique constraint decides
// conflicts, which keeps concurrent registrations race-free.
//
// Returns the persisted public projection or:
//   - ErrInvalidDataProvided for missing required fields.
//   - store.ErrEmailAlreadyExists when the address is taken.
//   - A wrapped storage error for any other repository failure.
func (s *userService) RegisterUser(ctx context.Context, fullName, email, password, role string) (models.User, error) {
	log := logger.FromContext(ctx)

	if fullName == "" || email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid registration payload")
		return models.User{}, ErrInvalidDataProvided
	}

	if role == "" {
		role = models.DefaultRole
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return models.User{}, fmt.Errorf("hashing password failed: %w", err)
	}

	registeredUser, err := s.userRepository.CreateUser(ctx, models.User{
		NombreCompleto: fullName,
		Email:          email,
		PasswordHash:   passwordHash,
		Role:           role,
	})
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	registeredUser.PasswordHash = ""
	return registeredUser, nil
}

// GetUserByID returns the public projection of a single user.
// Propagates store.ErrNoUserWasFound unchanged.
func (s *userService) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	return s.userRepository.FindUserByID(ctx, id)
}

// GetAllUsers returns the public projection of every user, newest first.
func (s *userService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepository.FindAllUsers(ctx)
}

// UpdateUser applies the present fields of update to the targeted account.
//
// A present password is re-hashed before it reaches the repository. When no
// field is present the call degrades to a plain read of the current record.
//
// Propagates store.ErrNoUserWasFound and store.ErrEmailAlreadyExists
// unchanged so the transport layer can map them to 404 and 409.
func (s *userService) UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if update.Empty() {
		return s.userRepository.FindUserByID(ctx, id)
	}

	columns := store.UserColumnUpdate{
		NombreCompleto: update.NombreCompleto,
		Email:          update.Email,
		Role:           update.Role,
	}

	if update.Password != nil {
		if *update.Password == "" {
			return models.User{}, ErrInvalidDataProvided
		}

		passwordHash, err := utils.HashPassword(*update.Password)
		if err != nil {
			return models.User{}, fmt.Errorf("hashing password failed: %w", err)
		}
		columns.PasswordHash = &passwordHash
	}

	updatedUser, err := s.userRepository.UpdateUser(ctx, id, columns)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("user update ended with error")
		return models.User{}, err
	}

	return updatedUser, nil
}

// DeleteUser removes an account. A missing id is reported through the
// boolean result, never as an error.
func (s *userService) DeleteUser(ctx context.Context, id int64) (bool, error) {
	return s.userRepository.DeleteUser(ctx, id)
}
