package http

import (
	"context"

	"github.com/epadrino/proyecto-api/models"
)

// mockAuthService implements service.AuthService with pluggable functions.
type mockAuthService struct {
	authenticateFn func(ctx context.Context, email, password string) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	return m.authenticateFn(ctx, email, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockUserService implements service.UserService with pluggable functions.
type mockUserService struct {
	registerUserFn func(ctx context.Context, fullName, email, password, role string) (models.User, error)
	getUserByIDFn  func(ctx context.Context, id int64) (models.User, error)
	getAllUsersFn  func(ctx context.Context) ([]models.User, error)
	updateUserFn   func(ctx context.Context, id int64, update models.UserUpdate) (models.User, error)
	deleteUserFn   func(ctx context.Context, id int64) (bool, error)
}

func (m *mockUserService) RegisterUser(ctx context.Context, fullName, email, password, role string) (models.User, error) {
	return m.registerUserFn(ctx, fullName, email, password, role)
}

func (m *mockUserService) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	return m.getUserByIDFn(ctx, id)
}

func (m *mockUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return m.getAllUsersFn(ctx)
}

func (m *mockUserService) UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error) {
	return m.updateUserFn(ctx, id, update)
}

func (m *mockUserService) DeleteUser(ctx context.Context, id int64) (bool, error) {
	return m.deleteUserFn(ctx, id)
}
