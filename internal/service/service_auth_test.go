package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/epadrino/proyecto-api/internal/config"
	"github.com/epadrino/proyecto-api/internal/logger"
	"github.com/epadrino/proyecto-api/internal/mock"
	"github.com/epadrino/proyecto-api/internal/store"
	"github.com/epadrino/proyecto-api/internal/utils"
	"github.com/epadrino/proyecto-api/models"
)

func testAuthConfig() config.Auth {
	return config.Auth{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "proyecto-api-test",
		TokenDuration: time.Hour,
	}
}

func newTestAuthService(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockUserRepository) {
	t.Helper()
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewAuthService(repo, testAuthConfig(), logger.Nop()).(*authService)
	return svc, repo
}

func storedUser(t *testing.T, password string) models.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return models.User{
		ID:             7,
		NombreCompleto: "Juan Perez",
		Email:          "juan.perez@example.com",
		PasswordHash:   hash,
		Role:           "user",
	}
}

// ── Authenticate ──────────────────────────────────────────────────────────────

func TestAuthService_Authenticate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().
		FindUserByEmail(ctx, "juan.perez@example.com").
		Return(storedUser(t, "Secret123!"), nil)

	user, err := svc.Authenticate(ctx, "juan.perez@example.com", "Secret123!")
	require.NoError(t, err)

	assert.Equal(t, int64(7), user.ID)
	assert.Empty(t, user.PasswordHash, "authenticated user must be a stripped projection")
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestAuthService_Authenticate_UnknownEmailAndWrongPasswordMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().
		FindUserByEmail(ctx, "nobody@example.com").
		Return(models.User{}, store.ErrNoUserWasFound)
	_, unknownErr := svc.Authenticate(ctx, "nobody@example.com", "whatever")

	repo.EXPECT().
		FindUserByEmail(ctx, "juan.perez@example.com").
		Return(storedUser(t, "Secret123!"), nil)
	_, wrongErr := svc.Authenticate(ctx, "juan.perez@example.com", "wrong-password")

	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, ErrInvalidCredentials)
	assert.Equal(t, unknownErr, wrongErr)
}

func TestAuthService_Authenticate_EmptyInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthService(t, ctrl)

	_, err := svc.Authenticate(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── CreateToken / ParseToken ──────────────────────────────────────────────────

func TestAuthService_TokenRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthService(t, ctrl)
	ctx := context.Background()

	user := models.User{ID: 7, Email: "juan.perez@example.com"}

	token, err := svc.CreateToken(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)

	assert.Equal(t, int64(7), parsed.UserID)
	assert.Equal(t, "juan.perez@example.com", parsed.Email)
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthService(t, ctrl)
	svc.tokenDuration = time.Nanosecond

	token, err := svc.CreateToken(context.Background(), models.User{ID: 7, Email: "juan.perez@example.com"})
	require.NoError(t, err)
	time.Sleep(time.Millisecond)

	_, err = svc.ParseToken(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpired)
}

func TestAuthService_ParseToken_WrongKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthService(t, ctrl)

	foreign, err := utils.GenerateJWTToken("proyecto-api-test", models.User{ID: 7}, time.Hour, "other-key")
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), foreign.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsInvalid)
}

func TestAuthService_ParseToken_Garbage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthService(t, ctrl)

	_, err := svc.ParseToken(context.Background(), "definitely-not-a-token")
	assert.ErrorIs(t, err, ErrTokenIsInvalid)
}
