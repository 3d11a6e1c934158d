package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epadrino/proyecto-api/internal/service"
	"github.com/epadrino/proyecto-api/internal/store"
	"github.com/epadrino/proyecto-api/models"
)

// authOK is an AuthService whose ParseToken always succeeds, so protected
// routes can be exercised with any bearer token.
func authOK() *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{UserID: 42, Email: "elia@example.com"}, nil
		},
	}
}

var bearer = map[string]string{"Authorization": "Bearer test-token"}

func TestListUsers_Success(t *testing.T) {
	userSvc := &mockUserService{
		getAllUsersFn: func(_ context.Context) ([]models.User, error) {
			return []models.User{registeredUser()}, nil
		},
	}

	router := newTestRouter(authOK(), userSvc)

	for _, target := range []string{"/", "/users"} {
		rr := doRequest(t, router, http.MethodGet, target, "", bearer)

		require.Equal(t, http.StatusOK, rr.Code, "GET %s", target)
		assert.JSONEq(t, `{
			"status": "success",
			"data": [{
				"id": 1,
				"nombreCompleto": "Juan Pérez",
				"email": "juan.perez@example.com",
				"role": "user",
				"createdAt": "2025-03-10T12:00:00Z",
				"updatedAt": "2025-03-10T12:00:00Z"
			}]
		}`, rr.Body.String())
	}
}

func TestListUsers_Empty(t *testing.T) {
	userSvc := &mockUserService{
		getAllUsersFn: func(_ context.Context) ([]models.User, error) {
			return nil, nil
		},
	}

	router := newTestRouter(authOK(), userSvc)

	rr := doRequest(t, router, http.MethodGet, "/users", "", bearer)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"success","data":[]}`, rr.Body.String())
}

func TestListUsers_RequiresToken(t *testing.T) {
	router := newTestRouter(authOK(), &mockUserService{})

	rr := doRequest(t, router, http.MethodGet, "/users", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"status":"fail","data":{"message":"No token provided"}}`, rr.Body.String())
}

func TestCreateUser_WithExplicitRole(t *testing.T) {
	userSvc := &mockUserService{
		registerUserFn: func(_ context.Context, fullName, email, password, role string) (models.User, error) {
			assert.Equal(t, "admin", role)
			user := registeredUser()
			user.Role = "admin"
			return user, nil
		},
	}

	router := newTestRouter(authOK(), userSvc)

	rr := doRequest(t, router, http.MethodPost, "/users",
		`{"nombreCompleto":"Juan Pérez","email":"juan.perez@example.com","password":"secreta123","role":"admin"}`, bearer)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), `"role":"admin"`)
}

func TestCreateUser_EmailConflict(t *testing.T) {
	userSvc := &mockUserService{
		registerUserFn: func(_ context.Context, _, _, _, _ string) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}

	router := newTestRouter(authOK(), userSvc)

	rr := doRequest(t, router, http.MethodPost, "/users",
		`{"nombreCompleto":"Juan Pérez","email":"juan.perez@example.com","password":"secreta123"}`, bearer)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.JSONEq(t, `{"status":"fail","data":{"message":"Email en uso"}}`, rr.Body.String())
}

func TestGetUser_Success(t *testing.T) {
	userSvc := &mockUserService{
		getUserByIDFn: func(_ context.Context, id int64) (models.User, error) {
			assert.Equal(t, int64(1), id)
			return registeredUser(), nil
		},
	}

	router := newTestRouter(authOK(), userSvc)

	rr := doRequest(t, router, http.MethodGet, "/users/1", "", bearer)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"email":"juan.perez@example.com"`)
}

func TestGetUser_NotFound(t *testing.T) {
	userSvc := &mockUserService{
		getUserByIDFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}

	router := newTestRouter(authOK(), userSvc)

	rr := doRequest(t, router, http.MethodGet, "/users/9999", "", bearer)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"status":"fail","data":{"message":"Usuario no encontrado"}}`, rr.Body.String())
}

func TestGetUser_NonNumericID(t *testing.T) {
	userSvc := &mockUserService{
		getUserByIDFn: func(_ context.Context, _ int64) (models.User, error) {
			t.Fatal("GetUserByID should not be called")
			return models.User{}, nil
		},
	}

	router := newTestRouter(authOK(), userSvc)

	rr := doRequest(t, router, http.MethodGet, "/users/abc", "", bearer)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"status":"fail","data":{"message":"Usuario no encontrado"}}`, rr.Body.String())
}

func TestUpdateUser_Partial(t *testing.T) {
	userSvc := &mockUserService{
		updateUserFn: func(_ context.Context, id int64, update models.UserUpdate) (models.User, error) {
			assert.Equal(t, int64(1), id)
			require.NotNil(t, update.NombreCompleto)
			assert.Equal(t, "Juana Pérez", *update.NombreCompleto)
			assert.Nil(t, update.Email)
			assert.Nil(t, update.Role)
			assert.Nil(t, update.Password)

			user := registeredUser()
			user.NombreCompleto = "Juana Pérez"
			return user, nil
		},
	}

	router := newTestRouter(authOK(), userSvc)

	rr := doRequest(t, router, http.MethodPut, "/users/1",
		`{"nombreCompleto":"Juana Pérez"}`, bearer)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"nombreCompleto":"Juana Pérez"`)
}

func TestUpdateUser_NotFound(t *testing.T) {
	userSvc := &mockUserService{
		updateUserFn: func(_ context.Context, _ int64, _ models.UserUpdate) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}

	router := newTestRouter(authOK(), userSvc)

	rr := doRequest(t, router, http.MethodPut, "/users/9999",
		`{"nombreCompleto":"Juana Pérez"}`, bearer)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"status":"fail","data":{"message":"Usuario no encontrado"}}`, rr.Body.String())
}

func TestUpdateUser_EmailConflict(t *testing.T) {
	userSvc := &mockUserService{
		updateUserFn: func(_ context.Context, _ int64, _ models.UserUpdate) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}

	router := newTestRouter(authOK(), userSvc)

	rr := doRequest(t, router, http.MethodPut, "/users/1",
		`{"email":"taken@example.com"}`, bearer)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.JSONEq(t, `{"status":"fail","data":{"message":"Email en uso"}}`, rr.Body.String())
}

func TestUpdateUser_EmptyPassword(t *testing.T) {
	userSvc := &mockUserService{
		updateUserFn: func(_ context.Context, _ int64, _ models.UserUpdate) (models.User, error) {
			return models.User{}, service.ErrInvalidDataProvided
		},
	}

	router := newTestRouter(authOK(), userSvc)

	rr := doRequest(t, router, http.MethodPut, "/users/1", `{"password":""}`, bearer)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDeleteUser_Success(t *testing.T) {
	userSvc := &mockUserService{
		deleteUserFn: func(_ context.Context, id int64) (bool, error) {
			assert.Equal(t, int64(1), id)
			return true, nil
		},
	}

	router := newTestRouter(authOK(), userSvc)

	rr := doRequest(t, router, http.MethodDelete, "/users/1", "", bearer)

	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestDeleteUser_NotFound(t *testing.T) {
	userSvc := &mockUserService{
		deleteUserFn: func(_ context.Context, _ int64) (bool, error) {
			return false, nil
		},
	}

	router := newTestRouter(authOK(), userSvc)

	rr := doRequest(t, router, http.MethodDelete, "/users/9999", "", bearer)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"status":"fail","data":{"message":"Usuario no encontrado"}}`, rr.Body.String())
}
