package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/epadrino/proyecto-api/internal/logger"
	"github.com/epadrino/proyecto-api/internal/service"
	"github.com/epadrino/proyecto-api/internal/utils"
)

const bearerPrefix = "Bearer "

// auth guards protected routes. It expects an `Authorization: Bearer <token>`
// header, validates the token and injects the authenticated user's ID and
// email into the request context.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Msg("authorization header is missing")
			writeFail(w, r, msgNoToken, http.StatusUnauthorized)
			return
		}

		if !strings.HasPrefix(authHeader, bearerPrefix) {
			log.Debug().Msg("authorization header has no bearer prefix")
			writeFail(w, r, msgInvalidTokenFormat, http.StatusUnauthorized)
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))

		token, err := h.services.AuthService.ParseToken(r.Context(), tokenString)
		if err != nil {
			if errors.Is(err, service.ErrTokenIsExpired) {
				log.Debug().Msg("token is expired")
				writeFail(w, r, msgTokenExpired, http.StatusUnauthorized)
				return
			}

			log.Debug().Err(err).Msg("token validation failed")
			writeFail(w, r, msgInvalidToken, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, token.UserID)
		ctx = context.WithValue(ctx, utils.EmailCtxKey, token.Email)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
