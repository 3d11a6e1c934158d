package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/epadrino/proyecto-api/models"
)

// Sentinel errors returned by ValidateAndParseJWTToken. Callers can match
// against them with [errors.Is] to map verification failures to distinct
// client-facing messages.
var (
	// ErrTokenExpired is returned when the token's "exp" claim lies in the past.
	ErrTokenExpired = errors.New("token is expired")

	// ErrTokenInvalidSignature is returned when the token parses but its
	// signature does not verify against the sign key.
	ErrTokenInvalidSignature = errors.New("token signature is invalid")

	// ErrTokenMalformed is returned when the token string cannot be parsed
	// as a compact JWS at all.
	ErrTokenMalformed = errors.New("token is malformed")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//   - email:           the account's login identifier
//
// All parameters are required. Returns an error if any of them are empty or zero.
func GenerateJWTToken(issuer string, user models.User, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(user.ID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Email: user.Email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		Token:        token,
		Claims:       claims,
		SignedString: tokenString,
		UserID:       user.ID,
		Email:        user.Email,
	}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence and conversion to int64 UserID
//
// Failures are normalised to the package sentinels so callers can
// distinguish an expired token from a forged or garbled one:
//   - expired "exp" claim → [ErrTokenExpired]
//   - signature mismatch  → [ErrTokenInvalidSignature]
//   - unparseable string  → [ErrTokenMalformed]
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return models.Token{}, fmt.Errorf("%w: %w", ErrTokenExpired, err)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return models.Token{}, fmt.Errorf("%w: %w", ErrTokenInvalidSignature, err)
		case errors.Is(err, jwt.ErrTokenMalformed):
			return models.Token{}, fmt.Errorf("%w: %w", ErrTokenMalformed, err)
		default:
			return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
		}
	}

	if claims.Subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during converting subject to user ID: %w", err)
	}

	return models.Token{
		Token:  token,
		Claims: *claims,
		UserID: userID,
		Email:  claims.Email,
	}, nil
}
