package models

import (
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload embedded in every issued authentication token.
//
// It extends [jwt.RegisteredClaims] (sub, iss, iat, exp) with the account's
// email so that downstream handlers can identify the caller without a
// database lookup.
type Claims struct {
	jwt.RegisteredClaims

	// Email is the login identifier of the token's subject.
	Email string `json:"email,omitempty"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
//
// UserID and Email are parsed copies of the "sub" and "email" claims,
// populated during issuance or verification so that callers do not repeat
// claim parsing.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// Claims provides access to the embedded claim set.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`

	// Email is the login identifier extracted from the "email" claim.
	Email string `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" claim,
// parses it as a base-10 int64, and returns the result.
func (t *Token) GetUserID() (int64, error) {
	return strconv.ParseInt(t.Claims.Subject, 10, 64)
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
