package http

// User-facing response messages. The wording is part of the API contract and
// must not change: clients match on these strings.
const (
	msgNoToken            = "No token provided"
	msgInvalidTokenFormat = "Invalid token format. Expected: Bearer <token>"
	msgTokenExpired       = "Token expired"
	msgInvalidToken       = "Invalid token"

	msgInvalidCredentials = "Invalid credentials"
	msgEmailInUse         = "Email en uso"
	msgUserNotFound       = "Usuario no encontrado"

	msgInvalidJSON   = "Invalid JSON was passed"
	msgInvalidData   = "invalid data provided"
	msgInternalError = "Internal server error"
)
