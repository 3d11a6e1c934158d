package models

// Response is the uniform JSend-style envelope wrapping every API payload.
//
// Status is one of "success", "fail" or "error". Data carries the payload:
// the requested resource(s) on success, or an object with a "message" field
// when the request failed.
type Response struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`

	// Message is set only for "error" responses, where the failure is a
	// server-side condition rather than a client mistake.
	Message string `json:"message,omitempty"`
}

// Envelope status discriminators.
const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// FailData is the Data payload of a "fail" response.
type FailData struct {
	Message string `json:"message"`
}

// LoginResponse is the Data payload returned by a successful login.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// AboutResponse is the fixed author-info payload served by GET /about.
type AboutResponse struct {
	NombreCompleto string `json:"nombreCompleto"`
	Cedula         string `json:"cedula"`
	Seccion        string `json:"seccion"`
}
