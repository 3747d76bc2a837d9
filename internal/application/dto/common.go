package dto

// ErrorResponse cuerpo de error HTTP: código estable legible por máquina en
// "error" y mensaje humano en "message".
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// MessageResponse confirmación simple de una operación.
type MessageResponse struct {
	Message string `json:"message"`
}
