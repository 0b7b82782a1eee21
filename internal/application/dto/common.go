package dto

// MessageResponse cuerpo estándar de la API: un objeto con "message".
// Se usa tanto para éxitos como para errores (no hay campo de código;
// el estado HTTP es el único discriminador).
type MessageResponse struct {
	Message string `json:"message"`
}
