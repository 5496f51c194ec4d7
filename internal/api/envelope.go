package api

// Response es el sobre uniforme de toda llamada al backend, el equivalente
// tipado de {success, data?, message?}. Success es verdadero solo cuando el
// HTTP respondió 2xx y el cuerpo se pudo interpretar; Message trae el texto
// del servidor cuando existe, o un error genérico de conexión.
type Response[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func failure[T any](message string) Response[T] {
	return Response[T]{Success: false, Message: message}
}
