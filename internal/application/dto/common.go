package dto

// MaxPageSize tope para pageSize en listados filtrados. El contrato original
// no fijaba límite; se acota para no permitir páginas arbitrariamente grandes.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
