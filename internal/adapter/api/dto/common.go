package dto

// ErrorResponse representa a estrutura de resposta para erros
type ErrorResponse struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// NewErrorResponse cria uma nova resposta de erro
func NewErrorResponse(code int, message string, errors ...string) ErrorResponse {
	return ErrorResponse{
		Code:    code,
		Message: message,
		Errors:  errors,
	}
}
