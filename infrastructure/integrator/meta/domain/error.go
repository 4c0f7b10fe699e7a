package metadomain

import "fmt"

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string      `json:"message"`
	Type         string      `json:"type"`
	Code         int         `json:"code"`
	ErrorSubcode int         `json:"error_subcode,omitempty"`
	FBTraceID    string      `json:"fbtrace_id"`
	ErrorData    interface{} `json:"error_data,omitempty"`
}

// APIError é o erro tipado devolvido quando a Graph API responde com o
// envelope de erro. Distingue uma falha de busca de um resultado vazio.
type APIError struct {
	StatusCode int
	Details    ErrorDetails
}

func (e *APIError) Error() string {
	return fmt.Sprintf(
		"meta api error (status %d, code %d, subcode %d): %s",
		e.StatusCode, e.Details.Code, e.Details.ErrorSubcode, e.Details.Message,
	)
}

// IsTokenExpired verifica se o erro é de token expirado
func (e *APIError) IsTokenExpired() bool {
	// O código 190 representa "token expirado" nas respostas da API do Meta
	// Possíveis subcódigos relacionados a problemas de token: 460, 463, 467
	return e.Details.Code == 190 ||
		(e.Details.Type == "OAuthException" && (e.Details.ErrorSubcode == 460 || e.Details.ErrorSubcode == 463 || e.Details.ErrorSubcode == 467))
}

// IsRateLimited verifica se o erro é de limite de requisições
func (e *APIError) IsRateLimited() bool {
	// Códigos 4, 17 e 32 são limites de aplicação/usuário; 613 é limite customizado
	return e.Details.Code == 4 || e.Details.Code == 17 || e.Details.Code == 32 || e.Details.Code == 613
}
