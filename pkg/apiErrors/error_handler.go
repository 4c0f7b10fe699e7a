package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro da API de operação
const (
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrSyncInProgress    = "SRV_004" // Sincronização já em andamento
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrDatabaseOperation: http.StatusInternalServerError,
	ErrSyncInProgress:    http.StatusConflict,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError escreve um erro padronizado na resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, ok := httpStatusMap[code]
	if !ok {
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(APIError{
		Code:    code,
		Message: message,
		Details: details,
	})
}
