package domain

import (
	"time"
)

// SyncResult resume uma execução do orquestrador de sincronização
type SyncResult struct {
	RunID           string    `json:"run_id"`
	StartedAt       time.Time `json:"started_at"`
	FinishedAt      time.Time `json:"finished_at"`
	RangesPlanned   int       `json:"ranges_planned"`
	RangesProcessed int       `json:"ranges_processed"`
	RowsLoaded      int       `json:"rows_loaded"`
	Errors          []error   `json:"-"`
}

// HasErrors informa se algum chunk falhou durante a execução
func (r *SyncResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// ErrorMessages devolve as falhas por chunk em formato serializável
func (r *SyncResult) ErrorMessages() []string {
	msgs := make([]string, 0, len(r.Errors))
	for _, err := range r.Errors {
		msgs = append(msgs, err.Error())
	}
	return msgs
}

// SyncRun é o registro de auditoria de uma execução persistido no banco
type SyncRun struct {
	RunID           string    `json:"run_id"`
	StartedAt       time.Time `json:"started_at"`
	FinishedAt      time.Time `json:"finished_at"`
	RangesProcessed int       `json:"ranges_processed"`
	RowsLoaded      int       `json:"rows_loaded"`
	ErrorCount      int       `json:"error_count"`
	ErrorSummary    string    `json:"error_summary,omitempty"`
}
