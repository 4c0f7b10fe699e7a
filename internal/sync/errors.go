package sync

import (
	"fmt"
	"time"

	"github.com/vfg2006/ads-warehouse-sync/internal/domain"
)

// InvalidRangeError indica um intervalo solicitado com início depois do fim.
// É rejeitado antes de qualquer I/O.
type InvalidRangeError struct {
	Start time.Time
	End   time.Time
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf(
		"intervalo inválido: data inicial %s posterior à data final %s",
		e.Start.Format(time.DateOnly),
		e.End.Format(time.DateOnly),
	)
}

// ConfigurationError indica um parâmetro de configuração inválido, detectado
// antes do início da execução.
type ConfigurationError struct {
	Param   string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuração inválida (%s): %s", e.Param, e.Message)
}

// StorageError é a falha de escrita de um chunk. Recuperável no nível do
// chunk: a execução registra e segue para o próximo intervalo.
type StorageError struct {
	Range domain.DateRange
	Err   error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("erro de armazenamento no intervalo %s: %v", e.Range, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
