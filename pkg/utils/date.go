package utils

import "time"

// ParseDate converte uma string YYYY-MM-DD em uma data normalizada
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// Day normaliza um instante para a meia-noite UTC do mesmo dia calendário.
// Todas as comparações de cobertura usam datas normalizadas.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Yesterday retorna o dia calendário anterior a uma referência
func Yesterday(ref time.Time) time.Time {
	return Day(ref).AddDate(0, 0, -1)
}

// DaysBetween retorna o número de dias calendário do intervalo inclusivo [start, end]
func DaysBetween(start, end time.Time) int {
	return int(Day(end).Sub(Day(start)).Hours()/24) + 1
}
