package domain

import (
	"fmt"
	"time"

	"github.com/vfg2006/ads-warehouse-sync/pkg/utils"
)

// DateRange é um intervalo inclusivo de dias calendário [Start, End].
// Start == End representa um único dia.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewDateRange normaliza as extremidades para meia-noite UTC
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: utils.Day(start), End: utils.Day(end)}
}

// SpanDays retorna o número de dias do intervalo
func (r DateRange) SpanDays() int {
	return utils.DaysBetween(r.Start, r.End)
}

// Days enumera os dias do intervalo em ordem crescente
func (r DateRange) Days() []time.Time {
	days := make([]time.Time, 0, r.SpanDays())
	for d := utils.Day(r.Start); !d.After(r.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Contains informa se a data pertence ao intervalo
func (r DateRange) Contains(date time.Time) bool {
	d := utils.Day(date)
	return !d.Before(r.Start) && !d.After(r.End)
}

func (r DateRange) String() string {
	if r.Start.Equal(r.End) {
		return r.Start.Format(time.DateOnly)
	}
	return fmt.Sprintf("%s..%s", r.Start.Format(time.DateOnly), r.End.Format(time.DateOnly))
}
