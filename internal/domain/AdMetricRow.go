package domain

import (
	"time"
)

// AdMetricRow representa o desempenho diário de um anúncio, uma linha por
// (anúncio, data) na tabela analítica. A data é a chave de particionamento.
type AdMetricRow struct {
	AccountName       string    `json:"account_name"`
	Campaign          string    `json:"campaign"`
	AdsetName         string    `json:"adset_name"`
	AdName            string    `json:"ad_name"`
	Date              time.Time `json:"date"`
	Impressions       int       `json:"impressions"`
	Clicks            int       `json:"clicks"`
	Spend             float64   `json:"spend"`
	CPC               float64   `json:"cpc"`
	CPM               float64   `json:"cpm"`
	CTR               float64   `json:"ctr"`
	Frequency         float64   `json:"frequency"`
	UniqueCTR         float64   `json:"unique_ctr"`
	Conversions       int       `json:"conversions"`
	CostPerConversion float64   `json:"cost_per_conversion"`
	UniqueConversions int       `json:"unique_conversions"`
}
