package metadomain

// AdInsightRow é uma linha de insights no nível de anúncio retornada pela
// Graph API com time_increment=1 (uma linha por anúncio e dia). Os campos
// numéricos chegam como string e são convertidos pelo integrador.
type AdInsightRow struct {
	AccountName       string `json:"account_name"`
	CampaignName      string `json:"campaign_name"`
	AdsetName         string `json:"adset_name"`
	AdName            string `json:"ad_name"`
	DateStart         string `json:"date_start"`
	DateStop          string `json:"date_stop"`
	Impressions       string `json:"impressions"`
	Clicks            string `json:"clicks"`
	Spend             string `json:"spend"`
	CPC               string `json:"cpc"`
	CPM               string `json:"cpm"`
	CTR               string `json:"ctr"`
	Frequency         string `json:"frequency"`
	UniqueCTR         string `json:"unique_ctr"`
	Conversions       string `json:"conversions"`
	CostPerConversion string `json:"cost_per_conversion"`
	UniqueConversions string `json:"unique_conversions"`
}

// InsightFields é a lista de campos solicitada à API, na ordem do schema da
// tabela analítica
const InsightFields = "account_name,campaign_name,adset_name,ad_name," +
	"impressions,clicks,spend,cpc,cpm,ctr,frequency,unique_ctr," +
	"conversions,cost_per_conversion,unique_conversions"

// InsightsPage é uma página da resposta paginada de insights
type InsightsPage struct {
	Data   []AdInsightRow `json:"data"`
	Paging Paging         `json:"paging"`
}

// Paging carrega os cursores de paginação da Graph API
type Paging struct {
	Next     string  `json:"next,omitempty"`
	Previous string  `json:"previous,omitempty"`
	Cursors  Cursors `json:"cursors"`
}

type Cursors struct {
	Before string `json:"before,omitempty"`
	After  string `json:"after,omitempty"`
}
