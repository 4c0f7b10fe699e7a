package metaclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-warehouse-sync/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-warehouse-sync/internal/domain"
	"github.com/vfg2006/ads-warehouse-sync/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// pageLimit é o tamanho de página pedido à Graph API
const pageLimit = 500

// GetAdInsights busca os insights diários no nível de anúncio para o
// intervalo de datas, seguindo a paginação até esgotar as páginas.
func (c *MetaClient) GetAdInsights(
	ctx context.Context,
	accountID string,
	dateRange domain.DateRange,
) ([]metadomain.AdInsightRow, error) {
	baseURL := fmt.Sprintf("%s/act_%s/insights", c.Cfg.Meta.URL, accountID)

	timeRange := fmt.Sprintf(
		"{\"since\":\"%s\",\"until\":\"%s\"}",
		dateRange.Start.Format(time.DateOnly),
		dateRange.End.Format(time.DateOnly),
	)

	params := &url.Values{}
	params.Add("fields", metadomain.InsightFields)
	params.Add("level", "ad")
	params.Add("time_increment", "1") // Uma linha por anúncio e dia
	params.Add("time_range", timeRange)
	params.Add("limit", fmt.Sprintf("%d", pageLimit))
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	nextURL := baseURL + "?" + params.Encode()

	allRows := make([]metadomain.AdInsightRow, 0)
	pages := 0

	for nextURL != "" {
		page, err := c.getInsightsPage(ctx, nextURL)
		if err != nil {
			return nil, err
		}

		allRows = append(allRows, page.Data...)
		nextURL = page.Paging.Next
		pages++
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"date_range": dateRange.String(),
		"pages":      pages,
		"rows":       len(allRows),
	}).Debug("Insights do Meta obtidos da API")

	return allRows, nil
}

func (c *MetaClient) getInsightsPage(ctx context.Context, pageURL string) (*metadomain.InsightsPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao fazer a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o corpo da resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &metadomain.APIError{StatusCode: resp.StatusCode}

		var envelope metadomain.ErrorResponse
		if err := json.Unmarshal(body, &envelope); err == nil {
			apiErr.Details = envelope.Error
		}

		logrus.Debugf("Resposta de erro da API do Meta: %s", utils.PrettyJson(body))

		switch {
		case apiErr.IsTokenExpired():
			logrus.WithField("code", apiErr.Details.Code).Error("Token de acesso do Meta expirado ou revogado, renove a credencial")
		case apiErr.IsRateLimited():
			logrus.WithField("code", apiErr.Details.Code).Warn("Limite de requisições da API do Meta atingido")
		}

		return nil, apiErr
	}

	var page metadomain.InsightsPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("erro ao decodificar JSON: %w", err)
	}

	return &page, nil
}
