package metaclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/ads-warehouse-sync/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-warehouse-sync/internal/config"
	"github.com/vfg2006/ads-warehouse-sync/internal/domain"
)

func testClient(serverURL string) Client {
	return NewClient(&config.Config{
		Meta: config.Meta{
			URL:         serverURL,
			AccessToken: "token-de-teste",
		},
	})
}

func testRange() domain.DateRange {
	start, _ := time.Parse(time.DateOnly, "2024-07-01")
	end, _ := time.Parse(time.DateOnly, "2024-07-07")
	return domain.NewDateRange(start, end)
}

func TestGetAdInsights_DecodificaPaginaDeInsights(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/act_123/insights", r.URL.Path)
		assert.Equal(t, "ad", r.URL.Query().Get("level"))
		assert.Equal(t, "1", r.URL.Query().Get("time_increment"))
		assert.Equal(t, "token-de-teste", r.URL.Query().Get("access_token"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": [
				{
					"account_name": "Loja Exemplo",
					"campaign_name": "Campanha Verão",
					"ad_name": "Anúncio Praia",
					"date_start": "2024-07-03",
					"date_stop": "2024-07-03",
					"impressions": "1500",
					"clicks": "42",
					"spend": "123.45"
				}
			],
			"paging": {"cursors": {"before": "a", "after": "b"}}
		}`))
	}))
	defer srv.Close()

	client := testClient(srv.URL)

	rows, err := client.GetAdInsights(context.Background(), "123", testRange())

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Loja Exemplo", rows[0].AccountName)
	assert.Equal(t, "2024-07-03", rows[0].DateStart)
	assert.Equal(t, "123.45", rows[0].Spend)
}

func TestGetAdInsights_SegueAPaginacao(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if r.URL.Path == "/pagina2" {
			_, _ = w.Write([]byte(`{"data": [{"ad_name": "Segundo", "date_start": "2024-07-02"}], "paging": {}}`))
			return
		}

		_, _ = w.Write([]byte(`{
			"data": [{"ad_name": "Primeiro", "date_start": "2024-07-01"}],
			"paging": {"next": "` + srv.URL + `/pagina2"}
		}`))
	}))
	defer srv.Close()

	client := testClient(srv.URL)

	rows, err := client.GetAdInsights(context.Background(), "123", testRange())

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Primeiro", rows[0].AdName)
	assert.Equal(t, "Segundo", rows[1].AdName)
}

func TestGetAdInsights_ClassificaTokenExpirado(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{
			"error": {
				"message": "Error validating access token: Session has expired",
				"type": "OAuthException",
				"code": 190,
				"fbtrace_id": "AbC123"
			}
		}`))
	}))
	defer srv.Close()

	client := testClient(srv.URL)

	rows, err := client.GetAdInsights(context.Background(), "123", testRange())

	assert.Nil(t, rows)

	var apiErr *metadomain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.True(t, apiErr.IsTokenExpired())
	assert.False(t, apiErr.IsRateLimited())
}

func TestGetAdInsights_ClassificaLimiteDeRequisicoes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{
			"error": {
				"message": "User request limit reached",
				"type": "OAuthException",
				"code": 17,
				"fbtrace_id": "AbC456"
			}
		}`))
	}))
	defer srv.Close()

	client := testClient(srv.URL)

	_, err := client.GetAdInsights(context.Background(), "123", testRange())

	var apiErr *metadomain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsRateLimited())
	assert.False(t, apiErr.IsTokenExpired())
}
