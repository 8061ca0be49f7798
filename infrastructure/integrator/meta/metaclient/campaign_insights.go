package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/campaign-manager-api/infrastructure/integrator/meta/domain"
)

type insightsResponse struct {
	Data   []metadomain.CampaignInsight `json:"data"`
	Paging metadomain.Paging            `json:"paging"`
}

// GetCampaignInsights busca as métricas da campanha no intervalo informado.
// Quando a Graph API não retorna nenhuma linha, devolve um insight zerado.
func (c *MetaClient) GetCampaignInsights(accessToken, campaignID string, since, until time.Time) (*metadomain.CampaignInsight, error) {
	timeRange := fmt.Sprintf(`{"since":"%s","until":"%s"}`, since.Format(time.DateOnly), until.Format(time.DateOnly))

	params := url.Values{}
	params.Add("fields", "campaign_id,reach,impressions,clicks,spend,actions")
	params.Add("time_range", timeRange)
	params.Add("access_token", accessToken)

	endpoint := fmt.Sprintf("%s/%s/insights?%s", c.Cfg.Meta.URL, campaignID, params.Encode())

	resp, err := c.httpClient.Get(endpoint)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}

	body, err := c.handleResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar insights da campanha %s: %w", campaignID, err)
	}

	var response insightsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar os insights da campanha")
		return nil, err
	}

	if len(response.Data) == 0 {
		return &metadomain.CampaignInsight{CampaignID: campaignID}, nil
	}

	return &response.Data[0], nil
}
