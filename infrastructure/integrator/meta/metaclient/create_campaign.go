package metaclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/campaign-manager-api/infrastructure/integrator/meta/domain"
)

// CreateCampaign cria a campanha e o ad set correspondente na conta de
// anúncios. Ambos nascem pausados por segurança: o usuário ativa quando quiser.
func (c *MetaClient) CreateCampaign(accessToken, adAccountID string, spec CampaignSpec) (*metadomain.CreateCampaignResult, error) {
	campaign, err := c.createRemoteCampaign(accessToken, adAccountID, spec)
	if err != nil {
		return nil, err
	}

	adSet, err := c.createRemoteAdSet(accessToken, adAccountID, campaign.ID, spec)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"ad_account_id":    adAccountID,
			"meta_campaign_id": campaign.ID,
			"error":            err.Error(),
		}).Error("meta: campanha criada mas ad set falhou")
		return nil, err
	}

	return &metadomain.CreateCampaignResult{
		CampaignID: campaign.ID,
		AdSetID:    adSet.ID,
	}, nil
}

func (c *MetaClient) createRemoteCampaign(accessToken, adAccountID string, spec CampaignSpec) (*metadomain.Campaign, error) {
	endpoint := fmt.Sprintf("%s/%s/campaigns", c.Cfg.Meta.URL, adAccountID)

	params := url.Values{}
	params.Add("name", spec.Name)
	params.Add("objective", spec.Objective)
	params.Add("status", "PAUSED") // Campanha nasce pausada por segurança
	params.Add("special_ad_categories", "[]")
	params.Add("access_token", accessToken)

	body, err := c.postForm(endpoint, params)
	if err != nil {
		return nil, err
	}

	var campaign metadomain.Campaign
	if err := json.Unmarshal(body, &campaign); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta de criação de campanha: %w", err)
	}

	return &campaign, nil
}

func (c *MetaClient) createRemoteAdSet(accessToken, adAccountID, campaignID string, spec CampaignSpec) (*metadomain.AdSet, error) {
	endpoint := fmt.Sprintf("%s/%s/adsets", c.Cfg.Meta.URL, adAccountID)

	targeting := "{}"
	if len(spec.Targeting) > 0 {
		raw, err := json.Marshal(spec.Targeting)
		if err != nil {
			return nil, fmt.Errorf("erro ao serializar targeting: %w", err)
		}
		targeting = string(raw)
	}

	params := url.Values{}
	params.Add("name", fmt.Sprintf("%s - Ad Set", spec.Name))
	params.Add("campaign_id", campaignID)
	params.Add("daily_budget", strconv.FormatInt(spec.BudgetCents, 10))
	params.Add("billing_event", "IMPRESSIONS")
	params.Add("optimization_goal", spec.OptimizationGoal)
	params.Add("targeting", targeting)
	params.Add("status", "PAUSED")
	params.Add("access_token", accessToken)

	body, err := c.postForm(endpoint, params)
	if err != nil {
		return nil, err
	}

	var adSet metadomain.AdSet
	if err := json.Unmarshal(body, &adSet); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta de criação de ad set: %w", err)
	}

	return &adSet, nil
}

func (c *MetaClient) postForm(endpoint string, params url.Values) ([]byte, error) {
	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(params.Encode()))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}

	return c.handleResponse(resp)
}
