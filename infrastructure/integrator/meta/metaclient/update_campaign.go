package metaclient

import (
	"fmt"
	"net/url"
	"strconv"
)

// UpdateCampaign espelha no Meta os campos alterados localmente
func (c *MetaClient) UpdateCampaign(accessToken, campaignID string, fields UpdateCampaignFields) error {
	params := url.Values{}

	if fields.Name != nil {
		params.Add("name", *fields.Name)
	}

	if fields.BudgetCents != nil {
		params.Add("daily_budget", strconv.FormatInt(*fields.BudgetCents, 10))
	}

	if fields.Status != nil {
		params.Add("status", *fields.Status)
	}

	if len(params) == 0 {
		return nil
	}

	params.Add("access_token", accessToken)

	endpoint := fmt.Sprintf("%s/%s", c.Cfg.Meta.URL, campaignID)

	if _, err := c.postForm(endpoint, params); err != nil {
		return fmt.Errorf("erro ao atualizar campanha %s no Meta: %w", campaignID, err)
	}

	return nil
}
