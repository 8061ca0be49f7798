package metaclient

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
)

// DeleteCampaign remove a campanha remota
func (c *MetaClient) DeleteCampaign(accessToken, campaignID string) error {
	params := url.Values{}
	params.Add("access_token", accessToken)

	endpoint := fmt.Sprintf("%s/%s?%s", c.Cfg.Meta.URL, campaignID, params.Encode())

	req, err := http.NewRequest(http.MethodDelete, endpoint, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return err
	}

	if _, err := c.handleResponse(resp); err != nil {
		return fmt.Errorf("erro ao remover campanha %s no Meta: %w", campaignID, err)
	}

	return nil
}
