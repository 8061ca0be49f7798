package metadomain

import (
	"strconv"

	"github.com/sirupsen/logrus"
)

// Action é um par (tipo de ação, valor) retornado nos insights
type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// CampaignInsight é o saco de métricas bruto da Graph API. Os campos
// numéricos chegam como strings anuláveis e precisam de normalização.
type CampaignInsight struct {
	CampaignID  string   `json:"campaign_id"`
	DateStart   string   `json:"date_start"`
	DateStop    string   `json:"date_stop"`
	Reach       string   `json:"reach"`
	Impressions string   `json:"impressions"`
	Clicks      string   `json:"clicks"`
	Spend       string   `json:"spend"`
	Actions     []Action `json:"actions"`
}

// GetLeads extrai a contagem de leads da lista de ações
func (c *CampaignInsight) GetLeads() int {
	for i := range c.Actions {
		action := c.Actions[i]

		if action.ActionType == "lead" {
			value, err := strconv.Atoi(action.Value)
			if err != nil {
				logrus.WithError(err).Error("Erro ao converter valor da ação de lead")
				return 0
			}

			return value
		}
	}

	return 0
}

// ParseInt normaliza um campo numérico textual; vazio ou inválido vira zero
func ParseInt(raw string) int {
	if raw == "" {
		return 0
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		logrus.WithField("value", raw).Warn("Erro ao converter métrica inteira, assumindo zero")
		return 0
	}

	return value
}

// ParseFloat normaliza um campo monetário textual; vazio ou inválido vira zero
func ParseFloat(raw string) float64 {
	if raw == "" {
		return 0
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		logrus.WithField("value", raw).Warn("Erro ao converter métrica decimal, assumindo zero")
		return 0
	}

	return value
}
