package domain

import (
	"time"

	"github.com/vfg2006/campaign-manager-api/pkg/utils"
)

// PerformanceMetrics agrega as métricas brutas e derivadas de um dia de campanha
type PerformanceMetrics struct {
	Reach       int     `json:"reach"`
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	Leads       int     `json:"leads"`
	Spend       float64 `json:"spend"`
	CPM         float64 `json:"cpm"`
	CPC         float64 `json:"cpc"`
	CPL         float64 `json:"cpl"`
}

// CampaignPerformance é o snapshot diário de métricas de uma campanha.
// Existe no máximo uma linha por (campaign_id, date).
type CampaignPerformance struct {
	ID         string    `json:"id"`
	CampaignID string    `json:"campaign_id"`
	Date       time.Time `json:"date"`
	PerformanceMetrics
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ComputeRates calcula cpm/cpc/cpl a partir das métricas brutas.
// Denominador zero resulta em taxa zero, nunca em infinito ou NaN.
func (m *PerformanceMetrics) ComputeRates() {
	m.CPM = safeRate(m.Spend, m.Impressions, 1000)
	m.CPC = safeRate(m.Spend, m.Clicks, 1)
	m.CPL = safeRate(m.Spend, m.Leads, 1)
}

func safeRate(spend float64, denominator int, scale float64) float64 {
	if denominator == 0 {
		return 0
	}

	return utils.RoundWithTwoDecimalPlace(spend / float64(denominator) * scale)
}
