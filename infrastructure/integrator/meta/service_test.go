package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	metadomain "github.com/vfg2006/campaign-manager-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/campaign-manager-api/internal/domain"
)

func TestNormalizePerformance(t *testing.T) {
	tests := []struct {
		name     string
		insight  *metadomain.CampaignInsight
		expected *domain.PerformanceMetrics
	}{
		{
			name: "Métricas completas - taxas derivadas calculadas",
			insight: &metadomain.CampaignInsight{
				CampaignID:  "meta_789",
				Reach:       "1000",
				Impressions: "5000",
				Clicks:      "100",
				Spend:       "250.00",
				Actions: []metadomain.Action{
					{ActionType: "lead", Value: "10"},
					{ActionType: "link_click", Value: "100"},
				},
			},
			expected: &domain.PerformanceMetrics{
				Reach:       1000,
				Impressions: 5000,
				Clicks:      100,
				Leads:       10,
				Spend:       250.0,
				CPM:         50.0,
				CPC:         2.5,
				CPL:         25.0,
			},
		},
		{
			name: "Campanha sem entrega - denominadores zero resultam em taxas zero",
			insight: &metadomain.CampaignInsight{
				CampaignID: "meta_789",
				Spend:      "42.00",
			},
			expected: &domain.PerformanceMetrics{
				Spend: 42.0,
				CPM:   0,
				CPC:   0,
				CPL:   0,
			},
		},
		{
			name: "Campos textuais inválidos - normalizados para zero",
			insight: &metadomain.CampaignInsight{
				CampaignID:  "meta_789",
				Reach:       "n/a",
				Impressions: "",
				Clicks:      "abc",
				Spend:       "not-a-number",
			},
			expected: &domain.PerformanceMetrics{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics := NormalizePerformance(tt.insight)

			assert.Equal(t, tt.expected, metrics)
		})
	}
}

func TestMapObjective(t *testing.T) {
	tests := []struct {
		name      string
		objective domain.CampaignObjective
		expected  string
	}{
		{
			name:      "Objetivo conhecido mapeia para o vocabulário da Graph API",
			objective: domain.ObjectiveLeads,
			expected:  metadomain.ObjectiveToMetaObjective["LEADS"],
		},
		{
			name:      "Objetivo desconhecido cai no default",
			objective: domain.CampaignObjective("SOMETHING_ELSE"),
			expected:  metadomain.DefaultMetaObjective,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, mapObjective(tt.objective))
		})
	}
}

func TestToCents(t *testing.T) {
	tests := []struct {
		name     string
		budget   float64
		expected int64
	}{
		{name: "Valor inteiro", budget: 150, expected: 15000},
		{name: "Valor com centavos", budget: 150.50, expected: 15050},
		{name: "Arredondamento de fração de centavo", budget: 10.999, expected: 1100},
		{name: "Resíduo binário de ponto flutuante", budget: 19.99, expected: 1999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, toCents(tt.budget))
		})
	}
}
