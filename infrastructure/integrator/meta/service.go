package meta

import (
	"math"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/campaign-manager-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/campaign-manager-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/campaign-manager-api/internal/config"
	"github.com/vfg2006/campaign-manager-api/internal/domain"
)

// Integrator é a fachada de sincronização com a plataforma de anúncios do Meta
type Integrator interface {
	CreateCampaign(accessToken, adAccountID string, req *domain.CreateCampaignRequest) (*metadomain.CreateCampaignResult, error)
	UpdateCampaign(accessToken, metaCampaignID string, req *domain.UpdateCampaignRequest) error
	DeleteCampaign(accessToken, metaCampaignID string) error
	GetDailyPerformance(accessToken, metaCampaignID string, date time.Time) (*domain.PerformanceMetrics, error)
}

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// CreateCampaign traduz a especificação do produto para o vocabulário da
// Graph API e cria campanha + ad set remotos, ambos pausados.
func (s *MetaIntegrator) CreateCampaign(accessToken, adAccountID string, req *domain.CreateCampaignRequest) (*metadomain.CreateCampaignResult, error) {
	spec := metaclient.CampaignSpec{
		Name:             req.Name,
		Objective:        mapObjective(req.Objective),
		OptimizationGoal: mapOptimizationGoal(req.Objective),
		BudgetCents:      toCents(req.Budget),
	}

	if req.TargetAudience != nil && !req.TargetAudience.IsEmpty() {
		spec.Targeting = req.TargetAudience.Data
	}

	result, err := s.Client.CreateCampaign(accessToken, adAccountID, spec)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"ad_account_id": adAccountID,
			"name":          req.Name,
			"error":         err.Error(),
		}).Error("meta: falha ao criar campanha remota")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"meta_campaign_id": result.CampaignID,
		"meta_adset_id":    result.AdSetID,
	}).Info("meta: campanha criada na plataforma")

	return result, nil
}

// UpdateCampaign propaga para a campanha remota apenas os campos presentes
func (s *MetaIntegrator) UpdateCampaign(accessToken, metaCampaignID string, req *domain.UpdateCampaignRequest) error {
	fields := metaclient.UpdateCampaignFields{
		Name: req.Name,
	}

	if req.Budget != nil {
		cents := toCents(*req.Budget)
		fields.BudgetCents = &cents
	}

	if req.Status != nil {
		status := string(*req.Status)
		fields.Status = &status
	}

	if fields.Name == nil && fields.BudgetCents == nil && fields.Status == nil {
		return nil
	}

	return s.Client.UpdateCampaign(accessToken, metaCampaignID, fields)
}

func (s *MetaIntegrator) DeleteCampaign(accessToken, metaCampaignID string) error {
	return s.Client.DeleteCampaign(accessToken, metaCampaignID)
}

// GetDailyPerformance busca as métricas das últimas 24 horas anteriores à
// data informada e as normaliza com as taxas derivadas já calculadas.
func (s *MetaIntegrator) GetDailyPerformance(accessToken, metaCampaignID string, date time.Time) (*domain.PerformanceMetrics, error) {
	since := date.AddDate(0, 0, -1)

	insight, err := s.Client.GetCampaignInsights(accessToken, metaCampaignID, since, date)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"meta_campaign_id": metaCampaignID,
			"error":            err.Error(),
		}).Error("meta: falha ao buscar insights da campanha")
		return nil, err
	}

	return NormalizePerformance(insight), nil
}

// NormalizePerformance converte o saco de métricas textual da Graph API em
// métricas numéricas do domínio, com cpm/cpc/cpl derivados.
func NormalizePerformance(insight *metadomain.CampaignInsight) *domain.PerformanceMetrics {
	metrics := &domain.PerformanceMetrics{
		Reach:       metadomain.ParseInt(insight.Reach),
		Impressions: metadomain.ParseInt(insight.Impressions),
		Clicks:      metadomain.ParseInt(insight.Clicks),
		Leads:       insight.GetLeads(),
		Spend:       metadomain.ParseFloat(insight.Spend),
	}

	metrics.ComputeRates()

	return metrics
}

func mapObjective(objective domain.CampaignObjective) string {
	if mapped, ok := metadomain.ObjectiveToMetaObjective[string(objective)]; ok {
		return mapped
	}

	return metadomain.DefaultMetaObjective
}

func mapOptimizationGoal(objective domain.CampaignObjective) string {
	if mapped, ok := metadomain.ObjectiveToOptimizationGoal[string(objective)]; ok {
		return mapped
	}

	return metadomain.DefaultOptimizationGoal
}

// toCents converte o orçamento em reais/dólares para centavos inteiros
func toCents(budget float64) int64 {
	return int64(math.Round(budget * 100))
}
