package assistant

import (
	"context"

	"github.com/sirupsen/logrus"
	aidomain "github.com/vfg2006/campaign-manager-api/infrastructure/integrator/assistant/domain"
	"github.com/vfg2006/campaign-manager-api/infrastructure/integrator/assistant/aiclient"
	"github.com/vfg2006/campaign-manager-api/internal/config"
	"github.com/vfg2006/campaign-manager-api/internal/domain"
)

// Integrator é a fachada sobre o serviço externo de IA
type Integrator interface {
	SuggestOptimizations(ctx context.Context, campaign *domain.Campaign, metrics *domain.PerformanceMetrics) ([]aidomain.SuggestionDraft, error)
	GenerateText(ctx context.Context, prompt string, promptContext map[string]interface{}) (string, error)
	QueryKnowledgeBase(ctx context.Context, query string, topK int) (*aidomain.RAGQueryResponse, error)
	Chat(ctx context.Context, messages []aidomain.ChatMessage) (*aidomain.ChatMessage, error)
}

type AssistantIntegrator struct {
	cfg    *config.Config
	Client aiclient.Client
}

func New(cfg *config.Config, client aiclient.Client) *AssistantIntegrator {
	return &AssistantIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// SuggestOptimizations envia a campanha e suas métricas para análise e
// devolve os rascunhos de sugestão produzidos pelo modelo.
func (s *AssistantIntegrator) SuggestOptimizations(ctx context.Context, campaign *domain.Campaign, metrics *domain.PerformanceMetrics) ([]aidomain.SuggestionDraft, error) {
	req := aidomain.SuggestRequest{
		CampaignID: campaign.ID,
		Name:       campaign.Name,
		Objective:  string(campaign.Objective),
		Budget:     campaign.Budget,
		Metrics: map[string]interface{}{
			"reach":       metrics.Reach,
			"impressions": metrics.Impressions,
			"clicks":      metrics.Clicks,
			"leads":       metrics.Leads,
			"spend":       metrics.Spend,
			"cpm":         metrics.CPM,
			"cpc":         metrics.CPC,
			"cpl":         metrics.CPL,
		},
	}

	resp, err := s.Client.Suggest(ctx, req)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaign.ID,
			"error":       err.Error(),
		}).Error("assistant: falha ao obter sugestões do serviço de IA")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id": campaign.ID,
		"suggestions": len(resp.Suggestions),
	}).Debug("assistant: sugestões recebidas")

	return resp.Suggestions, nil
}

func (s *AssistantIntegrator) GenerateText(ctx context.Context, prompt string, promptContext map[string]interface{}) (string, error) {
	resp, err := s.Client.Generate(ctx, aidomain.GenerateRequest{
		Prompt:  prompt,
		Context: promptContext,
	})
	if err != nil {
		return "", err
	}

	return resp.Text, nil
}

func (s *AssistantIntegrator) QueryKnowledgeBase(ctx context.Context, query string, topK int) (*aidomain.RAGQueryResponse, error) {
	return s.Client.QueryRAG(ctx, aidomain.RAGQueryRequest{
		Query: query,
		TopK:  topK,
	})
}

func (s *AssistantIntegrator) Chat(ctx context.Context, messages []aidomain.ChatMessage) (*aidomain.ChatMessage, error) {
	resp, err := s.Client.Chat(ctx, aidomain.ChatRequest{Messages: messages})
	if err != nil {
		return nil, err
	}

	return &resp.Message, nil
}
