package assisting

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-manager-api/infrastructure/integrator/assistant"
	aidomain "github.com/vfg2006/campaign-manager-api/infrastructure/integrator/assistant/domain"
	"github.com/vfg2006/campaign-manager-api/internal/domain"
	"github.com/vfg2006/campaign-manager-api/pkg/apiErrors"
)

var ErrAIService = errors.New("error calling AI service")

// GenerateRequest é a requisição de geração de texto feita pelo usuário
type GenerateRequest struct {
	Prompt  string   `json:"prompt"`
	Context *Payload `json:"context,omitempty"`
}

// Payload é um alias local para o payload opaco do domínio
type Payload = domain.Payload

// RAGRequest é uma pergunta sobre a base de conhecimento de marketing
type RAGRequest struct {
	Query string `json:"query"`
	TopK  int    `json:"top_k,omitempty"`
}

// ChatRequest envia a conversa corrente ao assistente
type ChatRequest struct {
	Messages []aidomain.ChatMessage `json:"messages"`
}

type AssistantService interface {
	Generate(ctx context.Context, request *GenerateRequest) (string, error)
	QueryKnowledgeBase(ctx context.Context, request *RAGRequest) (*aidomain.RAGQueryResponse, error)
	Chat(ctx context.Context, request *ChatRequest) (*aidomain.ChatMessage, error)
}

type Service struct {
	assistantService assistant.Integrator
}

func NewService(assistantService assistant.Integrator) AssistantService {
	return &Service{
		assistantService: assistantService,
	}
}

func (s *Service) Generate(ctx context.Context, request *GenerateRequest) (string, error) {
	if request.Prompt == "" {
		return "", domain.NewValidationError("prompt", "prompt é obrigatório")
	}

	var promptContext map[string]interface{}
	if request.Context != nil && !request.Context.IsEmpty() {
		promptContext = request.Context.Data
	}

	text, err := s.assistantService.GenerateText(ctx, request.Prompt, promptContext)
	if err != nil {
		logrus.WithError(err).Error("Error generating text with AI service")
		return "", newAssistantError(err)
	}

	return text, nil
}

func (s *Service) QueryKnowledgeBase(ctx context.Context, request *RAGRequest) (*aidomain.RAGQueryResponse, error) {
	if request.Query == "" {
		return nil, domain.NewValidationError("query", "consulta é obrigatória")
	}

	response, err := s.assistantService.QueryKnowledgeBase(ctx, request.Query, request.TopK)
	if err != nil {
		logrus.WithError(err).Error("Error querying AI knowledge base")
		return nil, newAssistantError(err)
	}

	return response, nil
}

func (s *Service) Chat(ctx context.Context, request *ChatRequest) (*aidomain.ChatMessage, error) {
	if len(request.Messages) == 0 {
		return nil, domain.NewValidationError("messages", "pelo menos uma mensagem é obrigatória")
	}

	message, err := s.assistantService.Chat(ctx, request.Messages)
	if err != nil {
		logrus.WithError(err).Error("Error chatting with AI service")
		return nil, newAssistantError(err)
	}

	return message, nil
}

// AssistantError carrega o código de erro da API para falhas do serviço de IA
type AssistantError struct {
	Err  error
	Code string
}

func (e *AssistantError) Error() string {
	return ErrAIService.Error() + ": " + e.Err.Error()
}

func (e *AssistantError) Unwrap() error {
	return e.Err
}

func newAssistantError(err error) *AssistantError {
	return &AssistantError{
		Err:  err,
		Code: apiErrors.ErrExternalService,
	}
}
