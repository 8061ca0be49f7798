package aiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	aidomain "github.com/vfg2006/campaign-manager-api/infrastructure/integrator/assistant/domain"
	"github.com/vfg2006/campaign-manager-api/internal/config"
)

type Client interface {
	Generate(ctx context.Context, req aidomain.GenerateRequest) (*aidomain.GenerateResponse, error)
	Suggest(ctx context.Context, req aidomain.SuggestRequest) (*aidomain.SuggestResponse, error)
	QueryRAG(ctx context.Context, req aidomain.RAGQueryRequest) (*aidomain.RAGQueryResponse, error)
	Chat(ctx context.Context, req aidomain.ChatRequest) (*aidomain.ChatResponse, error)
}

type AIClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.Assistant.TimeoutSeconds) * time.Second

	return &AIClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}

func (c *AIClient) Generate(ctx context.Context, req aidomain.GenerateRequest) (*aidomain.GenerateResponse, error) {
	var response aidomain.GenerateResponse
	if err := c.postJSON(ctx, "/generate", req, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

func (c *AIClient) Suggest(ctx context.Context, req aidomain.SuggestRequest) (*aidomain.SuggestResponse, error) {
	var response aidomain.SuggestResponse
	if err := c.postJSON(ctx, "/suggest", req, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

func (c *AIClient) QueryRAG(ctx context.Context, req aidomain.RAGQueryRequest) (*aidomain.RAGQueryResponse, error) {
	var response aidomain.RAGQueryResponse
	if err := c.postJSON(ctx, "/rag/query", req, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

func (c *AIClient) Chat(ctx context.Context, req aidomain.ChatRequest) (*aidomain.ChatResponse, error) {
	var response aidomain.ChatResponse
	if err := c.postJSON(ctx, "/chat", req, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

// postJSON monta a URL do serviço de IA, envia o corpo como JSON e
// decodifica a resposta no destino informado.
func (c *AIClient) postJSON(ctx context.Context, endpointPath string, body interface{}, out interface{}) error {
	endpoint, err := url.Parse(c.config.Assistant.URL)
	if err != nil {
		return fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, endpointPath)

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("erro ao serializar o corpo da requisição: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("serviço de IA respondeu com status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return nil
}
