package metaclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/campaign-manager-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/campaign-manager-api/internal/config"
)

// CampaignSpec é a especificação já mapeada para o vocabulário da Graph API
type CampaignSpec struct {
	Name             string
	Objective        string
	OptimizationGoal string
	BudgetCents      int64
	Targeting        map[string]interface{}
}

// UpdateCampaignFields contém os campos remotos a atualizar; nil significa inalterado
type UpdateCampaignFields struct {
	Name        *string
	BudgetCents *int64
	Status      *string
}

type Client interface {
	CreateCampaign(accessToken, adAccountID string, spec CampaignSpec) (*metadomain.CreateCampaignResult, error)
	UpdateCampaign(accessToken, campaignID string, fields UpdateCampaignFields) error
	DeleteCampaign(accessToken, campaignID string) error
	GetCampaignInsights(accessToken, campaignID string, since, until time.Time) (*metadomain.CampaignInsight, error)
}

type MetaClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// handleResponse lê o corpo e converte respostas de erro da Graph API em erros Go
func (c *MetaClient) handleResponse(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta da API do Meta: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var errResponse metadomain.ErrorResponse
		if err := json.Unmarshal(body, &errResponse); err == nil && errResponse.Error.Message != "" {
			logrus.WithFields(logrus.Fields{
				"code":        errResponse.Error.Code,
				"subcode":     errResponse.Error.ErrorSubcode,
				"fbtrace_id":  errResponse.Error.FBTraceID,
				"token_issue": errResponse.IsTokenExpired(),
			}).Error("meta: erro retornado pela Graph API")

			return nil, fmt.Errorf("meta API error (%d): %s", errResponse.Error.Code, errResponse.Error.Message)
		}

		return nil, fmt.Errorf("meta API respondeu com status %s", resp.Status)
	}

	return body, nil
}
