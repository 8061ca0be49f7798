package campaigning

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de campanhas
var (
	// Erros de validação e busca
	ErrCampaignNotFound    = errors.New("campaign not found")
	ErrMetaAccountNotFound = errors.New("meta account not found")

	// Erros de serviços externos
	ErrMetaIntegration = errors.New("error calling Meta API")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")

	// Erros de infraestrutura
	ErrGenerateID     = errors.New("error generating ID")
	ErrEnqueueJob     = errors.New("error enqueueing job")
	ErrAIIntegration  = errors.New("error calling AI service")
	ErrInvalidPayload = errors.New("invalid job payload")
)

// CampaignError é um erro com contexto adicional para campanhas
type CampaignError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	CampaignID string // ID da campanha envolvida (quando aplicável)
	Details    string // Detalhes adicionais
}

func (e *CampaignError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CampaignError) Unwrap() error {
	return e.Err
}

func NewCampaignError(err error, code string, details string) *CampaignError {
	return &CampaignError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewCampaignErrorWithID(err error, code string, campaignID string, details string) *CampaignError {
	return &CampaignError{
		Err:        err,
		Code:       code,
		CampaignID: campaignID,
		Details:    details,
	}
}
