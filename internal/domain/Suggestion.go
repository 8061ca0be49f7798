package domain

import (
	"fmt"
	"time"
)

// SuggestionType representa a categoria de uma sugestão de otimização
type SuggestionType string

const (
	SuggestionBudgetOptimization    SuggestionType = "BUDGET_OPTIMIZATION"
	SuggestionTargetingOptimization SuggestionType = "TARGETING_OPTIMIZATION"
	SuggestionCreative              SuggestionType = "CREATIVE_SUGGESTION"
	SuggestionCampaignStructure     SuggestionType = "CAMPAIGN_STRUCTURE"
)

// SuggestionStatus representa o estado da sugestão no ciclo de aprovação.
// PENDING é o único estado transicionável; APPROVED e REJECTED são terminais.
type SuggestionStatus string

const (
	SuggestionPending  SuggestionStatus = "PENDING"
	SuggestionApproved SuggestionStatus = "APPROVED"
	SuggestionRejected SuggestionStatus = "REJECTED"
)

type Suggestion struct {
	ID          string           `json:"id"`
	UserID      string           `json:"user_id"`
	CampaignID  *string          `json:"campaign_id,omitempty"`
	Type        SuggestionType   `json:"type"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Action      *Payload         `json:"action,omitempty"`
	AIGenerated bool             `json:"ai_generated"`
	Status      SuggestionStatus `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`

	// Campanha relacionada, carregada sob demanda
	Campaign *Campaign `json:"campaign,omitempty"`
}

// CreateSuggestionRequest é a especificação de criação de uma sugestão
type CreateSuggestionRequest struct {
	Type        SuggestionType `json:"type"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Action      *Payload       `json:"action,omitempty"`
	CampaignID  *string        `json:"campaign_id,omitempty"`
	AIGenerated bool           `json:"ai_generated"`
}

// UpdateSuggestionRequest contém os campos opcionais de atualização de uma sugestão
type UpdateSuggestionRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Action      *Payload `json:"action,omitempty"`
}

func (r *CreateSuggestionRequest) Validate() error {
	if !r.Type.Valid() {
		return NewValidationError("type", fmt.Sprintf("tipo de sugestão inválido: %s", r.Type))
	}

	if r.Title == "" {
		return NewValidationError("title", "título é obrigatório")
	}

	if r.Description == "" {
		return NewValidationError("description", "descrição é obrigatória")
	}

	return nil
}

func (t SuggestionType) Valid() bool {
	switch t {
	case SuggestionBudgetOptimization, SuggestionTargetingOptimization, SuggestionCreative, SuggestionCampaignStructure:
		return true
	}
	return false
}
