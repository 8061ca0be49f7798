package domain

import (
	"fmt"
	"time"
)

// CampaignObjective representa o objetivo de uma campanha
type CampaignObjective string

const (
	ObjectiveAwareness     CampaignObjective = "AWARENESS"
	ObjectiveConsideration CampaignObjective = "CONSIDERATION"
	ObjectiveConversions   CampaignObjective = "CONVERSIONS"
	ObjectiveLeads         CampaignObjective = "LEADS"
	ObjectiveSales         CampaignObjective = "SALES"
)

// BudgetType representa o tipo de orçamento da campanha
type BudgetType string

const (
	BudgetDaily    BudgetType = "DAILY"
	BudgetLifetime BudgetType = "LIFETIME"
)

// CampaignStatus representa o status local da campanha
type CampaignStatus string

const (
	CampaignActive  CampaignStatus = "ACTIVE"
	CampaignPaused  CampaignStatus = "PAUSED"
	CampaignDeleted CampaignStatus = "DELETED"
)

type Campaign struct {
	ID             string            `json:"id"`
	UserID         string            `json:"user_id"`
	Name           string            `json:"name"`
	Objective      CampaignObjective `json:"objective"`
	Budget         float64           `json:"budget"`
	BudgetType     BudgetType        `json:"budget_type"`
	TargetAudience *Payload          `json:"target_audience,omitempty"`
	AdCreative     *Payload          `json:"ad_creative,omitempty"`
	MetaAccountID  *string           `json:"meta_account_id,omitempty"`
	MetaCampaignID *string           `json:"meta_campaign_id,omitempty"`
	Status         CampaignStatus    `json:"status"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`

	// Relações carregadas sob demanda pelos repositórios
	MetaAccount  *MetaAccount           `json:"meta_account,omitempty"`
	Performances []*CampaignPerformance `json:"performances,omitempty"`
	Suggestions  []*Suggestion          `json:"suggestions,omitempty"`
}

// CreateCampaignRequest é a especificação enviada pelo usuário para criar uma campanha
type CreateCampaignRequest struct {
	Name           string            `json:"name"`
	Objective      CampaignObjective `json:"objective"`
	Budget         float64           `json:"budget"`
	BudgetType     BudgetType        `json:"budget_type"`
	TargetAudience *Payload          `json:"target_audience,omitempty"`
	AdCreative     *Payload          `json:"ad_creative,omitempty"`
	MetaAccountID  *string           `json:"meta_account_id,omitempty"`
	CreateOnMeta   bool              `json:"create_on_meta"`
}

// UpdateCampaignRequest contém os campos opcionais de atualização de uma campanha
type UpdateCampaignRequest struct {
	Name           *string            `json:"name,omitempty"`
	Objective      *CampaignObjective `json:"objective,omitempty"`
	Budget         *float64           `json:"budget,omitempty"`
	BudgetType     *BudgetType        `json:"budget_type,omitempty"`
	TargetAudience *Payload           `json:"target_audience,omitempty"`
	AdCreative     *Payload           `json:"ad_creative,omitempty"`
	Status         *CampaignStatus    `json:"status,omitempty"`
}

// ValidationError indica um campo inválido em uma requisição
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Validate garante que a especificação da campanha é válida antes de qualquer persistência
func (r *CreateCampaignRequest) Validate() error {
	if r.Name == "" {
		return NewValidationError("name", "nome da campanha é obrigatório")
	}

	if !r.Objective.Valid() {
		return NewValidationError("objective", fmt.Sprintf("objetivo inválido: %s", r.Objective))
	}

	if r.Budget <= 0 {
		return NewValidationError("budget", "orçamento deve ser um valor positivo")
	}

	if !r.BudgetType.Valid() {
		return NewValidationError("budget_type", fmt.Sprintf("tipo de orçamento inválido: %s", r.BudgetType))
	}

	return nil
}

// Validate garante que os campos presentes na atualização são válidos
func (r *UpdateCampaignRequest) Validate() error {
	if r.Name != nil && *r.Name == "" {
		return NewValidationError("name", "nome da campanha não pode ser vazio")
	}

	if r.Objective != nil && !r.Objective.Valid() {
		return NewValidationError("objective", fmt.Sprintf("objetivo inválido: %s", *r.Objective))
	}

	if r.Budget != nil && *r.Budget <= 0 {
		return NewValidationError("budget", "orçamento deve ser um valor positivo")
	}

	if r.BudgetType != nil && !r.BudgetType.Valid() {
		return NewValidationError("budget_type", fmt.Sprintf("tipo de orçamento inválido: %s", *r.BudgetType))
	}

	if r.Status != nil {
		switch *r.Status {
		case CampaignActive, CampaignPaused, CampaignDeleted:
		default:
			return NewValidationError("status", fmt.Sprintf("status inválido: %s", *r.Status))
		}
	}

	return nil
}

func (o CampaignObjective) Valid() bool {
	switch o {
	case ObjectiveAwareness, ObjectiveConsideration, ObjectiveConversions, ObjectiveLeads, ObjectiveSales:
		return true
	}
	return false
}

func (b BudgetType) Valid() bool {
	return b == BudgetDaily || b == BudgetLifetime
}
