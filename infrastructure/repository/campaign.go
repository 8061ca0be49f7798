package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/campaign-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-manager-api/internal/domain"
)

const (
	campaignsTable = "campaigns c"
)

type CampaignRepository interface {
	Create(campaign *domain.Campaign) error
	GetByID(campaignID string) (*domain.Campaign, error)
	GetByIDAndUser(campaignID, userID string) (*domain.Campaign, error)
	ListByUser(userID string) ([]*domain.Campaign, error)
	ListWithMetaCampaign() ([]*domain.Campaign, error)
	Update(campaign *domain.Campaign) error
	SetMetaCampaignID(campaignID, metaCampaignID string) error
	Delete(campaignID string) error
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) Create(campaign *domain.Campaign) error {
	targetAudience, err := marshalPayload(campaign.TargetAudience)
	if err != nil {
		return fmt.Errorf("erro ao serializar público-alvo: %w", err)
	}

	adCreative, err := marshalPayload(campaign.AdCreative)
	if err != nil {
		return fmt.Errorf("erro ao serializar criativo: %w", err)
	}

	query, args, err := squirrel.
		Insert("campaigns").
		Columns("id", "user_id", "name", "objective", "budget", "budget_type",
			"target_audience", "ad_creative", "meta_account_id", "meta_campaign_id", "status").
		Values(campaign.ID, campaign.UserID, campaign.Name, campaign.Objective, campaign.Budget,
			campaign.BudgetType, targetAudience, adCreative, campaign.MetaAccountID,
			campaign.MetaCampaignID, campaign.Status).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&campaign.CreatedAt, &campaign.UpdatedAt); err != nil {
		return fmt.Errorf("erro ao inserir campanha: %w", err)
	}

	return nil
}

func (r *campaignRepository) GetByID(campaignID string) (*domain.Campaign, error) {
	return r.getCampaign(squirrel.Eq{"c.id": campaignID})
}

func (r *campaignRepository) GetByIDAndUser(campaignID, userID string) (*domain.Campaign, error) {
	return r.getCampaign(squirrel.Eq{"c.id": campaignID, "c.user_id": userID})
}

func (r *campaignRepository) getCampaign(whereClause map[string]interface{}) (*domain.Campaign, error) {
	query, args, err := selectCampaigns().
		Where(whereClause).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	campaign, err := scanCampaign(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return campaign, nil
}

func (r *campaignRepository) ListByUser(userID string) ([]*domain.Campaign, error) {
	query, args, err := selectCampaigns().
		Where(squirrel.Eq{"c.user_id": userID}).
		OrderBy("c.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.listCampaigns(query, args)
}

// ListWithMetaCampaign retorna as campanhas ativas já criadas no Meta,
// usadas pelo agendador de ressincronização diária
func (r *campaignRepository) ListWithMetaCampaign() ([]*domain.Campaign, error) {
	query, args, err := selectCampaigns().
		Where(squirrel.NotEq{"c.meta_campaign_id": nil}).
		Where(squirrel.Eq{"c.status": domain.CampaignActive}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.listCampaigns(query, args)
}

func (r *campaignRepository) listCampaigns(query string, args []interface{}) ([]*domain.Campaign, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)

	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
		}

		campaigns = append(campaigns, campaign)
	}

	return campaigns, rows.Err()
}

func (r *campaignRepository) Update(campaign *domain.Campaign) error {
	targetAudience, err := marshalPayload(campaign.TargetAudience)
	if err != nil {
		return fmt.Errorf("erro ao serializar público-alvo: %w", err)
	}

	adCreative, err := marshalPayload(campaign.AdCreative)
	if err != nil {
		return fmt.Errorf("erro ao serializar criativo: %w", err)
	}

	query, args, err := squirrel.
		Update("campaigns").
		Set("name", campaign.Name).
		Set("objective", campaign.Objective).
		Set("budget", campaign.Budget).
		Set("budget_type", campaign.BudgetType).
		Set("target_audience", targetAudience).
		Set("ad_creative", adCreative).
		Set("status", campaign.Status).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": campaign.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar campanha: %w", err)
	}

	return nil
}

func (r *campaignRepository) SetMetaCampaignID(campaignID, metaCampaignID string) error {
	query, args, err := squirrel.
		Update("campaigns").
		Set("meta_campaign_id", metaCampaignID).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": campaignID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao gravar meta_campaign_id: %w", err)
	}

	return nil
}

func (r *campaignRepository) Delete(campaignID string) error {
	query, args, err := squirrel.
		Delete("campaigns").
		Where(squirrel.Eq{"id": campaignID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao remover campanha: %w", err)
	}

	return nil
}

func selectCampaigns() squirrel.SelectBuilder {
	return squirrel.
		Select("c.id, c.user_id, c.name, c.objective, c.budget, c.budget_type, c.target_audience, c.ad_creative, c.meta_account_id, c.meta_campaign_id, c.status, c.created_at, c.updated_at").
		From(campaignsTable).
		PlaceholderFormat(squirrel.Dollar)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCampaign(row rowScanner) (*domain.Campaign, error) {
	campaign := &domain.Campaign{}

	var targetAudience, adCreative []byte

	if err := row.Scan(
		&campaign.ID,
		&campaign.UserID,
		&campaign.Name,
		&campaign.Objective,
		&campaign.Budget,
		&campaign.BudgetType,
		&targetAudience,
		&adCreative,
		&campaign.MetaAccountID,
		&campaign.MetaCampaignID,
		&campaign.Status,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
	); err != nil {
		return nil, err
	}

	var err error
	if campaign.TargetAudience, err = unmarshalPayload(targetAudience); err != nil {
		return nil, fmt.Errorf("erro ao deserializar público-alvo: %w", err)
	}

	if campaign.AdCreative, err = unmarshalPayload(adCreative); err != nil {
		return nil, fmt.Errorf("erro ao deserializar criativo: %w", err)
	}

	return campaign, nil
}

// marshalPayload serializa um payload opaco para a coluna JSONB
func marshalPayload(payload *domain.Payload) ([]byte, error) {
	if payload.IsEmpty() {
		return nil, nil
	}

	return json.Marshal(payload)
}

func unmarshalPayload(raw []byte) (*domain.Payload, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	payload := &domain.Payload{}
	if err := json.Unmarshal(raw, payload); err != nil {
		return nil, err
	}

	return payload, nil
}
