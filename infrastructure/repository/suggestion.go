package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/campaign-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-manager-api/internal/domain"
)

const (
	suggestionsTable = "suggestions s"
)

type SuggestionRepository interface {
	Create(suggestion *domain.Suggestion) error
	GetByIDAndUser(suggestionID, userID string) (*domain.Suggestion, error)
	ListByUser(userID string) ([]*domain.Suggestion, error)
	ListPendingByUser(userID string) ([]*domain.Suggestion, error)
	ListPendingByCampaign(campaignID string) ([]*domain.Suggestion, error)
	Update(suggestion *domain.Suggestion) error
	UpdateStatus(suggestionID string, from, to domain.SuggestionStatus) (bool, error)
	Delete(suggestionID string) error
}

type suggestionRepository struct {
	conn *postgres.Connection
}

func NewSuggestionRepository(conn *postgres.Connection) SuggestionRepository {
	return &suggestionRepository{
		conn: conn,
	}
}

func (r *suggestionRepository) Create(suggestion *domain.Suggestion) error {
	action, err := marshalPayload(suggestion.Action)
	if err != nil {
		return fmt.Errorf("erro ao serializar ação: %w", err)
	}

	query, args, err := squirrel.
		Insert("suggestions").
		Columns("id", "user_id", "campaign_id", "type", "title", "description",
			"action", "ai_generated", "status").
		Values(suggestion.ID, suggestion.UserID, suggestion.CampaignID, suggestion.Type,
			suggestion.Title, suggestion.Description, action, suggestion.AIGenerated,
			suggestion.Status).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&suggestion.CreatedAt, &suggestion.UpdatedAt); err != nil {
		return fmt.Errorf("erro ao inserir sugestão: %w", err)
	}

	return nil
}

func (r *suggestionRepository) GetByIDAndUser(suggestionID, userID string) (*domain.Suggestion, error) {
	query, args, err := selectSuggestions().
		Where(squirrel.Eq{"s.id": suggestionID, "s.user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	suggestion, err := scanSuggestion(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return suggestion, nil
}

func (r *suggestionRepository) ListByUser(userID string) ([]*domain.Suggestion, error) {
	return r.listSuggestions(squirrel.Eq{"s.user_id": userID})
}

func (r *suggestionRepository) ListPendingByUser(userID string) ([]*domain.Suggestion, error) {
	return r.listSuggestions(squirrel.Eq{"s.user_id": userID, "s.status": domain.SuggestionPending})
}

func (r *suggestionRepository) ListPendingByCampaign(campaignID string) ([]*domain.Suggestion, error) {
	return r.listSuggestions(squirrel.Eq{"s.campaign_id": campaignID, "s.status": domain.SuggestionPending})
}

func (r *suggestionRepository) listSuggestions(whereClause map[string]interface{}) ([]*domain.Suggestion, error) {
	query, args, err := selectSuggestions().
		Where(whereClause).
		OrderBy("s.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	suggestions := make([]*domain.Suggestion, 0)

	for rows.Next() {
		suggestion, err := scanSuggestion(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear sugestão: %w", err)
		}

		suggestions = append(suggestions, suggestion)
	}

	return suggestions, rows.Err()
}

func (r *suggestionRepository) Update(suggestion *domain.Suggestion) error {
	action, err := marshalPayload(suggestion.Action)
	if err != nil {
		return fmt.Errorf("erro ao serializar ação: %w", err)
	}

	query, args, err := squirrel.
		Update("suggestions").
		Set("title", suggestion.Title).
		Set("description", suggestion.Description).
		Set("action", action).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": suggestion.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar sugestão: %w", err)
	}

	return nil
}

// UpdateStatus aplica a transição de estado somente se a sugestão ainda
// estiver no estado de origem. Retorna falso quando nenhuma linha foi
// alterada, o que indica que a sugestão já atingiu um estado terminal.
func (r *suggestionRepository) UpdateStatus(suggestionID string, from, to domain.SuggestionStatus) (bool, error) {
	query, args, err := squirrel.
		Update("suggestions").
		Set("status", to).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": suggestionID, "status": from}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao atualizar status da sugestão: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao verificar linhas alteradas: %w", err)
	}

	return affected > 0, nil
}

func (r *suggestionRepository) Delete(suggestionID string) error {
	query, args, err := squirrel.
		Delete("suggestions").
		Where(squirrel.Eq{"id": suggestionID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao remover sugestão: %w", err)
	}

	return nil
}

func selectSuggestions() squirrel.SelectBuilder {
	return squirrel.
		Select("s.id, s.user_id, s.campaign_id, s.type, s.title, s.description, s.action, s.ai_generated, s.status, s.created_at, s.updated_at").
		From(suggestionsTable).
		PlaceholderFormat(squirrel.Dollar)
}

func scanSuggestion(row rowScanner) (*domain.Suggestion, error) {
	suggestion := &domain.Suggestion{}

	var action []byte

	if err := row.Scan(
		&suggestion.ID,
		&suggestion.UserID,
		&suggestion.CampaignID,
		&suggestion.Type,
		&suggestion.Title,
		&suggestion.Description,
		&action,
		&suggestion.AIGenerated,
		&suggestion.Status,
		&suggestion.CreatedAt,
		&suggestion.UpdatedAt,
	); err != nil {
		return nil, err
	}

	var err error
	if suggestion.Action, err = unmarshalPayload(action); err != nil {
		return nil, fmt.Errorf("erro ao deserializar ação: %w", err)
	}

	return suggestion, nil
}
