package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/campaign-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-manager-api/internal/domain"
	"github.com/vfg2006/campaign-manager-api/pkg/utils"
)

const (
	performancesTable = "campaign_performances cp"
)

type CampaignPerformanceRepository interface {
	SaveOrUpdate(performance *domain.CampaignPerformance) error
	GetByCampaignAndDate(campaignID string, date time.Time) (*domain.CampaignPerformance, error)
	ListByCampaign(campaignID string, startDate, endDate time.Time) ([]*domain.CampaignPerformance, error)
	GetLatestByCampaign(campaignID string) (*domain.CampaignPerformance, error)
}

type campaignPerformanceRepository struct {
	conn *postgres.Connection
}

func NewCampaignPerformanceRepository(conn *postgres.Connection) CampaignPerformanceRepository {
	return &campaignPerformanceRepository{
		conn: conn,
	}
}

// SaveOrUpdate insere ou sobrescreve o snapshot do dia. A restrição única em
// (campaign_id, date) garante no máximo uma linha por campanha por dia; a
// segunda sincronização do dia vence, não acumula.
func (r *campaignPerformanceRepository) SaveOrUpdate(performance *domain.CampaignPerformance) error {
	if performance.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id: %w", err)
		}
		performance.ID = id
	}

	query, args, err := squirrel.
		Insert("campaign_performances").
		Columns("id", "campaign_id", "date", "reach", "impressions", "clicks", "leads",
			"spend", "cpm", "cpc", "cpl").
		Values(performance.ID, performance.CampaignID, performance.Date.Format("2006-01-02"),
			performance.Reach, performance.Impressions, performance.Clicks, performance.Leads,
			performance.Spend, performance.CPM, performance.CPC, performance.CPL).
		Suffix(`
			ON CONFLICT (campaign_id, date) DO UPDATE SET
				reach = EXCLUDED.reach,
				impressions = EXCLUDED.impressions,
				clicks = EXCLUDED.clicks,
				leads = EXCLUDED.leads,
				spend = EXCLUDED.spend,
				cpm = EXCLUDED.cpm,
				cpc = EXCLUDED.cpc,
				cpl = EXCLUDED.cpl,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao gravar performance: %w", err)
	}

	return nil
}

func (r *campaignPerformanceRepository) GetByCampaignAndDate(campaignID string, date time.Time) (*domain.CampaignPerformance, error) {
	query, args, err := selectPerformances().
		Where(squirrel.Eq{"cp.campaign_id": campaignID, "cp.date": date.Format("2006-01-02")}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	performance, err := scanPerformance(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear performance: %w", err)
	}

	return performance, nil
}

func (r *campaignPerformanceRepository) ListByCampaign(campaignID string, startDate, endDate time.Time) ([]*domain.CampaignPerformance, error) {
	query, args, err := selectPerformances().
		Where(squirrel.Eq{"cp.campaign_id": campaignID}).
		Where(squirrel.GtOrEq{"cp.date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"cp.date": endDate.Format("2006-01-02")}).
		OrderBy("cp.date ASC").
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

	performances := make([]*domain.CampaignPerformance, 0)

	for rows.Next() {
		performance, err := scanPerformance(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear performance: %w", err)
		}

		performances = append(performances, performance)
	}

	return performances, rows.Err()
}

func (r *campaignPerformanceRepository) GetLatestByCampaign(campaignID string) (*domain.CampaignPerformance, error) {
	query, args, err := selectPerformances().
		Where(squirrel.Eq{"cp.campaign_id": campaignID}).
		OrderBy("cp.date DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	performance, err := scanPerformance(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear performance: %w", err)
	}

	return performance, nil
}

func selectPerformances() squirrel.SelectBuilder {
	return squirrel.
		Select("cp.id, cp.campaign_id, cp.date, cp.reach, cp.impressions, cp.clicks, cp.leads, cp.spend, cp.cpm, cp.cpc, cp.cpl, cp.created_at, cp.updated_at").
		From(performancesTable).
		PlaceholderFormat(squirrel.Dollar)
}

func scanPerformance(row rowScanner) (*domain.CampaignPerformance, error) {
	performance := &domain.CampaignPerformance{}

	if err := row.Scan(
		&performance.ID,
		&performance.CampaignID,
		&performance.Date,
		&performance.Reach,
		&performance.Impressions,
		&performance.Clicks,
		&performance.Leads,
		&performance.Spend,
		&performance.CPM,
		&performance.CPC,
		&performance.CPL,
		&performance.CreatedAt,
		&performance.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return performance, nil
}
