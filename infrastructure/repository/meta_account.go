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
	metaAccountsTable = "meta_accounts ma"
)

type MetaAccountRepository interface {
	Create(account *domain.MetaAccount) error
	GetByID(accountID string) (*domain.MetaAccount, error)
	GetByIDAndUser(accountID, userID string) (*domain.MetaAccount, error)
	ListActiveByUser(userID string) ([]*domain.MetaAccount, error)
	Deactivate(accountID string) error
}

type metaAccountRepository struct {
	conn *postgres.Connection
}

func NewMetaAccountRepository(conn *postgres.Connection) MetaAccountRepository {
	return &metaAccountRepository{
		conn: conn,
	}
}

func (r *metaAccountRepository) Create(account *domain.MetaAccount) error {
	query, args, err := squirrel.
		Insert("meta_accounts").
		Columns("id", "user_id", "ad_account_id", "access_token", "account_name", "active").
		Values(account.ID, account.UserID, account.AdAccountID, account.AccessToken,
			account.AccountName, account.Active).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&account.CreatedAt, &account.UpdatedAt); err != nil {
		return fmt.Errorf("erro ao inserir conta de anúncios: %w", err)
	}

	return nil
}

func (r *metaAccountRepository) GetByID(accountID string) (*domain.MetaAccount, error) {
	return r.getAccount(squirrel.Eq{"ma.id": accountID})
}

func (r *metaAccountRepository) GetByIDAndUser(accountID, userID string) (*domain.MetaAccount, error) {
	return r.getAccount(squirrel.Eq{"ma.id": accountID, "ma.user_id": userID})
}

func (r *metaAccountRepository) getAccount(whereClause map[string]interface{}) (*domain.MetaAccount, error) {
	query, args, err := selectMetaAccounts().
		Where(whereClause).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	account, err := scanMetaAccount(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return account, nil
}

func (r *metaAccountRepository) ListActiveByUser(userID string) ([]*domain.MetaAccount, error) {
	query, args, err := selectMetaAccounts().
		Where(squirrel.Eq{"ma.user_id": userID, "ma.active": true}).
		OrderBy("ma.created_at DESC").
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

	accounts := make([]*domain.MetaAccount, 0)

	for rows.Next() {
		account, err := scanMetaAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear conta de anúncios: %w", err)
		}

		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}

func (r *metaAccountRepository) Deactivate(accountID string) error {
	query, args, err := squirrel.
		Update("meta_accounts").
		Set("active", false).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao desativar conta de anúncios: %w", err)
	}

	return nil
}

func selectMetaAccounts() squirrel.SelectBuilder {
	return squirrel.
		Select("ma.id, ma.user_id, ma.ad_account_id, ma.access_token, ma.account_name, ma.active, ma.created_at, ma.updated_at").
		From(metaAccountsTable).
		PlaceholderFormat(squirrel.Dollar)
}

func scanMetaAccount(row rowScanner) (*domain.MetaAccount, error) {
	account := &domain.MetaAccount{}

	if err := row.Scan(
		&account.ID,
		&account.UserID,
		&account.AdAccountID,
		&account.AccessToken,
		&account.AccountName,
		&account.Active,
		&account.CreatedAt,
		&account.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return account, nil
}
