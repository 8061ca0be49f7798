package domain

import "time"

// MetaAccount é a conta de anúncios do Meta vinculada a um usuário.
// O access token autoriza todas as chamadas à API do Meta em nome dessa conta.
type MetaAccount struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	AdAccountID string    `json:"ad_account_id"`
	AccessToken string    `json:"-"`
	AccountName *string   `json:"account_name,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ConnectMetaAccountRequest é a requisição para vincular uma conta de anúncios
type ConnectMetaAccountRequest struct {
	AdAccountID string  `json:"ad_account_id"`
	AccessToken string  `json:"access_token"`
	AccountName *string `json:"account_name,omitempty"`
}

func (r *ConnectMetaAccountRequest) Validate() error {
	if r.AdAccountID == "" {
		return NewValidationError("ad_account_id", "id da conta de anúncios é obrigatório")
	}

	if r.AccessToken == "" {
		return NewValidationError("access_token", "access token é obrigatório")
	}

	return nil
}
