package connecting

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-manager-api/infrastructure/repository"
	"github.com/vfg2006/campaign-manager-api/internal/domain"
	"github.com/vfg2006/campaign-manager-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-manager-api/pkg/utils"
)

// Erros específicos para o contexto de contas de anúncios
var (
	ErrAccountNotFound   = errors.New("meta account not found")
	ErrDatabaseOperation = errors.New("database operation error")
	ErrGenerateID        = errors.New("error generating ID")
)

type MetaAccountService interface {
	Connect(userID string, request *domain.ConnectMetaAccountRequest) (*domain.MetaAccount, error)
	List(userID string) ([]*domain.MetaAccount, error)
	Disconnect(accountID, userID string) error
}

type Service struct {
	metaAccountRepository repository.MetaAccountRepository
}

func NewService(metaAccountRepository repository.MetaAccountRepository) MetaAccountService {
	return &Service{
		metaAccountRepository: metaAccountRepository,
	}
}

// Connect vincula uma conta de anúncios do Meta ao usuário. O access token
// é persistido e nunca volta nas respostas da API.
func (s *Service) Connect(userID string, request *domain.ConnectMetaAccountRequest) (*domain.MetaAccount, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	accountID, err := utils.GenerateID()
	if err != nil {
		return nil, newAccountError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para conta")
	}

	account := &domain.MetaAccount{
		ID:          accountID,
		UserID:      userID,
		AdAccountID: request.AdAccountID,
		AccessToken: request.AccessToken,
		AccountName: request.AccountName,
		Active:      true,
	}

	if err := s.metaAccountRepository.Create(account); err != nil {
		logrus.WithError(err).Error("Error creating meta account on the repository")
		return nil, newAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao salvar conta no banco de dados")
	}

	logrus.WithFields(logrus.Fields{
		"account_id":    account.ID,
		"ad_account_id": account.AdAccountID,
	}).Info("Conta de anúncios vinculada ao usuário")

	return account, nil
}

func (s *Service) List(userID string) ([]*domain.MetaAccount, error) {
	accounts, err := s.metaAccountRepository.ListActiveByUser(userID)
	if err != nil {
		logrus.WithError(err).Error("Error listing meta accounts on the repository")
		return nil, newAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar contas no banco de dados")
	}

	return accounts, nil
}

// Disconnect desativa a conta sem apagá-la: campanhas já vinculadas seguem
// referenciando o registro, mas nenhuma chamada remota nova é autorizada.
func (s *Service) Disconnect(accountID, userID string) error {
	account, err := s.metaAccountRepository.GetByIDAndUser(accountID, userID)
	if err != nil {
		logrus.WithError(err).Error("Error getting meta account on the repository")
		return newAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar conta no banco de dados")
	}

	if account == nil {
		return newAccountError(ErrAccountNotFound, apiErrors.ErrMetaAccountNotFound, "Conta de anúncios não encontrada")
	}

	if err := s.metaAccountRepository.Deactivate(accountID); err != nil {
		logrus.WithError(err).Error("Error deactivating meta account on the repository")
		return newAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao desativar conta no banco de dados")
	}

	return nil
}

// AccountError é um erro com contexto adicional para contas de anúncios
type AccountError struct {
	Err     error
	Code    string
	Details string
}

func (e *AccountError) Error() string {
	if e.Details != "" {
		return e.Err.Error() + ": " + e.Details
	}
	return e.Err.Error()
}

func (e *AccountError) Unwrap() error {
	return e.Err
}

func newAccountError(err error, code string, details string) *AccountError {
	return &AccountError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
