package suggesting

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-manager-api/infrastructure/repository"
	"github.com/vfg2006/campaign-manager-api/internal/domain"
	"github.com/vfg2006/campaign-manager-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-manager-api/pkg/utils"
)

type SuggestionService interface {
	Create(userID string, request *domain.CreateSuggestionRequest) (*domain.Suggestion, error)
	FindAll(userID string) ([]*domain.Suggestion, error)
	FindOne(suggestionID, userID string) (*domain.Suggestion, error)
	GetPending(userID string) ([]*domain.Suggestion, error)
	Update(suggestionID, userID string, request *domain.UpdateSuggestionRequest) (*domain.Suggestion, error)
	Approve(suggestionID, userID string) (*domain.Suggestion, error)
	Reject(suggestionID, userID string) (*domain.Suggestion, error)
	Remove(suggestionID, userID string) error
}

type Service struct {
	suggestionRepository repository.SuggestionRepository
}

func NewService(suggestionRepository repository.SuggestionRepository) SuggestionService {
	return &Service{
		suggestionRepository: suggestionRepository,
	}
}

func (s *Service) Create(userID string, request *domain.CreateSuggestionRequest) (*domain.Suggestion, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	suggestionID, err := utils.GenerateID()
	if err != nil {
		return nil, NewSuggestionError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para sugestão")
	}

	suggestion := &domain.Suggestion{
		ID:          suggestionID,
		UserID:      userID,
		CampaignID:  request.CampaignID,
		Type:        request.Type,
		Title:       request.Title,
		Description: request.Description,
		Action:      request.Action,
		AIGenerated: request.AIGenerated,
		Status:      domain.SuggestionPending,
	}

	if err := s.suggestionRepository.Create(suggestion); err != nil {
		logrus.WithError(err).Error("Error creating suggestion on the repository")
		return nil, NewSuggestionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao salvar sugestão no banco de dados")
	}

	return suggestion, nil
}

func (s *Service) FindAll(userID string) ([]*domain.Suggestion, error) {
	suggestions, err := s.suggestionRepository.ListByUser(userID)
	if err != nil {
		logrus.WithError(err).Error("Error listing suggestions on the repository")
		return nil, NewSuggestionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar sugestões no banco de dados")
	}

	return suggestions, nil
}

func (s *Service) FindOne(suggestionID, userID string) (*domain.Suggestion, error) {
	return s.getScoped(suggestionID, userID)
}

func (s *Service) GetPending(userID string) ([]*domain.Suggestion, error) {
	suggestions, err := s.suggestionRepository.ListPendingByUser(userID)
	if err != nil {
		logrus.WithError(err).Error("Error listing pending suggestions on the repository")
		return nil, NewSuggestionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar sugestões pendentes no banco de dados")
	}

	return suggestions, nil
}

func (s *Service) Update(suggestionID, userID string, request *domain.UpdateSuggestionRequest) (*domain.Suggestion, error) {
	suggestion, err := s.getScoped(suggestionID, userID)
	if err != nil {
		return nil, err
	}

	if request.Title != nil {
		suggestion.Title = *request.Title
	}

	if request.Description != nil {
		suggestion.Description = *request.Description
	}

	if request.Action != nil {
		suggestion.Action = request.Action
	}

	if err := s.suggestionRepository.Update(suggestion); err != nil {
		logrus.WithError(err).Error("Error updating suggestion on the repository")
		return nil, NewSuggestionErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, suggestionID, "Falha ao atualizar sugestão no banco de dados")
	}

	return suggestion, nil
}

// Approve transiciona a sugestão de PENDING para APPROVED. A aplicação da
// ação sugerida ainda não existe: o payload é apenas registrado no log como
// ponto de extensão para a execução futura.
func (s *Service) Approve(suggestionID, userID string) (*domain.Suggestion, error) {
	suggestion, err := s.transition(suggestionID, userID, domain.SuggestionApproved)
	if err != nil {
		return nil, err
	}

	if !suggestion.Action.IsEmpty() {
		logrus.WithFields(logrus.Fields{
			"suggestion_id": suggestion.ID,
			"action_kind":   suggestion.Action.Kind,
			"action":        suggestion.Action.Data,
		}).Info("Sugestão aprovada com ação estruturada, execução ainda não implementada")
	}

	return suggestion, nil
}

// Reject transiciona a sugestão de PENDING para REJECTED, sem efeitos colaterais
func (s *Service) Reject(suggestionID, userID string) (*domain.Suggestion, error) {
	return s.transition(suggestionID, userID, domain.SuggestionRejected)
}

func (s *Service) Remove(suggestionID, userID string) error {
	if _, err := s.getScoped(suggestionID, userID); err != nil {
		return err
	}

	if err := s.suggestionRepository.Delete(suggestionID); err != nil {
		logrus.WithError(err).Error("Error deleting suggestion on the repository")
		return NewSuggestionErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, suggestionID, "Falha ao excluir sugestão no banco de dados")
	}

	return nil
}

// transition aplica a máquina de estados da sugestão: PENDING é o único
// estado transicionável. A troca condicional no repositório garante que dois
// aprovadores concorrentes não flipem o status duas vezes.
func (s *Service) transition(suggestionID, userID string, to domain.SuggestionStatus) (*domain.Suggestion, error) {
	suggestion, err := s.getScoped(suggestionID, userID)
	if err != nil {
		return nil, err
	}

	changed, err := s.suggestionRepository.UpdateStatus(suggestionID, domain.SuggestionPending, to)
	if err != nil {
		logrus.WithError(err).Error("Error updating suggestion status on the repository")
		return nil, NewSuggestionErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, suggestionID, "Falha ao atualizar status da sugestão")
	}

	if !changed {
		return nil, NewSuggestionErrorWithID(ErrSuggestionNotPending, apiErrors.ErrSuggestionNotPending, suggestionID, "Sugestão já foi aprovada ou rejeitada")
	}

	suggestion.Status = to

	return suggestion, nil
}

func (s *Service) getScoped(suggestionID, userID string) (*domain.Suggestion, error) {
	suggestion, err := s.suggestionRepository.GetByIDAndUser(suggestionID, userID)
	if err != nil {
		logrus.WithError(err).Error("Error getting suggestion on the repository")
		return nil, NewSuggestionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar sugestão no banco de dados")
	}

	if suggestion == nil {
		return nil, NewSuggestionErrorWithID(ErrSuggestionNotFound, apiErrors.ErrSuggestionNotFound, suggestionID, "Sugestão não encontrada")
	}

	return suggestion, nil
}
