package suggesting

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSuggestionRepository(ctrl)
	service := &Service{suggestionRepository: mockRepo}

	tests := []struct {
		name     string
		request  *domain.CreateSuggestionRequest
		setup    func()
		validate func(t *testing.T, suggestion *domain.Suggestion, err error)
	}{
		{
			name: "Tipo inválido - não toca no banco",
			request: &domain.CreateSuggestionRequest{
				Type:        "UNKNOWN_TYPE",
				Title:       "Título",
				Description: "Descrição",
			},
			setup: func() {},
			validate: func(t *testing.T, suggestion *domain.Suggestion, err error) {
				assert.Nil(t, suggestion)

				var validationErr *domain.ValidationError
				assert.True(t, errors.As(err, &validationErr))
				assert.Equal(t, "type", validationErr.Field)
			},
		},
		{
			name: "Sugestão manual - criada como PENDING em nome do usuário",
			request: &domain.CreateSuggestionRequest{
				Type:        domain.SuggestionBudgetOptimization,
				Title:       "Subir orçamento",
				Description: "CPL muito abaixo da meta",
			},
			setup: func() {
				mockRepo.EXPECT().
					Create(gomock.Any()).
					DoAndReturn(func(suggestion *domain.Suggestion) error {
						assert.Equal(t, "user_001", suggestion.UserID)
						assert.Equal(t, domain.SuggestionPending, suggestion.Status)
						assert.False(t, suggestion.AIGenerated)
						return nil
					})
			},
			validate: func(t *testing.T, suggestion *domain.Suggestion, err error) {
				assert.NoError(t, err)
				assert.NotEmpty(t, suggestion.ID)
				assert.Equal(t, domain.SuggestionPending, suggestion.Status)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			suggestion, err := service.Create("user_001", tt.request)

			tt.validate(t, suggestion, err)
		})
	}
}

func TestService_Transitions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSuggestionRepository(ctrl)
	service := &Service{suggestionRepository: mockRepo}

	pending := &domain.Suggestion{
		ID:     "sug_001",
		UserID: "user_001",
		Type:   domain.SuggestionBudgetOptimization,
		Status: domain.SuggestionPending,
	}

	tests := []struct {
		name     string
		run      func() (*domain.Suggestion, error)
		setup    func()
		validate func(t *testing.T, suggestion *domain.Suggestion, err error)
	}{
		{
			name: "Aprovação de sugestão pendente",
			run:  func() (*domain.Suggestion, error) { return service.Approve("sug_001", "user_001") },
			setup: func() {
				mockRepo.EXPECT().
					GetByIDAndUser("sug_001", "user_001").
					Return(pending, nil)

				mockRepo.EXPECT().
					UpdateStatus("sug_001", domain.SuggestionPending, domain.SuggestionApproved).
					Return(true, nil)
			},
			validate: func(t *testing.T, suggestion *domain.Suggestion, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.SuggestionApproved, suggestion.Status)
			},
		},
		{
			name: "Rejeição de sugestão pendente",
			run:  func() (*domain.Suggestion, error) { return service.Reject("sug_001", "user_001") },
			setup: func() {
				mockRepo.EXPECT().
					GetByIDAndUser("sug_001", "user_001").
					Return(&domain.Suggestion{ID: "sug_001", UserID: "user_001", Status: domain.SuggestionPending}, nil)

				mockRepo.EXPECT().
					UpdateStatus("sug_001", domain.SuggestionPending, domain.SuggestionRejected).
					Return(true, nil)
			},
			validate: func(t *testing.T, suggestion *domain.Suggestion, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.SuggestionRejected, suggestion.Status)
			},
		},
		{
			name: "Sugestão já decidida - conflito, estado terminal não muda",
			run:  func() (*domain.Suggestion, error) { return service.Approve("sug_001", "user_001") },
			setup: func() {
				mockRepo.EXPECT().
					GetByIDAndUser("sug_001", "user_001").
					Return(&domain.Suggestion{ID: "sug_001", UserID: "user_001", Status: domain.SuggestionRejected}, nil)

				// A troca condicional não encontra linha em PENDING
				mockRepo.EXPECT().
					UpdateStatus("sug_001", domain.SuggestionPending, domain.SuggestionApproved).
					Return(false, nil)
			},
			validate: func(t *testing.T, suggestion *domain.Suggestion, err error) {
				assert.Nil(t, suggestion)

				var suggestionErr *SuggestionError
				assert.True(t, errors.As(err, &suggestionErr))
				assert.ErrorIs(t, suggestionErr.Err, ErrSuggestionNotPending)
			},
		},
		{
			name: "Sugestão de outro usuário - não encontrada",
			run:  func() (*domain.Suggestion, error) { return service.Approve("sug_001", "user_002") },
			setup: func() {
				mockRepo.EXPECT().
					GetByIDAndUser("sug_001", "user_002").
					Return(nil, nil)
			},
			validate: func(t *testing.T, suggestion *domain.Suggestion, err error) {
				assert.Nil(t, suggestion)

				var suggestionErr *SuggestionError
				assert.True(t, errors.As(err, &suggestionErr))
				assert.ErrorIs(t, suggestionErr.Err, ErrSuggestionNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			suggestion, err := tt.run()

			tt.validate(t, suggestion, err)
		})
	}
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSuggestionRepository(ctrl)
	service := &Service{suggestionRepository: mockRepo}

	mockRepo.EXPECT().
		GetByIDAndUser("sug_001", "user_001").
		Return(&domain.Suggestion{
			ID:          "sug_001",
			UserID:      "user_001",
			Title:       "Título antigo",
			Description: "Descrição antiga",
			Status:      domain.SuggestionPending,
		}, nil)

	mockRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil)

	newTitle := "Título novo"

	suggestion, err := service.Update("sug_001", "user_001", &domain.UpdateSuggestionRequest{
		Title: &newTitle,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Título novo", suggestion.Title)
	assert.Equal(t, "Descrição antiga", suggestion.Description)
}
