package campaigning

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	aidomain "github.com/vfg2006/campaign-manager-api/infrastructure/integrator/assistant/domain"
	assistantmocks "github.com/vfg2006/campaign-manager-api/infrastructure/integrator/assistant/mocks"
	metadomain "github.com/vfg2006/campaign-manager-api/infrastructure/integrator/meta/domain"
	metamocks "github.com/vfg2006/campaign-manager-api/infrastructure/integrator/meta/mocks"
	queuemocks "github.com/vfg2006/campaign-manager-api/infrastructure/queue/mocks"
	"github.com/vfg2006/campaign-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	campaignRepo    *mocks.MockCampaignRepository
	performanceRepo *mocks.MockCampaignPerformanceRepository
	suggestionRepo  *mocks.MockSuggestionRepository
	metaAccountRepo *mocks.MockMetaAccountRepository
	metaService     *metamocks.MockIntegrator
	assistant       *assistantmocks.MockIntegrator
	enqueuer        *queuemocks.MockEnqueuer
	locker          *queuemocks.MockLocker
}

func newServiceWithMocks(ctrl *gomock.Controller) (*Service, *serviceMocks) {
	m := &serviceMocks{
		campaignRepo:    mocks.NewMockCampaignRepository(ctrl),
		performanceRepo: mocks.NewMockCampaignPerformanceRepository(ctrl),
		suggestionRepo:  mocks.NewMockSuggestionRepository(ctrl),
		metaAccountRepo: mocks.NewMockMetaAccountRepository(ctrl),
		metaService:     metamocks.NewMockIntegrator(ctrl),
		assistant:       assistantmocks.NewMockIntegrator(ctrl),
		enqueuer:        queuemocks.NewMockEnqueuer(ctrl),
		locker:          queuemocks.NewMockLocker(ctrl),
	}

	service := &Service{
		campaignRepository:    m.campaignRepo,
		performanceRepository: m.performanceRepo,
		suggestionRepository:  m.suggestionRepo,
		metaAccountRepository: m.metaAccountRepo,
		metaService:           m.metaService,
		assistantService:      m.assistant,
		enqueuer:              m.enqueuer,
		locker:                m.locker,
	}

	return service, m
}

func stringPtr(s string) *string {
	return &s
}

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	activeAccount := &domain.MetaAccount{
		ID:          "ma_001",
		UserID:      "user_001",
		AdAccountID: "act_123",
		AccessToken: "token-abc",
		Active:      true,
	}

	tests := []struct {
		name     string
		request  *domain.CreateCampaignRequest
		setup    func()
		validate func(t *testing.T, campaign *domain.Campaign, err error)
	}{
		{
			name: "Requisição inválida - não toca no banco nem no Meta",
			request: &domain.CreateCampaignRequest{
				Name:       "",
				Objective:  domain.ObjectiveLeads,
				Budget:     100,
				BudgetType: domain.BudgetDaily,
			},
			setup: func() {},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.Nil(t, campaign)

				var validationErr *domain.ValidationError
				assert.True(t, errors.As(err, &validationErr))
				assert.Equal(t, "name", validationErr.Field)
			},
		},
		{
			name: "Criação local sem espelhamento - nenhuma chamada remota",
			request: &domain.CreateCampaignRequest{
				Name:          "Campanha Black Friday",
				Objective:     domain.ObjectiveConversions,
				Budget:        150.50,
				BudgetType:    domain.BudgetDaily,
				MetaAccountID: stringPtr("ma_001"),
				CreateOnMeta:  false,
			},
			setup: func() {
				m.campaignRepo.EXPECT().
					Create(gomock.Any()).
					Return(nil)
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.NoError(t, err)
				assert.NotEmpty(t, campaign.ID)
				assert.Equal(t, "user_001", campaign.UserID)
				assert.Equal(t, domain.CampaignPaused, campaign.Status)
				assert.Nil(t, campaign.MetaCampaignID)
			},
		},
		{
			name: "Espelhamento no Meta com sucesso - guarda id remoto e agenda sync",
			request: &domain.CreateCampaignRequest{
				Name:          "Campanha Leads",
				Objective:     domain.ObjectiveLeads,
				Budget:        80,
				BudgetType:    domain.BudgetDaily,
				MetaAccountID: stringPtr("ma_001"),
				CreateOnMeta:  true,
			},
			setup: func() {
				m.campaignRepo.EXPECT().
					Create(gomock.Any()).
					Return(nil)

				m.metaAccountRepo.EXPECT().
					GetByIDAndUser("ma_001", "user_001").
					Return(activeAccount, nil)

				m.metaService.EXPECT().
					CreateCampaign("token-abc", "act_123", gomock.Any()).
					Return(&metadomain.CreateCampaignResult{CampaignID: "meta_789"}, nil)

				m.campaignRepo.EXPECT().
					SetMetaCampaignID(gomock.Any(), "meta_789").
					Return(nil)

				// Exatamente um job de sync quando o espelhamento funciona
				m.enqueuer.EXPECT().
					Enqueue(gomock.Any(), domain.QueueCampaignSync, domain.JobSyncCampaignPerformance, gomock.Any()).
					Return(nil)
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, campaign.MetaCampaignID)
				assert.Equal(t, "meta_789", *campaign.MetaCampaignID)
			},
		},
		{
			name: "Falha no Meta - campanha permanece local e nenhum job é agendado",
			request: &domain.CreateCampaignRequest{
				Name:          "Campanha Awareness",
				Objective:     domain.ObjectiveAwareness,
				Budget:        200,
				BudgetType:    domain.BudgetLifetime,
				MetaAccountID: stringPtr("ma_001"),
				CreateOnMeta:  true,
			},
			setup: func() {
				m.campaignRepo.EXPECT().
					Create(gomock.Any()).
					Return(nil)

				m.metaAccountRepo.EXPECT().
					GetByIDAndUser("ma_001", "user_001").
					Return(activeAccount, nil)

				m.metaService.EXPECT().
					CreateCampaign("token-abc", "act_123", gomock.Any()).
					Return(nil, errors.New("graph api unavailable"))
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				// A escrita local vence: o erro remoto é absorvido
				assert.NoError(t, err)
				assert.Nil(t, campaign.MetaCampaignID)
			},
		},
		{
			name: "Conta de anúncios inativa - nenhuma chamada remota",
			request: &domain.CreateCampaignRequest{
				Name:          "Campanha Sales",
				Objective:     domain.ObjectiveSales,
				Budget:        90,
				BudgetType:    domain.BudgetDaily,
				MetaAccountID: stringPtr("ma_002"),
				CreateOnMeta:  true,
			},
			setup: func() {
				m.campaignRepo.EXPECT().
					Create(gomock.Any()).
					Return(nil)

				m.metaAccountRepo.EXPECT().
					GetByIDAndUser("ma_002", "user_001").
					Return(&domain.MetaAccount{ID: "ma_002", Active: false}, nil)
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.NoError(t, err)
				assert.Nil(t, campaign.MetaCampaignID)
			},
		},
		{
			name: "Falha no banco - devolve erro de operação de banco",
			request: &domain.CreateCampaignRequest{
				Name:       "Campanha Falha",
				Objective:  domain.ObjectiveLeads,
				Budget:     50,
				BudgetType: domain.BudgetDaily,
			},
			setup: func() {
				m.campaignRepo.EXPECT().
					Create(gomock.Any()).
					Return(errors.New("connection refused"))
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.Nil(t, campaign)

				var campaignErr *CampaignError
				assert.True(t, errors.As(err, &campaignErr))
				assert.ErrorIs(t, campaignErr.Err, ErrDatabaseOperation)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			campaign, err := service.Create(context.Background(), "user_001", tt.request)

			tt.validate(t, campaign, err)
		})
	}
}

func TestService_FindOne(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, campaign *domain.Campaign, err error)
	}{
		{
			name: "Campanha de outro usuário - não encontrada",
			setup: func() {
				m.campaignRepo.EXPECT().
					GetByIDAndUser("cmp_001", "user_001").
					Return(nil, nil)
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.Nil(t, campaign)

				var campaignErr *CampaignError
				assert.True(t, errors.As(err, &campaignErr))
				assert.ErrorIs(t, campaignErr.Err, ErrCampaignNotFound)
				assert.Equal(t, "cmp_001", campaignErr.CampaignID)
			},
		},
		{
			name: "Campanha encontrada - carrega conta, performance e sugestões pendentes",
			setup: func() {
				m.campaignRepo.EXPECT().
					GetByIDAndUser("cmp_001", "user_001").
					Return(&domain.Campaign{
						ID:            "cmp_001",
						UserID:        "user_001",
						MetaAccountID: stringPtr("ma_001"),
					}, nil)

				m.metaAccountRepo.EXPECT().
					GetByID("ma_001").
					Return(&domain.MetaAccount{ID: "ma_001", Active: true}, nil)

				m.performanceRepo.EXPECT().
					ListByCampaign("cmp_001", gomock.Any(), gomock.Any()).
					Return([]*domain.CampaignPerformance{{CampaignID: "cmp_001"}}, nil)

				m.suggestionRepo.EXPECT().
					ListPendingByCampaign("cmp_001").
					Return([]*domain.Suggestion{{ID: "sug_001", Status: domain.SuggestionPending}}, nil)
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, campaign.MetaAccount)
				assert.Len(t, campaign.Performances, 1)
				assert.Len(t, campaign.Suggestions, 1)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			campaign, err := service.FindOne("cmp_001", "user_001")

			tt.validate(t, campaign, err)
		})
	}
}

func TestService_SyncPerformance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	linkedCampaign := &domain.Campaign{
		ID:             "cmp_001",
		UserID:         "user_001",
		MetaAccountID:  stringPtr("ma_001"),
		MetaCampaignID: stringPtr("meta_789"),
	}

	activeAccount := &domain.MetaAccount{
		ID:          "ma_001",
		AdAccountID: "act_123",
		AccessToken: "token-abc",
		Active:      true,
	}

	metrics := &domain.PerformanceMetrics{
		Reach:       1000,
		Impressions: 5000,
		Clicks:      120,
		Leads:       8,
		Spend:       250.0,
	}

	payload := domain.SyncPerformancePayload{
		CampaignID:     "cmp_001",
		MetaCampaignID: "meta_789",
	}

	tests := []struct {
		name  string
		setup func()
	}{
		{
			name: "Campanha não existe mais - job descartado sem erro",
			setup: func() {
				m.campaignRepo.EXPECT().
					GetByID("cmp_001").
					Return(nil, nil)
			},
		},
		{
			name: "Conta de anúncios inativa - sincronização ignorada sem erro",
			setup: func() {
				m.campaignRepo.EXPECT().
					GetByID("cmp_001").
					Return(linkedCampaign, nil)

				m.metaAccountRepo.EXPECT().
					GetByID("ma_001").
					Return(&domain.MetaAccount{ID: "ma_001", Active: false}, nil)
			},
		},
		{
			name: "Erro ao buscar métricas - absorvido, job não volta para a fila",
			setup: func() {
				m.campaignRepo.EXPECT().
					GetByID("cmp_001").
					Return(linkedCampaign, nil)

				m.metaAccountRepo.EXPECT().
					GetByID("ma_001").
					Return(activeAccount, nil)

				m.metaService.EXPECT().
					GetDailyPerformance("token-abc", "meta_789", gomock.Any()).
					Return(nil, errors.New("rate limited"))
			},
		},
		{
			name: "Sucesso - grava snapshot e enfileira otimização com o lock",
			setup: func() {
				m.campaignRepo.EXPECT().
					GetByID("cmp_001").
					Return(linkedCampaign, nil)

				m.metaAccountRepo.EXPECT().
					GetByID("ma_001").
					Return(activeAccount, nil)

				m.metaService.EXPECT().
					GetDailyPerformance("token-abc", "meta_789", gomock.Any()).
					Return(metrics, nil)

				m.performanceRepo.EXPECT().
					SaveOrUpdate(gomock.Any()).
					DoAndReturn(func(performance *domain.CampaignPerformance) error {
						assert.Equal(t, "cmp_001", performance.CampaignID)
						assert.Equal(t, 250.0, performance.Spend)
						// Snapshot sempre ancorado à meia-noite UTC do dia
						assert.Equal(t, 0, performance.Date.Hour())
						return nil
					})

				m.locker.EXPECT().
					TryLock(gomock.Any(), "cmp_001").
					Return("lock-token-1", true, nil)

				m.enqueuer.EXPECT().
					Enqueue(gomock.Any(), domain.QueueCampaignOptimization, domain.JobOptimizeCampaign, gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _ string, raw interface{}) error {
						optimizePayload, ok := raw.(domain.OptimizeCampaignPayload)
						assert.True(t, ok)
						assert.Equal(t, "cmp_001", optimizePayload.CampaignID)
						assert.Equal(t, "lock-token-1", optimizePayload.LockToken)
						return nil
					})
			},
		},
		{
			name: "Lock já em uso - snapshot gravado mas otimização não duplicada",
			setup: func() {
				m.campaignRepo.EXPECT().
					GetByID("cmp_001").
					Return(linkedCampaign, nil)

				m.metaAccountRepo.EXPECT().
					GetByID("ma_001").
					Return(activeAccount, nil)

				m.metaService.EXPECT().
					GetDailyPerformance("token-abc", "meta_789", gomock.Any()).
					Return(metrics, nil)

				m.performanceRepo.EXPECT().
					SaveOrUpdate(gomock.Any()).
					Return(nil)

				m.locker.EXPECT().
					TryLock(gomock.Any(), "cmp_001").
					Return("", false, nil)
			},
		},
		{
			name: "Falha ao enfileirar otimização - lock é liberado",
			setup: func() {
				m.campaignRepo.EXPECT().
					GetByID("cmp_001").
					Return(linkedCampaign, nil)

				m.metaAccountRepo.EXPECT().
					GetByID("ma_001").
					Return(activeAccount, nil)

				m.metaService.EXPECT().
					GetDailyPerformance("token-abc", "meta_789", gomock.Any()).
					Return(metrics, nil)

				m.performanceRepo.EXPECT().
					SaveOrUpdate(gomock.Any()).
					Return(nil)

				m.locker.EXPECT().
					TryLock(gomock.Any(), "cmp_001").
					Return("lock-token-2", true, nil)

				m.enqueuer.EXPECT().
					Enqueue(gomock.Any(), domain.QueueCampaignOptimization, domain.JobOptimizeCampaign, gomock.Any()).
					Return(errors.New("redis down"))

				m.locker.EXPECT().
					Release(gomock.Any(), "cmp_001", "lock-token-2").
					Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			err := service.SyncPerformance(context.Background(), payload)

			// O handler de sync nunca devolve erro: a próxima execução
			// agendada corrige qualquer dia perdido
			assert.NoError(t, err)
		})
	}
}

func TestService_OptimizeCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	campaign := &domain.Campaign{
		ID:        "cmp_001",
		UserID:    "user_001",
		Name:      "Campanha Leads",
		Objective: domain.ObjectiveLeads,
		Budget:    80,
	}

	payload := domain.OptimizeCampaignPayload{
		CampaignID: "cmp_001",
		Performance: domain.PerformanceMetrics{
			Impressions: 5000,
			Clicks:      120,
			Spend:       250.0,
		},
		LockToken: "lock-token-1",
	}

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, err error)
	}{
		{
			name: "Campanha excluída entre o sync e a otimização - job descartado",
			setup: func() {
				m.campaignRepo.EXPECT().
					GetByID("cmp_001").
					Return(nil, nil)

				m.locker.EXPECT().
					Release(gomock.Any(), "cmp_001", "lock-token-1").
					Return(nil)
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Falha no serviço de IA - erro propaga para a fila tentar de novo",
			setup: func() {
				m.campaignRepo.EXPECT().
					GetByID("cmp_001").
					Return(campaign, nil)

				m.assistant.EXPECT().
					SuggestOptimizations(gomock.Any(), campaign, gomock.Any()).
					Return(nil, errors.New("assistant timeout"))

				m.locker.EXPECT().
					Release(gomock.Any(), "cmp_001", "lock-token-1").
					Return(nil)
			},
			validate: func(t *testing.T, err error) {
				var campaignErr *CampaignError
				assert.True(t, errors.As(err, &campaignErr))
				assert.ErrorIs(t, campaignErr.Err, ErrAIIntegration)
			},
		},
		{
			name: "Sugestões geradas - persistidas como PENDING em nome do usuário de sistema",
			setup: func() {
				m.campaignRepo.EXPECT().
					GetByID("cmp_001").
					Return(campaign, nil)

				m.assistant.EXPECT().
					SuggestOptimizations(gomock.Any(), campaign, gomock.Any()).
					Return([]aidomain.SuggestionDraft{
						{
							Type:        "BUDGET_OPTIMIZATION",
							Title:       "Aumentar orçamento diário",
							Description: "CPL abaixo da média, há espaço para escalar",
							Action:      map[string]interface{}{"budget": 120.0},
						},
						{
							Type:        "BID_STRATEGY", // tipo desconhecido, deve ser ignorado
							Title:       "Mudar estratégia de lance",
							Description: "n/a",
						},
						{
							Type:        "CREATIVE_SUGGESTION",
							Title:       "Testar novo criativo",
							Description: "CTR em queda nos últimos dias",
						},
					}, nil)

				m.suggestionRepo.EXPECT().
					Create(gomock.Any()).
					DoAndReturn(func(suggestion *domain.Suggestion) error {
						assert.Equal(t, domain.SystemUserID, suggestion.UserID)
						assert.Equal(t, domain.SuggestionPending, suggestion.Status)
						assert.True(t, suggestion.AIGenerated)
						assert.Equal(t, "cmp_001", *suggestion.CampaignID)
						return nil
					}).
					Times(2)

				m.locker.EXPECT().
					Release(gomock.Any(), "cmp_001", "lock-token-1").
					Return(nil)
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Falha ao persistir sugestão - erro propaga para retry",
			setup: func() {
				m.campaignRepo.EXPECT().
					GetByID("cmp_001").
					Return(campaign, nil)

				m.assistant.EXPECT().
					SuggestOptimizations(gomock.Any(), campaign, gomock.Any()).
					Return([]aidomain.SuggestionDraft{
						{
							Type:        "TARGETING_OPTIMIZATION",
							Title:       "Refinar público",
							Description: "Frequência alta no público atual",
						},
					}, nil)

				m.suggestionRepo.EXPECT().
					Create(gomock.Any()).
					Return(errors.New("connection refused"))

				m.locker.EXPECT().
					Release(gomock.Any(), "cmp_001", "lock-token-1").
					Return(nil)
			},
			validate: func(t *testing.T, err error) {
				var campaignErr *CampaignError
				assert.True(t, errors.As(err, &campaignErr))
				assert.ErrorIs(t, campaignErr.Err, ErrDatabaseOperation)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			err := service.OptimizeCampaign(context.Background(), payload)

			tt.validate(t, err)
		})
	}
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	tests := []struct {
		name     string
		request  *domain.UpdateCampaignRequest
		setup    func()
		validate func(t *testing.T, campaign *domain.Campaign, err error)
	}{
		{
			name: "Atualização local sem vínculo remoto - nenhuma chamada ao Meta",
			request: &domain.UpdateCampaignRequest{
				Name:   stringPtr("Novo nome"),
				Budget: float64Ptr(300),
			},
			setup: func() {
				m.campaignRepo.EXPECT().
					GetByIDAndUser("cmp_001", "user_001").
					Return(&domain.Campaign{ID: "cmp_001", UserID: "user_001", Name: "Antigo", Budget: 100}, nil)

				m.campaignRepo.EXPECT().
					Update(gomock.Any()).
					Return(nil)
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "Novo nome", campaign.Name)
				assert.Equal(t, 300.0, campaign.Budget)
			},
		},
		{
			name: "Falha remota na atualização - estado local permanece autoritativo",
			request: &domain.UpdateCampaignRequest{
				Budget: float64Ptr(500),
			},
			setup: func() {
				m.campaignRepo.EXPECT().
					GetByIDAndUser("cmp_001", "user_001").
					Return(&domain.Campaign{
						ID:             "cmp_001",
						UserID:         "user_001",
						Budget:         100,
						MetaAccountID:  stringPtr("ma_001"),
						MetaCampaignID: stringPtr("meta_789"),
					}, nil)

				m.campaignRepo.EXPECT().
					Update(gomock.Any()).
					Return(nil)

				m.metaAccountRepo.EXPECT().
					GetByID("ma_001").
					Return(&domain.MetaAccount{ID: "ma_001", AccessToken: "token-abc", Active: true}, nil)

				m.metaService.EXPECT().
					UpdateCampaign("token-abc", "meta_789", gomock.Any()).
					Return(errors.New("graph api unavailable"))
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 500.0, campaign.Budget)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			campaign, err := service.Update(context.Background(), "cmp_001", "user_001", tt.request)

			tt.validate(t, campaign, err)
		})
	}
}

func TestService_Remove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, err error)
	}{
		{
			name: "Exclusão remota falha - exclusão local prossegue",
			setup: func() {
				m.campaignRepo.EXPECT().
					GetByIDAndUser("cmp_001", "user_001").
					Return(&domain.Campaign{
						ID:             "cmp_001",
						UserID:         "user_001",
						MetaAccountID:  stringPtr("ma_001"),
						MetaCampaignID: stringPtr("meta_789"),
					}, nil)

				m.metaAccountRepo.EXPECT().
					GetByID("ma_001").
					Return(&domain.MetaAccount{ID: "ma_001", AccessToken: "token-abc", Active: true}, nil)

				m.metaService.EXPECT().
					DeleteCampaign("token-abc", "meta_789").
					Return(errors.New("graph api unavailable"))

				m.campaignRepo.EXPECT().
					Delete("cmp_001").
					Return(nil)
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Campanha de outro usuário - não encontrada",
			setup: func() {
				m.campaignRepo.EXPECT().
					GetByIDAndUser("cmp_001", "user_001").
					Return(nil, nil)
			},
			validate: func(t *testing.T, err error) {
				var campaignErr *CampaignError
				assert.True(t, errors.As(err, &campaignErr))
				assert.ErrorIs(t, campaignErr.Err, ErrCampaignNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			err := service.Remove(context.Background(), "cmp_001", "user_001")

			tt.validate(t, err)
		})
	}
}

func float64Ptr(f float64) *float64 {
	return &f
}
