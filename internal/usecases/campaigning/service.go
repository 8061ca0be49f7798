package campaigning

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-manager-api/infrastructure/integrator/assistant"
	"github.com/vfg2006/campaign-manager-api/infrastructure/integrator/meta"
	"github.com/vfg2006/campaign-manager-api/infrastructure/queue"
	"github.com/vfg2006/campaign-manager-api/infrastructure/repository"
	"github.com/vfg2006/campaign-manager-api/internal/config"
	"github.com/vfg2006/campaign-manager-api/internal/domain"
	"github.com/vfg2006/campaign-manager-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-manager-api/pkg/utils"
)

type CampaignService interface {
	Create(ctx context.Context, userID string, request *domain.CreateCampaignRequest) (*domain.Campaign, error)
	FindAll(userID string) ([]*domain.Campaign, error)
	FindOne(campaignID, userID string) (*domain.Campaign, error)
	Update(ctx context.Context, campaignID, userID string, request *domain.UpdateCampaignRequest) (*domain.Campaign, error)
	Remove(ctx context.Context, campaignID, userID string) error
	GetPerformance(campaignID, userID string, startDate, endDate time.Time) ([]*domain.CampaignPerformance, error)
	SyncPerformance(ctx context.Context, payload domain.SyncPerformancePayload) error
	OptimizeCampaign(ctx context.Context, payload domain.OptimizeCampaignPayload) error
}

type Service struct {
	campaignRepository    repository.CampaignRepository
	performanceRepository repository.CampaignPerformanceRepository
	suggestionRepository  repository.SuggestionRepository
	metaAccountRepository repository.MetaAccountRepository
	metaService           meta.Integrator
	assistantService      assistant.Integrator
	enqueuer              queue.Enqueuer
	locker                queue.Locker
	cfg                   *config.Config
}

func NewService(
	campaignRepository repository.CampaignRepository,
	performanceRepository repository.CampaignPerformanceRepository,
	suggestionRepository repository.SuggestionRepository,
	metaAccountRepository repository.MetaAccountRepository,
	metaService meta.Integrator,
	assistantService assistant.Integrator,
	enqueuer queue.Enqueuer,
	locker queue.Locker,
	cfg *config.Config,
) CampaignService {
	return &Service{
		campaignRepository:    campaignRepository,
		performanceRepository: performanceRepository,
		suggestionRepository:  suggestionRepository,
		metaAccountRepository: metaAccountRepository,
		metaService:           metaService,
		assistantService:      assistantService,
		enqueuer:              enqueuer,
		locker:                locker,
		cfg:                   cfg,
	}
}

// Create persiste a campanha localmente antes de qualquer chamada remota.
// A escrita local sempre vence: falha no Meta é registrada e absorvida.
func (s *Service) Create(ctx context.Context, userID string, request *domain.CreateCampaignRequest) (*domain.Campaign, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	campaignID, err := utils.GenerateID()
	if err != nil {
		return nil, NewCampaignError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para campanha")
	}

	campaign := &domain.Campaign{
		ID:             campaignID,
		UserID:         userID,
		Name:           request.Name,
		Objective:      request.Objective,
		Budget:         request.Budget,
		BudgetType:     request.BudgetType,
		TargetAudience: request.TargetAudience,
		AdCreative:     request.AdCreative,
		MetaAccountID:  request.MetaAccountID,
		Status:         domain.CampaignPaused,
	}

	if err := s.campaignRepository.Create(campaign); err != nil {
		logrus.WithError(err).Error("Error creating campaign on the repository")
		return nil, NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao salvar campanha no banco de dados")
	}

	if request.CreateOnMeta && request.MetaAccountID != nil {
		s.createOnMeta(ctx, campaign, request)
	}

	return campaign, nil
}

// createOnMeta espelha a campanha na plataforma do Meta e, em caso de sucesso,
// guarda o id remoto e enfileira a primeira sincronização de performance.
func (s *Service) createOnMeta(ctx context.Context, campaign *domain.Campaign, request *domain.CreateCampaignRequest) {
	logger := logrus.WithFields(logrus.Fields{
		"campaign_id":     campaign.ID,
		"meta_account_id": *request.MetaAccountID,
	})

	account, err := s.metaAccountRepository.GetByIDAndUser(*request.MetaAccountID, campaign.UserID)
	if err != nil {
		logger.WithError(err).Error("Error getting meta account on the repository")
		return
	}

	if account == nil || !account.Active {
		logger.Warn("Conta de anúncios inexistente ou inativa, campanha permanece apenas local")
		return
	}

	result, err := s.metaService.CreateCampaign(account.AccessToken, account.AdAccountID, request)
	if err != nil {
		logger.WithError(err).Error("Error creating campaign on Meta, campanha permanece apenas local")
		return
	}

	if err := s.campaignRepository.SetMetaCampaignID(campaign.ID, result.CampaignID); err != nil {
		logger.WithError(err).Error("Error saving meta campaign id on the repository")
		return
	}

	campaign.MetaCampaignID = &result.CampaignID

	payload := domain.SyncPerformancePayload{
		CampaignID:     campaign.ID,
		MetaCampaignID: result.CampaignID,
	}

	if err := s.enqueuer.Enqueue(ctx, domain.QueueCampaignSync, domain.JobSyncCampaignPerformance, payload); err != nil {
		logger.WithError(err).Error("Error enqueueing performance sync job")
		return
	}

	logger.WithField("meta_campaign_id", result.CampaignID).Info("Campanha espelhada no Meta e sincronização agendada")
}

func (s *Service) FindAll(userID string) ([]*domain.Campaign, error) {
	campaigns, err := s.campaignRepository.ListByUser(userID)
	if err != nil {
		logrus.WithError(err).Error("Error listing campaigns on the repository")
		return nil, NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar campanhas no banco de dados")
	}

	return campaigns, nil
}

// FindOne busca a campanha do usuário com a conta vinculada, o histórico
// recente de performance e as sugestões pendentes.
func (s *Service) FindOne(campaignID, userID string) (*domain.Campaign, error) {
	campaign, err := s.campaignRepository.GetByIDAndUser(campaignID, userID)
	if err != nil {
		logrus.WithError(err).Error("Error getting campaign on the repository")
		return nil, NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar campanha no banco de dados")
	}

	if campaign == nil {
		return nil, NewCampaignErrorWithID(ErrCampaignNotFound, apiErrors.ErrCampaignNotFound, campaignID, "Campanha não encontrada")
	}

	if campaign.MetaAccountID != nil {
		account, err := s.metaAccountRepository.GetByID(*campaign.MetaAccountID)
		if err != nil {
			logrus.WithError(err).Warn("Error getting linked meta account on the repository")
		} else {
			campaign.MetaAccount = account
		}
	}

	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -30)

	performances, err := s.performanceRepository.ListByCampaign(campaignID, startDate, endDate)
	if err != nil {
		logrus.WithError(err).Warn("Error listing campaign performances on the repository")
	} else {
		campaign.Performances = performances
	}

	suggestions, err := s.suggestionRepository.ListPendingByCampaign(campaignID)
	if err != nil {
		logrus.WithError(err).Warn("Error listing pending suggestions on the repository")
	} else {
		campaign.Suggestions = suggestions
	}

	return campaign, nil
}

// Update aplica a mudança localmente e espelha no Meta em melhor esforço
func (s *Service) Update(ctx context.Context, campaignID, userID string, request *domain.UpdateCampaignRequest) (*domain.Campaign, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	campaign, err := s.campaignRepository.GetByIDAndUser(campaignID, userID)
	if err != nil {
		logrus.WithError(err).Error("Error getting campaign on the repository")
		return nil, NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar campanha no banco de dados")
	}

	if campaign == nil {
		return nil, NewCampaignErrorWithID(ErrCampaignNotFound, apiErrors.ErrCampaignNotFound, campaignID, "Campanha não encontrada")
	}

	applyUpdate(campaign, request)

	if err := s.campaignRepository.Update(campaign); err != nil {
		logrus.WithError(err).Error("Error updating campaign on the repository")
		return nil, NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, "Falha ao atualizar campanha no banco de dados")
	}

	if campaign.MetaCampaignID != nil {
		s.mirrorUpdate(campaign, request)
	}

	return campaign, nil
}

// mirrorUpdate propaga a atualização para a campanha remota; falha remota
// não invalida o resultado local.
func (s *Service) mirrorUpdate(campaign *domain.Campaign, request *domain.UpdateCampaignRequest) {
	logger := logrus.WithFields(logrus.Fields{
		"campaign_id":      campaign.ID,
		"meta_campaign_id": *campaign.MetaCampaignID,
	})

	account := s.linkedAccount(campaign)
	if account == nil {
		logger.Warn("Conta de anúncios indisponível, atualização remota ignorada")
		return
	}

	if err := s.metaService.UpdateCampaign(account.AccessToken, *campaign.MetaCampaignID, request); err != nil {
		logger.WithError(err).Error("Error updating campaign on Meta, estado local permanece autoritativo")
	}
}

// Remove exclui a campanha remota em melhor esforço e depois a local.
// A exclusão local acontece mesmo quando o Meta está indisponível.
func (s *Service) Remove(ctx context.Context, campaignID, userID string) error {
	campaign, err := s.campaignRepository.GetByIDAndUser(campaignID, userID)
	if err != nil {
		logrus.WithError(err).Error("Error getting campaign on the repository")
		return NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar campanha no banco de dados")
	}

	if campaign == nil {
		return NewCampaignErrorWithID(ErrCampaignNotFound, apiErrors.ErrCampaignNotFound, campaignID, "Campanha não encontrada")
	}

	if campaign.MetaCampaignID != nil {
		if account := s.linkedAccount(campaign); account != nil {
			if err := s.metaService.DeleteCampaign(account.AccessToken, *campaign.MetaCampaignID); err != nil {
				logrus.WithFields(logrus.Fields{
					"campaign_id":      campaignID,
					"meta_campaign_id": *campaign.MetaCampaignID,
				}).WithError(err).Error("Error deleting campaign on Meta, exclusão local prossegue")
			}
		}
	}

	if err := s.campaignRepository.Delete(campaignID); err != nil {
		logrus.WithError(err).Error("Error deleting campaign on the repository")
		return NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, "Falha ao excluir campanha no banco de dados")
	}

	return nil
}

func (s *Service) GetPerformance(campaignID, userID string, startDate, endDate time.Time) ([]*domain.CampaignPerformance, error) {
	campaign, err := s.campaignRepository.GetByIDAndUser(campaignID, userID)
	if err != nil {
		logrus.WithError(err).Error("Error getting campaign on the repository")
		return nil, NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar campanha no banco de dados")
	}

	if campaign == nil {
		return nil, NewCampaignErrorWithID(ErrCampaignNotFound, apiErrors.ErrCampaignNotFound, campaignID, "Campanha não encontrada")
	}

	performances, err := s.performanceRepository.ListByCampaign(campaignID, startDate, endDate)
	if err != nil {
		logrus.WithError(err).Error("Error listing campaign performances on the repository")
		return nil, NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, "Falha ao listar performances no banco de dados")
	}

	return performances, nil
}

// SyncPerformance é o handler do job sync-campaign-performance. Rebusca a
// campanha e a conta vinculada, coleta as métricas das últimas 24 horas e
// grava o snapshot do dia. Toda falha é registrada e absorvida: o job nunca
// volta para a fila por erro de sincronização.
func (s *Service) SyncPerformance(ctx context.Context, payload domain.SyncPerformancePayload) error {
	logger := logrus.WithFields(logrus.Fields{
		"campaign_id":      payload.CampaignID,
		"meta_campaign_id": payload.MetaCampaignID,
	})

	campaign, err := s.campaignRepository.GetByID(payload.CampaignID)
	if err != nil {
		logger.WithError(err).Error("sync: erro ao buscar campanha no banco de dados")
		return nil
	}

	if campaign == nil || campaign.MetaCampaignID == nil {
		logger.Warn("sync: campanha inexistente ou sem vínculo remoto, sincronização ignorada")
		return nil
	}

	account := s.linkedAccount(campaign)
	if account == nil {
		logger.Warn("sync: conta de anúncios inexistente ou inativa, sincronização ignorada")
		return nil
	}

	now := time.Now()

	metrics, err := s.metaService.GetDailyPerformance(account.AccessToken, *campaign.MetaCampaignID, now)
	if err != nil {
		logger.WithError(err).Error("sync: erro ao buscar métricas no Meta")
		return nil
	}

	performance := &domain.CampaignPerformance{
		CampaignID:         campaign.ID,
		Date:               utils.TruncateToDay(now),
		PerformanceMetrics: *metrics,
	}

	if err := s.performanceRepository.SaveOrUpdate(performance); err != nil {
		logger.WithError(err).Error("sync: erro ao gravar snapshot de performance")
		return nil
	}

	logger.WithFields(logrus.Fields{
		"spend": metrics.Spend,
		"leads": metrics.Leads,
	}).Info("sync: snapshot diário de performance gravado")

	s.enqueueOptimization(ctx, campaign.ID, metrics, logger)

	return nil
}

// enqueueOptimization dispara o job de otimização protegido por um lock por
// campanha: sincronizações concorrentes do mesmo dia não geram lotes
// duplicados de sugestões.
func (s *Service) enqueueOptimization(ctx context.Context, campaignID string, metrics *domain.PerformanceMetrics, logger *logrus.Entry) {
	token, acquired, err := s.locker.TryLock(ctx, campaignID)
	if err != nil {
		logger.WithError(err).Error("sync: erro ao adquirir lock de otimização")
		return
	}

	if !acquired {
		logger.Debug("sync: otimização já em andamento para a campanha, job não enfileirado")
		return
	}

	payload := domain.OptimizeCampaignPayload{
		CampaignID:  campaignID,
		Performance: *metrics,
		LockToken:   token,
	}

	if err := s.enqueuer.Enqueue(ctx, domain.QueueCampaignOptimization, domain.JobOptimizeCampaign, payload); err != nil {
		logger.WithError(err).Error("sync: erro ao enfileirar job de otimização")

		if releaseErr := s.locker.Release(ctx, campaignID, token); releaseErr != nil {
			logger.WithError(releaseErr).Warn("sync: erro ao liberar lock de otimização")
		}
	}
}

// OptimizeCampaign é o handler do job optimize-campaign. Envia o snapshot de
// performance ao serviço de IA e persiste cada sugestão devolvida em nome do
// pseudo-usuário de sistema. Erros inesperados propagam para a fila tentar
// de novo.
func (s *Service) OptimizeCampaign(ctx context.Context, payload domain.OptimizeCampaignPayload) error {
	logger := logrus.WithField("campaign_id", payload.CampaignID)

	if payload.LockToken != "" {
		defer func() {
			if err := s.locker.Release(ctx, payload.CampaignID, payload.LockToken); err != nil {
				logger.WithError(err).Warn("optimize: erro ao liberar lock de otimização")
			}
		}()
	}

	campaign, err := s.campaignRepository.GetByID(payload.CampaignID)
	if err != nil {
		logger.WithError(err).Error("optimize: erro ao buscar campanha no banco de dados")
		return NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, payload.CampaignID, "Falha ao buscar campanha no banco de dados")
	}

	if campaign == nil {
		logger.Warn("optimize: campanha não existe mais, job descartado")
		return nil
	}

	drafts, err := s.assistantService.SuggestOptimizations(ctx, campaign, &payload.Performance)
	if err != nil {
		return NewCampaignErrorWithID(ErrAIIntegration, apiErrors.ErrExternalService, payload.CampaignID, "Falha ao obter sugestões do serviço de IA")
	}

	created := 0
	for i := range drafts {
		draft := drafts[i]

		suggestionType := domain.SuggestionType(draft.Type)
		if !suggestionType.Valid() {
			logger.WithField("type", draft.Type).Warn("optimize: tipo de sugestão desconhecido, rascunho ignorado")
			continue
		}

		suggestionID, err := utils.GenerateID()
		if err != nil {
			return NewCampaignError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para sugestão")
		}

		suggestion := &domain.Suggestion{
			ID:          suggestionID,
			UserID:      domain.SystemUserID,
			CampaignID:  &campaign.ID,
			Type:        suggestionType,
			Title:       draft.Title,
			Description: draft.Description,
			AIGenerated: true,
			Status:      domain.SuggestionPending,
		}

		if len(draft.Action) > 0 {
			suggestion.Action = &domain.Payload{
				Kind: draft.Type,
				Data: draft.Action,
			}
		}

		if err := s.suggestionRepository.Create(suggestion); err != nil {
			logger.WithError(err).Error("optimize: erro ao persistir sugestão, lote pode ficar parcial")
			return NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, payload.CampaignID, "Falha ao salvar sugestão no banco de dados")
		}

		created++
	}

	logger.WithField("suggestions_created", created).Info("optimize: sugestões geradas para a campanha")

	return nil
}

// linkedAccount resolve a conta de anúncios ativa vinculada à campanha
func (s *Service) linkedAccount(campaign *domain.Campaign) *domain.MetaAccount {
	if campaign.MetaAccountID == nil {
		return nil
	}

	account, err := s.metaAccountRepository.GetByID(*campaign.MetaAccountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id":     campaign.ID,
			"meta_account_id": *campaign.MetaAccountID,
		}).WithError(err).Error("Error getting meta account on the repository")
		return nil
	}

	if account == nil || !account.Active {
		return nil
	}

	return account
}

func applyUpdate(campaign *domain.Campaign, request *domain.UpdateCampaignRequest) {
	if request.Name != nil {
		campaign.Name = *request.Name
	}

	if request.Objective != nil {
		campaign.Objective = *request.Objective
	}

	if request.Budget != nil {
		campaign.Budget = *request.Budget
	}

	if request.BudgetType != nil {
		campaign.BudgetType = *request.BudgetType
	}

	if request.TargetAudience != nil {
		campaign.TargetAudience = request.TargetAudience
	}

	if request.AdCreative != nil {
		campaign.AdCreative = request.AdCreative
	}

	if request.Status != nil {
		campaign.Status = *request.Status
	}
}
