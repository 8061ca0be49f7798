package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-manager-api/infrastructure/queue"
	"github.com/vfg2006/campaign-manager-api/infrastructure/repository"
	"github.com/vfg2006/campaign-manager-api/internal/config"
	"github.com/vfg2006/campaign-manager-api/internal/domain"
)

// PerformanceSyncConfig representa a configuração do agendador de sincronização diária
type PerformanceSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// PerformanceSyncService agenda o enfileiramento diário dos jobs de
// sincronização de performance para todas as campanhas com vínculo remoto.
type PerformanceSyncService struct {
	scheduler           *gocron.Scheduler
	config              PerformanceSyncConfig
	campaignRepo        repository.CampaignRepository
	enqueuer            queue.Enqueuer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewPerformanceSyncService cria uma nova instância do serviço de agendamento
func NewPerformanceSyncService(
	campaignRepo repository.CampaignRepository,
	enqueuer queue.Enqueuer,
	appConfig *config.Config,
) *PerformanceSyncService {
	syncConfig := PerformanceSyncConfig{
		CronSchedule: appConfig.PerformanceSync.CronSchedule,
		SyncEnabled:  appConfig.PerformanceSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização de performance carregada")

	return &PerformanceSyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		campaignRepo: campaignRepo,
		enqueuer:     enqueuer,
		syncRunning:  false,
	}
}

// Start inicia o agendador
func (s *PerformanceSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização diária de performance desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de performance")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.enqueueAllSyncJobs(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de performance: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de performance")
		s.scheduler.Stop()
	}()

	return nil
}

// enqueueAllSyncJobs enfileira um job de sincronização por campanha vinculada.
// A coleta em si acontece nos workers; aqui só produzimos os jobs.
func (s *PerformanceSyncService) enqueueAllSyncJobs(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Enfileiramento de sincronização já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	campaigns, err := s.campaignRepo.ListWithMetaCampaign()
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar campanhas com vínculo remoto")
		return
	}

	enqueued := 0
	for _, campaign := range campaigns {
		payload := domain.SyncPerformancePayload{
			CampaignID:     campaign.ID,
			MetaCampaignID: *campaign.MetaCampaignID,
		}

		if err := s.enqueuer.Enqueue(ctx, domain.QueueCampaignSync, domain.JobSyncCampaignPerformance, payload); err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": campaign.ID,
				"error":       err.Error(),
			}).Error("Erro ao enfileirar job de sincronização")
			continue
		}

		enqueued++
	}

	logrus.WithFields(logrus.Fields{
		"total_campaigns": len(campaigns),
		"enqueued":        enqueued,
		"duration":        time.Since(s.lastSyncStartedAt).String(),
	}).Info("Jobs de sincronização de performance enfileirados")
}

// TriggerManualSync dispara o enfileiramento de sincronização fora do horário agendado
func (s *PerformanceSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Enfileiramento de sincronização já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando enfileiramento manual de sincronização de performance")
	go s.enqueueAllSyncJobs(context.Background())
}

// Status retorna o estado corrente do agendador
func (s *PerformanceSyncService) Status() (running bool, lastStartedAt, lastCompletedAt time.Time) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning, s.lastSyncStartedAt, s.lastSyncCompletedAt
}
