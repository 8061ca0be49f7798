package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-manager-api/infrastructure/queue"
	"github.com/vfg2006/campaign-manager-api/internal/config"
	"github.com/vfg2006/campaign-manager-api/internal/domain"
	"github.com/vfg2006/campaign-manager-api/internal/usecases/campaigning"
)

// Worker conecta os handlers de negócio ao mecanismo de filas
type Worker struct {
	queue           *queue.RedisQueue
	campaignService campaigning.CampaignService
	cfg             *config.Config
}

func New(redisQueue *queue.RedisQueue, campaignService campaigning.CampaignService, cfg *config.Config) *Worker {
	return &Worker{
		queue:           redisQueue,
		campaignService: campaignService,
		cfg:             cfg,
	}
}

// Start registra os handlers e inicia o consumo das filas
func (w *Worker) Start(ctx context.Context) error {
	w.queue.Register(domain.QueueCampaignSync, domain.JobSyncCampaignPerformance, w.handleSyncPerformance)
	w.queue.Register(domain.QueueCampaignOptimization, domain.JobOptimizeCampaign, w.handleOptimizeCampaign)

	logrus.WithFields(logrus.Fields{
		"queues":      []string{domain.QueueCampaignSync, domain.QueueCampaignOptimization},
		"concurrency": w.cfg.Queue.Concurrency,
	}).Info("Iniciando workers de processamento de jobs")

	return w.queue.Start(ctx, w.cfg.Queue.Concurrency)
}

func (w *Worker) handleSyncPerformance(ctx context.Context, raw json.RawMessage) error {
	var payload domain.SyncPerformancePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		// Payload malformado nunca vai ficar válido com retry
		logrus.WithError(err).Error("worker: payload inválido para sync-campaign-performance")
		return nil
	}

	return w.campaignService.SyncPerformance(ctx, payload)
}

func (w *Worker) handleOptimizeCampaign(ctx context.Context, raw json.RawMessage) error {
	var payload domain.OptimizeCampaignPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("worker: payload inválido para optimize-campaign: %w", err)
	}

	return w.campaignService.OptimizeCampaign(ctx, payload)
}
