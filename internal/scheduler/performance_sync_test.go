package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	queuemocks "github.com/vfg2006/campaign-manager-api/infrastructure/queue/mocks"
	"github.com/vfg2006/campaign-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestPerformanceSyncService_enqueueAllSyncJobs(t *testing.T) {
	tests := []struct {
		name  string
		setup func(campaignRepo *mocks.MockCampaignRepository, enqueuer *queuemocks.MockEnqueuer)
	}{
		{
			name: "Enfileira um job por campanha com vínculo remoto",
			setup: func(campaignRepo *mocks.MockCampaignRepository, enqueuer *queuemocks.MockEnqueuer) {
				campaignRepo.EXPECT().
					ListWithMetaCampaign().
					Return([]*domain.Campaign{
						{ID: "cmp_001", MetaCampaignID: stringPtr("meta_001")},
						{ID: "cmp_002", MetaCampaignID: stringPtr("meta_002")},
					}, nil)

				enqueuer.EXPECT().
					Enqueue(gomock.Any(), domain.QueueCampaignSync, domain.JobSyncCampaignPerformance, gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _ string, payload interface{}) error {
						p, ok := payload.(domain.SyncPerformancePayload)
						assert.True(t, ok)
						assert.Equal(t, "meta_"+p.CampaignID[4:], p.MetaCampaignID)
						return nil
					}).
					Times(2)
			},
		},
		{
			name: "Erro ao listar campanhas não enfileira nada",
			setup: func(campaignRepo *mocks.MockCampaignRepository, enqueuer *queuemocks.MockEnqueuer) {
				campaignRepo.EXPECT().
					ListWithMetaCampaign().
					Return(nil, errors.New("connection refused"))
			},
		},
		{
			name: "Falha de enfileiramento em uma campanha não interrompe as demais",
			setup: func(campaignRepo *mocks.MockCampaignRepository, enqueuer *queuemocks.MockEnqueuer) {
				campaignRepo.EXPECT().
					ListWithMetaCampaign().
					Return([]*domain.Campaign{
						{ID: "cmp_001", MetaCampaignID: stringPtr("meta_001")},
						{ID: "cmp_002", MetaCampaignID: stringPtr("meta_002")},
					}, nil)

				enqueuer.EXPECT().
					Enqueue(gomock.Any(), domain.QueueCampaignSync, domain.JobSyncCampaignPerformance, domain.SyncPerformancePayload{
						CampaignID:     "cmp_001",
						MetaCampaignID: "meta_001",
					}).
					Return(errors.New("redis indisponível"))

				enqueuer.EXPECT().
					Enqueue(gomock.Any(), domain.QueueCampaignSync, domain.JobSyncCampaignPerformance, domain.SyncPerformancePayload{
						CampaignID:     "cmp_002",
						MetaCampaignID: "meta_002",
					}).
					Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			campaignRepo := mocks.NewMockCampaignRepository(ctrl)
			enqueuer := queuemocks.NewMockEnqueuer(ctrl)
			tt.setup(campaignRepo, enqueuer)

			service := &PerformanceSyncService{
				campaignRepo: campaignRepo,
				enqueuer:     enqueuer,
			}

			service.enqueueAllSyncJobs(context.Background())

			running, lastStartedAt, lastCompletedAt := service.Status()
			assert.False(t, running)
			assert.False(t, lastStartedAt.IsZero())
			assert.False(t, lastCompletedAt.IsZero())
		})
	}
}

func TestPerformanceSyncService_TriggerManualSync(t *testing.T) {
	t.Run("Ignora solicitação quando enfileiramento já está em andamento", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		campaignRepo := mocks.NewMockCampaignRepository(ctrl)
		enqueuer := queuemocks.NewMockEnqueuer(ctrl)

		service := &PerformanceSyncService{
			campaignRepo: campaignRepo,
			enqueuer:     enqueuer,
			syncRunning:  true,
		}

		// Nenhuma expectativa registrada: o repositório não deve ser consultado
		service.TriggerManualSync()
	})
}

func stringPtr(s string) *string {
	return &s
}
