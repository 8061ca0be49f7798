package domain

// Nomes das filas e dos jobs entregues pelo mecanismo de filas
const (
	QueueCampaignSync         = "campaign-sync"
	QueueCampaignOptimization = "campaign-optimization"

	JobSyncCampaignPerformance = "sync-campaign-performance"
	JobOptimizeCampaign        = "optimize-campaign"
)

// SyncPerformancePayload carrega os identificadores do job de sincronização.
// O handler deve rebuscar a campanha, pois tempo arbitrário pode ter passado
// entre o enfileiramento e a entrega.
type SyncPerformancePayload struct {
	CampaignID     string `json:"campaign_id"`
	MetaCampaignID string `json:"meta_campaign_id"`
}

// OptimizeCampaignPayload carrega o snapshot de performance que disparou a
// otimização. O token de lock permite ao handler liberar o lock por campanha
// adquirido no momento do enfileiramento.
type OptimizeCampaignPayload struct {
	CampaignID  string             `json:"campaign_id"`
	Performance PerformanceMetrics `json:"performance"`
	LockToken   string             `json:"lock_token,omitempty"`
}
