package queue

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedisQueue_Register(t *testing.T) {
	q := NewRedisQueue(nil, 3)

	handler := func(ctx context.Context, payload json.RawMessage) error { return nil }

	q.Register("campaign-sync", "sync-campaign-performance", handler)
	q.Register("campaign-sync", "another-job", handler)
	q.Register("campaign-optimization", "optimize-campaign", handler)

	// A mesma fila registrada duas vezes não duplica o consumidor
	assert.Equal(t, []string{"campaign-sync", "campaign-optimization"}, q.queues)
	assert.Len(t, q.handlers, 3)
	assert.Contains(t, q.handlers, "campaign-sync/sync-campaign-performance")
}

func TestRedisQueue_StartWithoutHandlers(t *testing.T) {
	q := NewRedisQueue(nil, 3)

	err := q.Start(context.Background(), 2)

	assert.Error(t, err)
}

func TestNewRedisQueue_DefaultMaxAttempts(t *testing.T) {
	q := NewRedisQueue(nil, 0)

	assert.Equal(t, 3, q.maxAttempts)
}

func TestQueueKeys(t *testing.T) {
	assert.Equal(t, "queue:campaign-sync", pendingKey("campaign-sync"))
	assert.Equal(t, "queue:campaign-sync:processing", processingKey("campaign-sync"))
	assert.Equal(t, "queue:campaign-sync:dead", deadKey("campaign-sync"))
}

func TestJobEnvelope(t *testing.T) {
	payload, err := json.Marshal(map[string]string{"campaign_id": "cmp_001"})
	assert.NoError(t, err)

	job := Job{
		ID:       "job_001",
		Name:     "sync-campaign-performance",
		Payload:  payload,
		Attempts: 2,
	}

	envelope, err := json.Marshal(job)
	assert.NoError(t, err)

	var decoded Job
	assert.NoError(t, json.Unmarshal(envelope, &decoded))

	// O payload atravessa o envelope sem ser reinterpretado
	assert.JSONEq(t, `{"campaign_id":"cmp_001"}`, string(decoded.Payload))
	assert.Equal(t, 2, decoded.Attempts)
	assert.Equal(t, "sync-campaign-performance", decoded.Name)
}
