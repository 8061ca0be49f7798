package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const lockReleaseScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
  return redis.call("DEL", KEYS[1])
end
return 0
`

// Locker é a interface de lock por campanha consumida pelos usecases
type Locker interface {
	TryLock(ctx context.Context, campaignID string) (token string, acquired bool, err error)
	Release(ctx context.Context, campaignID, token string) error
}

// CampaignLocker serializa o fan-out de otimização por campanha: duas
// sincronizações próximas no tempo não devem gerar dois lotes de sugestões.
type CampaignLocker struct {
	client *redis.Client
	script *redis.Script
	ttl    time.Duration
}

func NewCampaignLocker(client *redis.Client, ttl time.Duration) *CampaignLocker {
	return &CampaignLocker{
		client: client,
		script: redis.NewScript(lockReleaseScript),
		ttl:    ttl,
	}
}

func optimizeLockKey(campaignID string) string {
	return fmt.Sprintf("campaign:optimize:lock:%s", campaignID)
}

// TryLock tenta adquirir o lock de otimização da campanha. Retorna o token
// de posse e se a aquisição teve sucesso.
func (l *CampaignLocker) TryLock(ctx context.Context, campaignID string) (string, bool, error) {
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, optimizeLockKey(campaignID), token, l.ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("erro ao adquirir lock da campanha %s: %w", campaignID, err)
	}

	return token, ok, nil
}

// Release libera o lock somente se o token ainda pertencer a este dono
func (l *CampaignLocker) Release(ctx context.Context, campaignID, token string) error {
	if token == "" {
		return nil
	}

	return l.script.Run(ctx, l.client, []string{optimizeLockKey(campaignID)}, token).Err()
}
