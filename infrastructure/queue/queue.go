package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-manager-api/pkg/utils"
)

// Enqueuer é a interface de produção consumida pelos usecases
type Enqueuer interface {
	Enqueue(ctx context.Context, queueName, jobName string, payload interface{}) error
}

// HandlerFunc processa um job entregue por uma fila. O payload é o JSON
// bruto enfileirado pelo produtor. Um erro retornado reenfileira o job até
// o limite de tentativas; nil confirma a entrega.
type HandlerFunc func(ctx context.Context, payload json.RawMessage) error

// Job é o envelope durável gravado na fila
type Job struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Payload    json.RawMessage `json:"payload"`
	Attempts   int             `json:"attempts"`
	EnqueuedAt time.Time       `json:"enqueued_at"`
}

// RedisQueue implementa produção e consumo de jobs sobre listas do Redis.
// A entrega é pelo-menos-uma-vez: o consumidor move o job para uma lista de
// processamento antes de executá-lo e só o remove após a confirmação; jobs
// abandonados por um worker que morreu são recuperados no próximo Start.
type RedisQueue struct {
	client      *redis.Client
	maxAttempts int

	mu       sync.Mutex
	handlers map[string]HandlerFunc
	queues   []string
}

func NewRedisQueue(client *redis.Client, maxAttempts int) *RedisQueue {
	if maxAttempts <= 0 {
		maxAttempts = 3
	}

	return &RedisQueue{
		client:      client,
		maxAttempts: maxAttempts,
		handlers:    make(map[string]HandlerFunc),
	}
}

func pendingKey(queueName string) string {
	return fmt.Sprintf("queue:%s", queueName)
}

func processingKey(queueName string) string {
	return fmt.Sprintf("queue:%s:processing", queueName)
}

func deadKey(queueName string) string {
	return fmt.Sprintf("queue:%s:dead", queueName)
}

// Enqueue serializa o payload e publica o job na fila nomeada
func (q *RedisQueue) Enqueue(ctx context.Context, queueName, jobName string, payload interface{}) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao serializar payload do job %s: %w", jobName, err)
	}

	id, err := utils.GenerateID()
	if err != nil {
		return fmt.Errorf("erro ao gerar id do job: %w", err)
	}

	job := Job{
		ID:         id,
		Name:       jobName,
		Payload:    raw,
		EnqueuedAt: time.Now().UTC(),
	}

	envelope, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("erro ao serializar job %s: %w", jobName, err)
	}

	if err := q.client.RPush(ctx, pendingKey(queueName), envelope).Err(); err != nil {
		return fmt.Errorf("erro ao enfileirar job %s em %s: %w", jobName, queueName, err)
	}

	logrus.WithFields(logrus.Fields{
		"queue":  queueName,
		"job":    jobName,
		"job_id": job.ID,
	}).Debug("queue: job enfileirado")

	return nil
}

// Register associa um handler a um (fila, job). Deve ser chamado antes de Start.
func (q *RedisQueue) Register(queueName, jobName string, handler HandlerFunc) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.handlers[handlerKey(queueName, jobName)] = handler

	for _, registered := range q.queues {
		if registered == queueName {
			return
		}
	}
	q.queues = append(q.queues, queueName)
}

func handlerKey(queueName, jobName string) string {
	return queueName + "/" + jobName
}

// Start inicia `concurrency` workers por fila registrada e bloqueia até o
// cancelamento do contexto
func (q *RedisQueue) Start(ctx context.Context, concurrency int) error {
	q.mu.Lock()
	queues := make([]string, len(q.queues))
	copy(queues, q.queues)
	q.mu.Unlock()

	if len(queues) == 0 {
		return errors.New("nenhum handler registrado")
	}

	if concurrency <= 0 {
		concurrency = 1
	}

	// Recuperar jobs abandonados por workers que morreram no meio do processamento
	for _, queueName := range queues {
		if err := q.recoverProcessing(ctx, queueName); err != nil {
			logrus.WithError(err).WithField("queue", queueName).
				Warn("queue: erro ao recuperar jobs em processamento")
		}
	}

	var wg sync.WaitGroup

	for _, queueName := range queues {
		for i := 0; i < concurrency; i++ {
			wg.Add(1)
			go func(queueName string, worker int) {
				defer wg.Done()
				q.consume(ctx, queueName, worker)
			}(queueName, i)
		}
	}

	logrus.WithFields(logrus.Fields{
		"queues":      queues,
		"concurrency": concurrency,
	}).Info("queue: workers iniciados")

	wg.Wait()
	return nil
}

// recoverProcessing devolve para a fila os jobs que ficaram presos na lista
// de processamento (entrega pelo-menos-uma-vez exige redelivery)
func (q *RedisQueue) recoverProcessing(ctx context.Context, queueName string) error {
	for {
		err := q.client.LMove(ctx, processingKey(queueName), pendingKey(queueName), "LEFT", "RIGHT").Err()
		if err == redis.Nil {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (q *RedisQueue) consume(ctx context.Context, queueName string, worker int) {
	logger := logrus.WithFields(logrus.Fields{
		"queue":  queueName,
		"worker": worker,
	})

	for {
		if ctx.Err() != nil {
			return
		}

		envelope, err := q.client.BLMove(ctx, pendingKey(queueName), processingKey(queueName),
			"LEFT", "RIGHT", 5*time.Second).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				return
			}

			logger.WithError(err).Error("queue: erro ao consumir fila")
			time.Sleep(time.Second)
			continue
		}

		q.dispatch(ctx, queueName, envelope, logger)
	}
}

func (q *RedisQueue) dispatch(ctx context.Context, queueName, envelope string, logger *logrus.Entry) {
	// Confirmação: remove o envelope da lista de processamento
	ack := func() {
		if err := q.client.LRem(ctx, processingKey(queueName), 1, envelope).Err(); err != nil {
			logger.WithError(err).Error("queue: erro ao confirmar job")
		}
	}

	var job Job
	if err := json.Unmarshal([]byte(envelope), &job); err != nil {
		logger.WithError(err).Error("queue: envelope inválido, descartando")
		ack()
		return
	}

	jobLogger := logger.WithFields(logrus.Fields{
		"job":      job.Name,
		"job_id":   job.ID,
		"attempts": job.Attempts,
	})

	q.mu.Lock()
	handler, ok := q.handlers[handlerKey(queueName, job.Name)]
	q.mu.Unlock()

	if !ok {
		jobLogger.Warn("queue: nenhum handler registrado para o job, descartando")
		ack()
		return
	}

	if err := handler(ctx, job.Payload); err != nil {
		jobLogger.WithError(err).Error("queue: falha ao processar job")
		ack()
		q.retry(ctx, queueName, job, jobLogger)
		return
	}

	ack()
	jobLogger.Debug("queue: job processado com sucesso")
}

// retry reenfileira o job com o contador incrementado; após o limite de
// tentativas o job vai para a fila morta para inspeção manual
func (q *RedisQueue) retry(ctx context.Context, queueName string, job Job, logger *logrus.Entry) {
	job.Attempts++

	envelope, err := json.Marshal(job)
	if err != nil {
		logger.WithError(err).Error("queue: erro ao serializar job para retry")
		return
	}

	if job.Attempts >= q.maxAttempts {
		logger.Warn("queue: tentativas esgotadas, movendo job para a fila morta")
		if err := q.client.RPush(ctx, deadKey(queueName), envelope).Err(); err != nil {
			logger.WithError(err).Error("queue: erro ao gravar na fila morta")
		}
		return
	}

	if err := q.client.RPush(ctx, pendingKey(queueName), envelope).Err(); err != nil {
		logger.WithError(err).Error("queue: erro ao reenfileirar job")
	}
}
