package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-manager-api/infrastructure/integrator/assistant"
	"github.com/vfg2006/campaign-manager-api/infrastructure/integrator/assistant/aiclient"
	"github.com/vfg2006/campaign-manager-api/infrastructure/integrator/meta"
	"github.com/vfg2006/campaign-manager-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/campaign-manager-api/infrastructure/queue"
	"github.com/vfg2006/campaign-manager-api/infrastructure/repository"
	"github.com/vfg2006/campaign-manager-api/internal/config"
	"github.com/vfg2006/campaign-manager-api/internal/usecases/campaigning"
	"github.com/vfg2006/campaign-manager-api/internal/worker"
)

// Processo dedicado de workers: consome as filas de sincronização e
// otimização sem servir HTTP. Útil para escalar o processamento de jobs
// separado da API.
func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer pgConn.Close()

	redisClient, err := queue.NewRedisClient(cfg.Redis)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao Redis")
	}
	defer redisClient.Close()

	campaignRepo := repository.NewCampaignRepository(pgConn)
	performanceRepo := repository.NewCampaignPerformanceRepository(pgConn)
	suggestionRepo := repository.NewSuggestionRepository(pgConn)
	metaAccountRepo := repository.NewMetaAccountRepository(pgConn)

	metaIntegrator := meta.New(cfg, metaclient.NewClient(cfg))
	assistantIntegrator := assistant.New(cfg, aiclient.NewClient(cfg))

	redisQueue := queue.NewRedisQueue(redisClient, cfg.Queue.MaxAttempts)
	locker := queue.NewCampaignLocker(redisClient, time.Duration(cfg.Queue.LockTTLSeconds)*time.Second)

	campaignService := campaigning.NewService(
		campaignRepo,
		performanceRepo,
		suggestionRepo,
		metaAccountRepo,
		metaIntegrator,
		assistantIntegrator,
		redisQueue,
		locker,
		cfg,
	)

	jobWorker := worker.New(redisQueue, campaignService, cfg)
	go func() {
		if err := jobWorker.Start(ctx); err != nil {
			logrus.WithError(err).Fatal("Erro ao iniciar os workers de jobs")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido, encerrando workers")
	case <-ctx.Done():
	}

	cancel()

	// Dá um tempo para os handlers em voo terminarem antes de sair
	time.Sleep(2 * time.Second)
	logrus.Info("Workers encerrados")
}
