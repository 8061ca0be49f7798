package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-manager-api/infrastructure/integrator/assistant"
	"github.com/vfg2006/campaign-manager-api/infrastructure/integrator/assistant/aiclient"
	"github.com/vfg2006/campaign-manager-api/infrastructure/integrator/meta"
	"github.com/vfg2006/campaign-manager-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/campaign-manager-api/infrastructure/queue"
	"github.com/vfg2006/campaign-manager-api/infrastructure/repository"
	"github.com/vfg2006/campaign-manager-api/internal/api"
	"github.com/vfg2006/campaign-manager-api/internal/config"
	"github.com/vfg2006/campaign-manager-api/internal/scheduler"
	"github.com/vfg2006/campaign-manager-api/internal/usecases/assisting"
	"github.com/vfg2006/campaign-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-manager-api/internal/usecases/campaigning"
	"github.com/vfg2006/campaign-manager-api/internal/usecases/connecting"
	"github.com/vfg2006/campaign-manager-api/internal/usecases/suggesting"
	"github.com/vfg2006/campaign-manager-api/internal/worker"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
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
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	metaClient := metaclient.NewClient(cfg)
	metaIntegrator := meta.New(cfg, metaClient)

	aiClient := aiclient.NewClient(cfg)
	assistantIntegrator := assistant.New(cfg, aiClient)

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

	suggestionService := suggesting.NewService(suggestionRepo)
	accountService := connecting.NewService(metaAccountRepo)
	assistantService := assisting.NewService(assistantIntegrator)

	// Workers embutidos no mesmo processo da API; em produção podem rodar
	// separados via cmd/worker com QUEUE_WORKERS_EMBEDDED=false
	if cfg.Queue.WorkersEmbedded {
		jobWorker := worker.New(redisQueue, campaignService, cfg)
		go func() {
			if err := jobWorker.Start(ctx); err != nil {
				logrus.WithError(err).Error("Erro ao iniciar os workers de jobs")
			}
		}()
	}

	// Agendador do enfileiramento diário de sincronização de performance
	performanceSyncService := scheduler.NewPerformanceSyncService(campaignRepo, redisQueue, cfg)
	if err := performanceSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de performance")
	} else {
		logrus.Info("Agendador de sincronização de performance iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		campaignService,
		suggestionService,
		accountService,
		assistantService,
		authenticator,
		performanceSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
