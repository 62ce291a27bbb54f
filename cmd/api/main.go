package main

import (
	"context"
	"io"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/2025-2-NADS4/Projeto4/infrastructure/cache"
	"github.com/2025-2-NADS4/Projeto4/infrastructure/database/postgres"
	"github.com/2025-2-NADS4/Projeto4/infrastructure/integrator/supabase"
	"github.com/2025-2-NADS4/Projeto4/infrastructure/integrator/supabase/supabaseclient"
	"github.com/2025-2-NADS4/Projeto4/infrastructure/messaging/rabbitmq"
	"github.com/2025-2-NADS4/Projeto4/infrastructure/repository"
	"github.com/2025-2-NADS4/Projeto4/internal/api"
	"github.com/2025-2-NADS4/Projeto4/internal/api/handler"
	"github.com/2025-2-NADS4/Projeto4/internal/config"
	"github.com/2025-2-NADS4/Projeto4/internal/domain"
	"github.com/2025-2-NADS4/Projeto4/internal/scheduler"
	"github.com/2025-2-NADS4/Projeto4/internal/usecases/authenticating"
	"github.com/2025-2-NADS4/Projeto4/internal/usecases/dashboarding"
	"github.com/2025-2-NADS4/Projeto4/internal/usecases/simulating"
	"github.com/2025-2-NADS4/Projeto4/pkg/log"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		cleanups     []func() error
		dependencies []handler.Dependency
		pgConn       postgres.Conn
	)

	if cfg.UsesPostgres() {
		pgConn = pgconn(ctx, cfg.Database)
		cleanups = append(cleanups, pgConn.Close)
		dependencies = append(dependencies, handler.Dependency{Name: "postgres", Ping: pgConn.Ping})
	}

	sessionCache, err := cache.New(ctx, cfg.Cache)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar o cache")
	}
	if closer, ok := sessionCache.(io.Closer); ok {
		cleanups = append(cleanups, closer.Close)
	}
	dependencies = append(dependencies, handler.Dependency{Name: "cache", Ping: sessionCache.Ping})
	logrus.WithField("driver", cfg.Cache.Driver).Info("Cache de sessões inicializado")

	var supabaseIntegrator supabase.SupabaseIntegrator
	if cfg.Dataset.Source == config.DataSourceSupabase || cfg.Auth.Provider == config.AuthProviderSupabase {
		supabaseIntegrator = supabase.New(supabaseclient.NewClient(cfg.Supabase))
	}

	var reader dashboarding.RecordReader
	if cfg.Dataset.Source == config.DataSourceSupabase {
		reader = supabaseIntegrator
	} else {
		reader = repository.NewDatasetRepository(pgConn)
	}
	logrus.WithField("data_source", cfg.Dataset.Source).Info("Fonte de dados configurada")

	var identityProvider authenticating.IdentityProvider
	if cfg.Auth.Provider == config.AuthProviderSupabase {
		identityProvider = authenticating.NewSupabaseProvider(supabaseIntegrator)
	} else {
		identityProvider = authenticating.NewDatabaseProvider(repository.NewUserRepository(pgConn))
	}

	authenticator := authenticating.NewService(identityProvider, sessionCache, cfg)

	datasetSource := dashboarding.NewDatasetSource(reader, domain.RowLimits{
		Orders:    cfg.Dataset.OrdersRowLimit,
		Customers: cfg.Dataset.CustomersRowLimit,
		Campaigns: cfg.Dataset.CampaignsRowLimit,
		Queue:     cfg.Dataset.QueueRowLimit,
	})
	dashboards := dashboarding.NewService(datasetSource, sessionCache, cfg.Cache.DatasetTTL)
	simulator := simulating.NewService()

	var alertPublisher scheduler.AlertPublisher = scheduler.LogAlertPublisher{}
	if cfg.RabbitMQ.Enabled {
		mq, err := rabbitmq.Dial(cfg.RabbitMQ)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao conectar ao RabbitMQ")
		}
		cleanups = append(cleanups, func() error {
			mq.Close()
			return nil
		})
		dependencies = append(dependencies, handler.Dependency{
			Name: "rabbitmq",
			Ping: func(context.Context) error { return mq.Ping() },
		})
		alertPublisher = rabbitmq.NewAlertPublisher(mq)
		logrus.WithField("exchange", cfg.RabbitMQ.Exchange).Info("Publicação de alertas no RabbitMQ habilitada")
	}

	anomalyWatch := scheduler.NewAnomalyWatchService(datasetSource, alertPublisher, cfg)
	if err := anomalyWatch.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do job de variação anômala")
	}

	server := api.New(cfg, api.Services{
		Authenticator: authenticator,
		Dashboards:    dashboards,
		Simulator:     simulator,
		CronJobs: handler.CronJobServices{
			handler.CronJobTypeAnomalyWatch: anomalyWatch,
		},
		Dependencies: dependencies,
	}, cleanups...)

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	log.Setup(logrus.InfoLevel.String())
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
