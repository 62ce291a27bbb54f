package scheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/2025-2-NADS4/Projeto4/internal/config"
	"github.com/2025-2-NADS4/Projeto4/internal/domain"
	"github.com/2025-2-NADS4/Projeto4/internal/usecases/analyzing"
	"github.com/2025-2-NADS4/Projeto4/internal/usecases/dashboarding"
)

// AlertPublisher entrega os alertas disparados pelo job
type AlertPublisher interface {
	PublishAlert(ctx context.Context, alert domain.StoreAlert) error
}

// LogAlertPublisher apenas registra o alerta quando não há broker configurado
type LogAlertPublisher struct{}

func (LogAlertPublisher) PublishAlert(_ context.Context, alert domain.StoreAlert) error {
	logrus.WithFields(logrus.Fields{
		"alert_store":    alert.StoreID,
		"alert_recent":   alert.Windows.Recent,
		"alert_previous": alert.Windows.Previous,
	}).Warn(alert.Alert.Title)
	return nil
}

// AnomalyWatchConfig representa a configuração do job de variação anômala
type AnomalyWatchConfig struct {
	CronSchedule string
	Enabled      bool
}

// AnomalyWatchService avalia diariamente a regra de queda de receita para cada loja
type AnomalyWatchService struct {
	scheduler           *gocron.Scheduler
	config              AnomalyWatchConfig
	source              dashboarding.DatasetSource
	publisher           AlertPublisher
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastAlerts          int
	lastError           string
}

func NewAnomalyWatchService(
	source dashboarding.DatasetSource,
	publisher AlertPublisher,
	appConfig *config.Config,
) *AnomalyWatchService {
	watchConfig := AnomalyWatchConfig{
		CronSchedule: appConfig.AnomalyWatch.CronSchedule,
		Enabled:      appConfig.AnomalyWatch.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": watchConfig.CronSchedule,
		"enabled":       watchConfig.Enabled,
	}).Info("Configuração do job de variação anômala carregada")

	return &AnomalyWatchService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    watchConfig,
		source:    source,
		publisher: publisher,
		now:       time.Now,
	}
}

// Start inicia o agendador
func (s *AnomalyWatchService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Job de variação anômala desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do job de variação anômala")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.watch(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar job de variação anômala: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do job de variação anômala")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *AnomalyWatchService) watch(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Job de variação anômala já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	alerts, err := s.RunOnce(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	s.lastAlerts = alerts
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
	s.syncMutex.Unlock()

	if err != nil {
		logrus.WithError(err).Error("Erro ao executar job de variação anômala")
		return
	}

	logrus.WithField("job_alerts", alerts).Info("Job de variação anômala concluído")
}

// RunOnce carrega os pedidos, avalia cada loja com as janelas que terminam ontem e
// publica os alertas disparados. Retorna quantos alertas foram publicados.
func (s *AnomalyWatchService) RunOnce(ctx context.Context) (int, error) {
	dataset, err := s.source.LoadDataset(ctx, domain.DatasetScopeClient)
	if err != nil {
		return 0, fmt.Errorf("erro ao carregar pedidos: %w", err)
	}

	now := s.now()
	referenceDate := domain.CalendarDate(now).AddDate(0, 0, -1)

	byStore := make(map[string][]domain.Order)
	for _, order := range analyzing.Concluded(dataset.Orders) {
		store := domain.UnknownStore
		if order.CompanyID.Valid && order.CompanyID.String != "" {
			store = order.CompanyID.String
		}
		byStore[store] = append(byStore[store], order)
	}

	stores := make([]string, 0, len(byStore))
	for store := range byStore {
		stores = append(stores, store)
	}
	sort.Strings(stores)

	published := 0
	for _, store := range stores {
		windows := analyzing.RevenueWindowsEndingAt(byStore[store], referenceDate)
		alert, fired := analyzing.EvaluateAnomaly(windows)
		if !fired {
			continue
		}

		storeAlert := domain.StoreAlert{
			StoreID:       store,
			ReferenceDate: referenceDate,
			DetectedAt:    now,
			Windows:       windows,
			Alert:         *alert,
		}

		if err := s.publisher.PublishAlert(ctx, storeAlert); err != nil {
			logrus.WithError(err).WithField("alert_store", store).Error("Erro ao publicar alerta de variação anômala")
			continue
		}
		published++
	}

	return published, nil
}

// TriggerManualSync inicia manualmente uma execução do job
func (s *AnomalyWatchService) TriggerManualSync(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Job de variação anômala já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando execução manual do job de variação anômala")
	go s.watch(context.WithoutCancel(ctx))
}

// GetStatus retorna o status atual do job
func (s *AnomalyWatchService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.Enabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_alerts_published":  s.lastAlerts,
		"last_error":             s.lastError,
	}
}
