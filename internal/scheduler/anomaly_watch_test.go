package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2025-2-NADS4/Projeto4/internal/config"
	"github.com/2025-2-NADS4/Projeto4/internal/domain"
)

type stubSource struct {
	dataset *domain.Dataset
	err     error
	scopes  []domain.DatasetScope
}

func (s *stubSource) LoadDataset(_ context.Context, scope domain.DatasetScope) (*domain.Dataset, error) {
	s.scopes = append(s.scopes, scope)
	return s.dataset, s.err
}

type recordingAlertPublisher struct {
	alerts []domain.StoreAlert
	err    error
}

func (p *recordingAlertPublisher) PublishAlert(_ context.Context, alert domain.StoreAlert) error {
	if p.err != nil {
		return p.err
	}
	p.alerts = append(p.alerts, alert)
	return nil
}

func concludedOrder(store string, createdAt time.Time, amount float64) domain.Order {
	order := domain.Order{
		ID:          createdAt.Format(time.RFC3339) + store,
		CreatedAt:   createdAt,
		TotalAmount: amount,
		Status:      domain.OrderStatusConcluded,
	}
	if store != "" {
		order.CompanyID = null.StringFrom(store)
	}
	return order
}

func newTestWatch(source *stubSource, publisher AlertPublisher, now time.Time) *AnomalyWatchService {
	service := NewAnomalyWatchService(source, publisher, &config.Config{
		AnomalyWatch: config.AnomalyWatch{CronSchedule: "0 7 * * *", Enabled: true},
	})
	service.now = func() time.Time { return now }
	return service
}

func TestAnomalyWatchService_RunOnce(t *testing.T) {
	now := time.Date(2025, time.March, 15, 9, 0, 0, 0, time.UTC)
	// janela recente: 08/03 a 14/03; janela anterior: 01/03 a 07/03
	recentDay := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	previousDay := time.Date(2025, time.March, 3, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		orders         []domain.Order
		expectedStores []string
	}{
		{
			name: "queda acima de 30% dispara alerta para a loja",
			orders: []domain.Order{
				concludedOrder("loja-a", previousDay, 1000),
				concludedOrder("loja-a", recentDay, 500),
			},
			expectedStores: []string{"loja-a"},
		},
		{
			name: "queda pequena não dispara alerta",
			orders: []domain.Order{
				concludedOrder("loja-a", previousDay, 1000),
				concludedOrder("loja-a", recentDay, 900),
			},
		},
		{
			name: "janela anterior abaixo do piso não é avaliada",
			orders: []domain.Order{
				concludedOrder("loja-a", previousDay, 150),
			},
		},
		{
			name: "pedidos sem loja são agrupados como loja desconhecida",
			orders: []domain.Order{
				concludedOrder("", previousDay, 800),
				concludedOrder("loja-b", previousDay, 800),
				concludedOrder("loja-b", recentDay, 790),
			},
			expectedStores: []string{domain.UnknownStore},
		},
		{
			name: "pedidos não concluídos são ignorados",
			orders: []domain.Order{
				{ID: "1", CreatedAt: previousDay, TotalAmount: 5000, Status: "CANCELED", CompanyID: null.StringFrom("loja-a")},
			},
		},
		{
			name: "pedidos de hoje ficam fora da janela recente",
			orders: []domain.Order{
				concludedOrder("loja-a", previousDay, 1000),
				concludedOrder("loja-a", now, 1000),
			},
			expectedStores: []string{"loja-a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := &stubSource{dataset: &domain.Dataset{Orders: tt.orders}}
			publisher := &recordingAlertPublisher{}
			service := newTestWatch(source, publisher, now)

			published, err := service.RunOnce(context.Background())
			require.NoError(t, err)
			assert.Equal(t, len(tt.expectedStores), published)
			assert.Equal(t, []domain.DatasetScope{domain.DatasetScopeClient}, source.scopes)

			stores := make([]string, 0, len(publisher.alerts))
			for _, alert := range publisher.alerts {
				stores = append(stores, alert.StoreID)
				assert.Equal(t, domain.AlertLevelCritical, alert.Alert.Level)
				assert.Equal(t, time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC), alert.ReferenceDate)
				assert.Equal(t, now, alert.DetectedAt)
			}
			if len(tt.expectedStores) == 0 {
				assert.Empty(t, stores)
			} else {
				assert.Equal(t, tt.expectedStores, stores)
			}
		})
	}
}

func TestAnomalyWatchService_RunOnce_Errors(t *testing.T) {
	now := time.Date(2025, time.March, 15, 9, 0, 0, 0, time.UTC)

	t.Run("falha ao carregar pedidos", func(t *testing.T) {
		source := &stubSource{err: errors.New("timeout")}
		service := newTestWatch(source, &recordingAlertPublisher{}, now)

		published, err := service.RunOnce(context.Background())
		assert.Error(t, err)
		assert.Zero(t, published)
	})

	t.Run("falha de publicação não interrompe as demais lojas", func(t *testing.T) {
		source := &stubSource{dataset: &domain.Dataset{Orders: []domain.Order{
			concludedOrder("loja-a", time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC), 1000),
		}}}
		publisher := &recordingAlertPublisher{err: errors.New("broker indisponível")}
		service := newTestWatch(source, publisher, now)

		published, err := service.RunOnce(context.Background())
		require.NoError(t, err)
		assert.Zero(t, published)
	})
}

func TestAnomalyWatchService_StartDisabled(t *testing.T) {
	service := NewAnomalyWatchService(&stubSource{}, LogAlertPublisher{}, &config.Config{
		AnomalyWatch: config.AnomalyWatch{CronSchedule: "0 7 * * *", Enabled: false},
	})

	require.NoError(t, service.Start(context.Background()))

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_enabled"])
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, "0 7 * * *", status["sync_cron"])
}

func TestAnomalyWatchService_WatchUpdatesStatus(t *testing.T) {
	now := time.Date(2025, time.March, 15, 9, 0, 0, 0, time.UTC)
	source := &stubSource{dataset: &domain.Dataset{Orders: []domain.Order{
		concludedOrder("loja-a", time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC), 1000),
	}}}
	service := newTestWatch(source, &recordingAlertPublisher{}, now)

	service.watch(context.Background())

	status := service.GetStatus()
	assert.Equal(t, 1, status["last_alerts_published"])
	assert.Equal(t, now, status["last_sync_completed_at"])
	assert.Equal(t, "", status["last_error"])
}
