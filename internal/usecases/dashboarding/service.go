// Package dashboarding entrega os painéis a partir do snapshot da sessão.
package dashboarding

import (
	"context"
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/2025-2-NADS4/Projeto4/infrastructure/cache"
	"github.com/2025-2-NADS4/Projeto4/internal/domain"
	"github.com/2025-2-NADS4/Projeto4/internal/usecases/analyzing"
	"github.com/2025-2-NADS4/Projeto4/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Dashboarder interface {
	Dataset(ctx context.Context, sessionID string, scope domain.DatasetScope) (*domain.Dataset, error)
	Reload(ctx context.Context, sessionID string, scope domain.DatasetScope) (*domain.SnapshotInfo, error)
	ClientDashboard(ctx context.Context, sessionID string, filters domain.DashboardFilters) (*domain.ClientDashboard, error)
	AdminDashboard(ctx context.Context, sessionID string, filters domain.DashboardFilters) (*domain.AdminDashboard, error)
	FilterOptions(ctx context.Context, sessionID string, scope domain.DatasetScope) (*domain.FilterOptions, error)
	ExportOrders(ctx context.Context, sessionID string, filters domain.DashboardFilters) ([]domain.Order, error)
}

type Service struct {
	source DatasetSource
	cache  cache.Cache
	ttl    time.Duration
	now    func() time.Time
}

func NewService(source DatasetSource, snapshotCache cache.Cache, ttl time.Duration) Dashboarder {
	return &Service{
		source: source,
		cache:  snapshotCache,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Dataset devolve o snapshot da sessão, carregando na primeira leitura
func (s *Service) Dataset(ctx context.Context, sessionID string, scope domain.DatasetScope) (*domain.Dataset, error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{"session_id": sessionID, "snapshot_scope": scope})
	key := cache.DatasetKey(sessionID, string(scope))

	cached, err := s.cache.Get(ctx, key)
	switch {
	case err == nil:
		var dataset domain.Dataset
		if err := json.UnmarshalFromString(cached, &dataset); err == nil {
			return &dataset, nil
		}
		logger.WithError(err).Warn("dashboard: snapshot em cache ilegível, recarregando")
	case !errors.Is(err, cache.ErrCacheMiss):
		logger.WithError(err).Warn("dashboard: cache indisponível, lendo da fonte")
	}

	return s.load(ctx, sessionID, scope)
}

// Reload descarta o snapshot atual e busca os dados de novo
func (s *Service) Reload(ctx context.Context, sessionID string, scope domain.DatasetScope) (*domain.SnapshotInfo, error) {
	dataset, err := s.load(ctx, sessionID, scope)
	if err != nil {
		return nil, err
	}

	info := dataset.Info()
	return &info, nil
}

func (s *Service) load(ctx context.Context, sessionID string, scope domain.DatasetScope) (*domain.Dataset, error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{"session_id": sessionID, "snapshot_scope": scope})

	dataset, err := s.source.LoadDataset(ctx, scope)
	if err != nil {
		return nil, err
	}

	logger.WithFields(log.Fields{
		"snapshot_id":     dataset.SnapshotID,
		"snapshot_orders": len(dataset.Orders),
	}).Info("dashboard: snapshot carregado")

	encoded, err := json.MarshalToString(dataset)
	if err != nil {
		logger.WithError(err).Warn("dashboard: não foi possível serializar o snapshot")
		return dataset, nil
	}

	if err := s.cache.Set(ctx, cache.DatasetKey(sessionID, string(scope)), encoded, s.ttl); err != nil {
		logger.WithError(err).Warn("dashboard: não foi possível guardar o snapshot")
	}

	return dataset, nil
}

func (s *Service) ClientDashboard(ctx context.Context, sessionID string, filters domain.DashboardFilters) (*domain.ClientDashboard, error) {
	dataset, err := s.Dataset(ctx, sessionID, domain.DatasetScopeClient)
	if err != nil {
		return nil, err
	}

	dashboard := analyzing.NewView(dataset, filters, s.now).ClientDashboard()
	return &dashboard, nil
}

func (s *Service) AdminDashboard(ctx context.Context, sessionID string, filters domain.DashboardFilters) (*domain.AdminDashboard, error) {
	dataset, err := s.Dataset(ctx, sessionID, domain.DatasetScopeAdmin)
	if err != nil {
		return nil, err
	}

	dashboard := analyzing.NewView(dataset, filters, s.now).AdminDashboard()
	return &dashboard, nil
}

func (s *Service) FilterOptions(ctx context.Context, sessionID string, scope domain.DatasetScope) (*domain.FilterOptions, error) {
	dataset, err := s.Dataset(ctx, sessionID, scope)
	if err != nil {
		return nil, err
	}

	var options domain.FilterOptions
	if scope == domain.DatasetScopeAdmin {
		options = analyzing.AdminFilterOptions(dataset)
	} else {
		options = analyzing.ClientFilterOptions(dataset)
	}

	return &options, nil
}

// ExportOrders devolve o recorte filtrado em todos os status; sem datas retorna
// analyzing.ErrNotReady
func (s *Service) ExportOrders(ctx context.Context, sessionID string, filters domain.DashboardFilters) ([]domain.Order, error) {
	dataset, err := s.Dataset(ctx, sessionID, domain.DatasetScopeClient)
	if err != nil {
		return nil, err
	}

	return analyzing.NewView(dataset, filters, s.now).Orders()
}
