package dashboarding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aarondl/null/v8"

	"github.com/2025-2-NADS4/Projeto4/internal/domain"
	"github.com/2025-2-NADS4/Projeto4/pkg/utils"
)

var (
	ErrDataSource   = errors.New("falha ao carregar dados do painel")
	ErrInvalidScope = errors.New("escopo de dados inválido")
)

// RecordReader é implementado pelo repositório Postgres e pelo integrador Supabase
type RecordReader interface {
	ListOrders(ctx context.Context, limit uint64) ([]domain.Order, error)
	ListCustomers(ctx context.Context, limit uint64) ([]domain.Customer, error)
	ListCampaigns(ctx context.Context, limit uint64) ([]domain.Campaign, error)
	ListCampaignQueue(ctx context.Context, limit uint64) ([]domain.CampaignQueueEntry, error)
}

type DatasetSource interface {
	LoadDataset(ctx context.Context, scope domain.DatasetScope) (*domain.Dataset, error)
}

type datasetSource struct {
	reader RecordReader
	limits domain.RowLimits
	now    func() time.Time
}

func NewDatasetSource(reader RecordReader, limits domain.RowLimits) DatasetSource {
	return &datasetSource{
		reader: reader,
		limits: limits,
		now:    time.Now,
	}
}

// LoadDataset lê pedidos e clientes; o escopo admin também lê campanhas e fila de envio
func (s *datasetSource) LoadDataset(ctx context.Context, scope domain.DatasetScope) (*domain.Dataset, error) {
	if !scope.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidScope, scope)
	}

	snapshotID, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id do snapshot: %w", err)
	}

	dataset := &domain.Dataset{
		SnapshotID: snapshotID,
		Scope:      scope,
		FetchedAt:  s.now().UTC(),
	}

	if dataset.Orders, err = s.reader.ListOrders(ctx, s.limits.Orders); err != nil {
		return nil, errors.Join(ErrDataSource, err)
	}
	normalizeChannels(dataset.Orders)

	if dataset.Customers, err = s.reader.ListCustomers(ctx, s.limits.Customers); err != nil {
		return nil, errors.Join(ErrDataSource, err)
	}

	if scope == domain.DatasetScopeAdmin {
		if dataset.Campaigns, err = s.reader.ListCampaigns(ctx, s.limits.Campaigns); err != nil {
			return nil, errors.Join(ErrDataSource, err)
		}
		if dataset.Queue, err = s.reader.ListCampaignQueue(ctx, s.limits.Queue); err != nil {
			return nil, errors.Join(ErrDataSource, err)
		}
	}

	if dataset.Orders == nil {
		dataset.Orders = []domain.Order{}
	}
	if dataset.Customers == nil {
		dataset.Customers = []domain.Customer{}
	}

	return dataset, nil
}

// Canal nulo ou vazio vira PDV já no carregamento
func normalizeChannels(orders []domain.Order) {
	for i := range orders {
		if !orders[i].SalesChannel.Valid || orders[i].SalesChannel.String == "" {
			orders[i].SalesChannel = null.StringFrom(domain.DefaultSalesChannel)
		}
	}
}
