package supabase

import (
	"context"
	"errors"
	"fmt"

	supabasedomain "github.com/2025-2-NADS4/Projeto4/infrastructure/integrator/supabase/domain"
	"github.com/2025-2-NADS4/Projeto4/infrastructure/integrator/supabase/supabaseclient"
	"github.com/2025-2-NADS4/Projeto4/internal/domain"
	"github.com/2025-2-NADS4/Projeto4/pkg/log"
)

const (
	ordersTable        = "orders"
	customersTable     = "customers"
	campaignsTable     = "campaigns"
	campaignQueueTable = "campaign_queue"
)

var ErrInvalidCredentials = supabaseclient.ErrInvalidCredentials

type SupabaseIntegrator interface {
	ListOrders(ctx context.Context, limit uint64) ([]domain.Order, error)
	ListCustomers(ctx context.Context, limit uint64) ([]domain.Customer, error)
	ListCampaigns(ctx context.Context, limit uint64) ([]domain.Campaign, error)
	ListCampaignQueue(ctx context.Context, limit uint64) ([]domain.CampaignQueueEntry, error)
	Authenticate(ctx context.Context, email, password string) (*domain.Identity, error)
}

type SupabaseService struct {
	Client supabaseclient.Client
}

func New(client supabaseclient.Client) SupabaseIntegrator {
	return &SupabaseService{
		Client: client,
	}
}

// fetchTable converte as linhas da tabela; linhas com data ilegível são descartadas
func fetchTable[R interface{ ToDomain() (T, error) }, T any](
	ctx context.Context,
	client supabaseclient.Client,
	table string,
	limit uint64,
) ([]T, error) {
	var records []R
	if err := client.FetchTable(ctx, table, limit, &records); err != nil {
		return nil, err
	}

	result := make([]T, 0, len(records))
	dropped := 0
	for _, record := range records {
		item, err := record.ToDomain()
		if err != nil {
			dropped++
			continue
		}
		result = append(result, item)
	}

	if dropped > 0 {
		log.ForContext(ctx).WithFields(log.Fields{
			"snapshot_table":   table,
			"snapshot_dropped": dropped,
		}).Warn("supabase: linhas descartadas por data inválida")
	}

	return result, nil
}

func (s *SupabaseService) ListOrders(ctx context.Context, limit uint64) ([]domain.Order, error) {
	return fetchTable[supabasedomain.OrderRecord, domain.Order](ctx, s.Client, ordersTable, limit)
}

func (s *SupabaseService) ListCustomers(ctx context.Context, limit uint64) ([]domain.Customer, error) {
	return fetchTable[supabasedomain.CustomerRecord, domain.Customer](ctx, s.Client, customersTable, limit)
}

func (s *SupabaseService) ListCampaigns(ctx context.Context, limit uint64) ([]domain.Campaign, error) {
	return fetchTable[supabasedomain.CampaignRecord, domain.Campaign](ctx, s.Client, campaignsTable, limit)
}

func (s *SupabaseService) ListCampaignQueue(ctx context.Context, limit uint64) ([]domain.CampaignQueueEntry, error) {
	return fetchTable[supabasedomain.CampaignQueueRecord, domain.CampaignQueueEntry](ctx, s.Client, campaignQueueTable, limit)
}

func (s *SupabaseService) Authenticate(ctx context.Context, email, password string) (*domain.Identity, error) {
	resp, err := s.Client.SignInWithPassword(ctx, email, password)
	if err != nil {
		if errors.Is(err, supabaseclient.ErrInvalidCredentials) {
			return nil, err
		}
		return nil, fmt.Errorf("erro ao autenticar no Supabase: %w", err)
	}

	identity := &domain.Identity{
		Subject: resp.User.ID,
		Email:   resp.User.Email,
	}
	if identity.Email == "" {
		identity.Email = email
	}

	return identity, nil
}
