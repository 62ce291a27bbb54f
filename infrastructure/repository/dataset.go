package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/2025-2-NADS4/Projeto4/infrastructure/database/postgres"
	"github.com/2025-2-NADS4/Projeto4/internal/domain"
)

const (
	ordersTable        = "orders"
	customersTable     = "customers"
	campaignsTable     = "campaigns"
	campaignQueueTable = "campaign_queue"
)

// DatasetRepository lê as tabelas do painel com um limite fixo de linhas por tabela
type DatasetRepository interface {
	ListOrders(ctx context.Context, limit uint64) ([]domain.Order, error)
	ListCustomers(ctx context.Context, limit uint64) ([]domain.Customer, error)
	ListCampaigns(ctx context.Context, limit uint64) ([]domain.Campaign, error)
	ListCampaignQueue(ctx context.Context, limit uint64) ([]domain.CampaignQueueEntry, error)
}

type datasetRepository struct {
	conn postgres.Queryer
}

func NewDatasetRepository(conn postgres.Queryer) DatasetRepository {
	return &datasetRepository{
		conn: conn,
	}
}

func (r *datasetRepository) ListOrders(ctx context.Context, limit uint64) ([]domain.Order, error) {
	query, args, err := squirrel.
		Select(`id`, `"createdAt"`, `"totalAmount"`, `status`, `"salesChannel"`, `"orderType"`,
			`"generatedByCampaign"`, `customer`, `"companyId"`).
		From(ordersTable).
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta de pedidos: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar pedidos: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(
			&order.ID,
			&order.CreatedAt,
			&order.TotalAmount,
			&order.Status,
			&order.SalesChannel,
			&order.OrderType,
			&order.GeneratedByCampaign,
			&order.CustomerID,
			&order.CompanyID,
		); err != nil {
			return nil, fmt.Errorf("erro ao ler pedido: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração de pedidos: %w", err)
	}

	return orders, nil
}

func (r *datasetRepository) ListCustomers(ctx context.Context, limit uint64) ([]domain.Customer, error) {
	query, args, err := squirrel.
		Select(`id`, `"dateOfBirth"`, `status`, `"createdAt"`).
		From(customersTable).
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta de clientes: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar clientes: %w", err)
	}
	defer rows.Close()

	customers := make([]domain.Customer, 0)
	for rows.Next() {
		var customer domain.Customer
		if err := rows.Scan(&customer.ID, &customer.DateOfBirth, &customer.Status, &customer.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler cliente: %w", err)
		}
		customers = append(customers, customer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração de clientes: %w", err)
	}

	return customers, nil
}

func (r *datasetRepository) ListCampaigns(ctx context.Context, limit uint64) ([]domain.Campaign, error) {
	query, args, err := squirrel.
		Select(`id`, `name`, `"storeId"`, `"createdAt"`).
		From(campaignsTable).
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta de campanhas: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar campanhas: %w", err)
	}
	defer rows.Close()

	campaigns := make([]domain.Campaign, 0)
	for rows.Next() {
		var campaign domain.Campaign
		if err := rows.Scan(&campaign.ID, &campaign.Name, &campaign.StoreID, &campaign.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler campanha: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração de campanhas: %w", err)
	}

	return campaigns, nil
}

func (r *datasetRepository) ListCampaignQueue(ctx context.Context, limit uint64) ([]domain.CampaignQueueEntry, error) {
	query, args, err := squirrel.
		Select(`id`, `"campaignId"`, `"customerId"`, `"storeId"`, `"createdAt"`, `"sendAt"`, `status`).
		From(campaignQueueTable).
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta da fila de campanhas: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar fila de campanhas: %w", err)
	}
	defer rows.Close()

	queue := make([]domain.CampaignQueueEntry, 0)
	for rows.Next() {
		var entry domain.CampaignQueueEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.CampaignID,
			&entry.CustomerID,
			&entry.StoreID,
			&entry.CreatedAt,
			&entry.SendAt,
			&entry.Status,
		); err != nil {
			return nil, fmt.Errorf("erro ao ler item da fila de campanhas: %w", err)
		}
		queue = append(queue, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração da fila de campanhas: %w", err)
	}

	return queue, nil
}
