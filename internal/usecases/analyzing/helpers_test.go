package analyzing

import (
	"time"

	"github.com/aarondl/null/v8"

	"github.com/2025-2-NADS4/Projeto4/internal/domain"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 12, 0, 0, 0, time.UTC)
}

func dateRange(start, end time.Time) domain.DashboardFilters {
	return domain.DashboardFilters{Range: domain.NewDateRange(start, end)}
}

func order(id string, createdAt time.Time, amount float64, status string) domain.Order {
	return domain.Order{
		ID:          id,
		CreatedAt:   createdAt,
		TotalAmount: amount,
		Status:      status,
		OrderType:   domain.OrderTypeDelivery,
	}
}

func concludedOrder(id string, createdAt time.Time, amount float64) domain.Order {
	return order(id, createdAt, amount, domain.OrderStatusConcluded)
}

func withChannel(o domain.Order, channel string) domain.Order {
	o.SalesChannel = null.StringFrom(channel)
	return o
}

func withCustomer(o domain.Order, customerID string) domain.Order {
	o.CustomerID = null.StringFrom(customerID)
	return o
}

func withCompany(o domain.Order, companyID string) domain.Order {
	o.CompanyID = null.StringFrom(companyID)
	return o
}

func queueEntry(campaignID string, status int, createdAt time.Time) domain.CampaignQueueEntry {
	return domain.CampaignQueueEntry{
		ID:         campaignID + "-" + createdAt.Format(time.RFC3339Nano),
		CampaignID: campaignID,
		Status:     status,
		CreatedAt:  createdAt,
		StoreID:    null.StringFrom("loja-1"),
	}
}

func queueEntries(campaignID string, status, count int, createdAt time.Time) []domain.CampaignQueueEntry {
	entries := make([]domain.CampaignQueueEntry, 0, count)
	for i := 0; i < count; i++ {
		entries = append(entries, queueEntry(campaignID, status, createdAt.Add(time.Duration(i)*time.Second)))
	}
	return entries
}
