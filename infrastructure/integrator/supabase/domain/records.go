// Package supabasedomain descreve as linhas das tabelas como o PostgREST as devolve.
package supabasedomain

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/aarondl/null/v8"

	"github.com/2025-2-NADS4/Projeto4/internal/domain"
	"github.com/2025-2-NADS4/Projeto4/pkg/utils"
)

// ID aceita identificadores numéricos ou texto
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		value, err := strconv.Unquote(string(data))
		if err != nil {
			return fmt.Errorf("id inválido %s: %w", data, err)
		}
		*id = ID(value)
		return nil
	}
	*id = ID(data)
	return nil
}

func (id ID) nullable() null.String {
	if id == "" {
		return null.String{}
	}
	return null.StringFrom(string(id))
}

type OrderRecord struct {
	ID                  ID      `json:"id"`
	CreatedAt           string  `json:"createdAt"`
	TotalAmount         float64 `json:"totalAmount"`
	Status              string  `json:"status"`
	SalesChannel        *string `json:"salesChannel"`
	OrderType           *string `json:"orderType"`
	GeneratedByCampaign *bool   `json:"generatedByCampaign"`
	Customer            ID      `json:"customer"`
	CompanyID           ID      `json:"companyId"`
}

func (r OrderRecord) ToDomain() (domain.Order, error) {
	createdAt, err := utils.ParseTimestamp(r.CreatedAt)
	if err != nil {
		return domain.Order{}, fmt.Errorf("pedido %s: %w", r.ID, err)
	}

	order := domain.Order{
		ID:           string(r.ID),
		CreatedAt:    createdAt,
		TotalAmount:  r.TotalAmount,
		Status:       r.Status,
		SalesChannel: null.StringFromPtr(r.SalesChannel),
		CustomerID:   r.Customer.nullable(),
		CompanyID:    r.CompanyID.nullable(),
	}
	if r.OrderType != nil {
		order.OrderType = *r.OrderType
	}
	if r.GeneratedByCampaign != nil {
		order.GeneratedByCampaign = *r.GeneratedByCampaign
	}

	return order, nil
}

type CustomerRecord struct {
	ID          ID      `json:"id"`
	DateOfBirth *string `json:"dateOfBirth"`
	Status      int     `json:"status"`
	CreatedAt   string  `json:"createdAt"`
}

func (r CustomerRecord) ToDomain() (domain.Customer, error) {
	createdAt, err := utils.ParseTimestamp(r.CreatedAt)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("cliente %s: %w", r.ID, err)
	}

	customer := domain.Customer{
		ID:        string(r.ID),
		Status:    r.Status,
		CreatedAt: createdAt,
	}

	// Data de nascimento inválida não descarta o cliente, apenas fica nula
	if r.DateOfBirth != nil {
		if dob, err := utils.ParseTimestamp(*r.DateOfBirth); err == nil {
			customer.DateOfBirth = null.TimeFrom(dob)
		}
	}

	return customer, nil
}

type CampaignRecord struct {
	ID        ID      `json:"id"`
	Name      *string `json:"name"`
	StoreID   ID      `json:"storeId"`
	CreatedAt string  `json:"createdAt"`
}

func (r CampaignRecord) ToDomain() (domain.Campaign, error) {
	createdAt, err := utils.ParseTimestamp(r.CreatedAt)
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("campanha %s: %w", r.ID, err)
	}

	campaign := domain.Campaign{
		ID:        string(r.ID),
		StoreID:   r.StoreID.nullable(),
		CreatedAt: createdAt,
	}
	if r.Name != nil {
		campaign.Name = *r.Name
	}

	return campaign, nil
}

type CampaignQueueRecord struct {
	ID         ID      `json:"id"`
	CampaignID ID      `json:"campaignId"`
	CustomerID ID      `json:"customerId"`
	StoreID    ID      `json:"storeId"`
	CreatedAt  string  `json:"createdAt"`
	SendAt     *string `json:"sendAt"`
	Status     int     `json:"status"`
}

func (r CampaignQueueRecord) ToDomain() (domain.CampaignQueueEntry, error) {
	createdAt, err := utils.ParseTimestamp(r.CreatedAt)
	if err != nil {
		return domain.CampaignQueueEntry{}, fmt.Errorf("fila de campanha %s: %w", r.ID, err)
	}

	entry := domain.CampaignQueueEntry{
		ID:         string(r.ID),
		CampaignID: string(r.CampaignID),
		CustomerID: r.CustomerID.nullable(),
		StoreID:    r.StoreID.nullable(),
		CreatedAt:  createdAt,
		Status:     r.Status,
	}
	if r.SendAt != nil {
		if sendAt, err := utils.ParseTimestamp(*r.SendAt); err == nil {
			entry.SendAt = null.TimeFrom(sendAt)
		}
	}

	return entry, nil
}
