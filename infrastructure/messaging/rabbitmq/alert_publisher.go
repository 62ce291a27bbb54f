package rabbitmq

import (
	"context"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/2025-2-NADS4/Projeto4/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Publisher é a parte do Client usada pelo AlertPublisher
type Publisher interface {
	Publish(ctx context.Context, messageID string, body []byte) error
}

type AlertPublisher struct {
	publisher Publisher
}

func NewAlertPublisher(publisher Publisher) *AlertPublisher {
	return &AlertPublisher{publisher: publisher}
}

// PublishAlert usa loja e data de referência como id, assim consumidores descartam
// reenvios do mesmo dia
func (p *AlertPublisher) PublishAlert(ctx context.Context, alert domain.StoreAlert) error {
	body, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("erro ao serializar alerta: %w", err)
	}

	messageID := fmt.Sprintf("%s:%s", alert.StoreID, alert.ReferenceDate.Format("2006-01-02"))
	return p.publisher.Publish(ctx, messageID, body)
}
