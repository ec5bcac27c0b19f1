package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fixmate/repair-marketplace-api/internal/config"
	"github.com/fixmate/repair-marketplace-api/internal/core/domain"
	"github.com/fixmate/repair-marketplace-api/internal/core/ports/out"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher отправляет события заявок в обменник. Публикация
// fire-and-forget: вызывающий только логирует ошибку.
type Publisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	cfg      *config.Config
	logger   out.LoggerPort
}

func NewPublisher(cfg *config.Config, logger out.LoggerPort) (*Publisher, error) {
	if !cfg.RabbitMQ.Enabled {
		logger.Info("rabbitmq.disabled", out.LogFields{
			"message": "RabbitMQ is disabled, publisher will not be started",
		})
		return nil, nil
	}

	conn, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Error("rabbitmq.connect.failed", out.LogFields{
			"error": err.Error(),
			"url":   cfg.RabbitMQ.URL,
		})
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		logger.Error("rabbitmq.channel.failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	if err := channel.ExchangeDeclare(
		cfg.RabbitMQ.Exchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &Publisher{
		conn:     conn,
		channel:  channel,
		exchange: cfg.RabbitMQ.Exchange,
		cfg:      cfg,
		logger:   logger,
	}, nil
}

// Пример routingKey:
// fixmate.notification.appointment.accept
// fixmate.notification.appointment.cancel
func (p *Publisher) PublishAppointmentEvent(ctx context.Context, event domain.AppointmentEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	routingKey := fmt.Sprintf("fixmate.notification.appointment.%s", event.Action)

	err = p.channel.PublishWithContext(ctx,
		p.exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
	if err != nil {
		return err
	}

	p.logger.Debug("events.published", out.LogFields{
		"routingKey":    routingKey,
		"appointmentId": event.AppointmentID,
	})

	return nil
}

func (p *Publisher) Stop() error {
	if p == nil || p.channel == nil {
		return nil
	}

	if err := p.channel.Close(); err != nil {
		return err
	}
	return p.conn.Close()
}
