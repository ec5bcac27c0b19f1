package rabbitmq

import (
	"context"
	"encoding/json"

	"github.com/fixmate/repair-marketplace-api/internal/config"
	"github.com/fixmate/repair-marketplace-api/internal/core/domain"
	"github.com/fixmate/repair-marketplace-api/internal/core/ports/in"
	"github.com/fixmate/repair-marketplace-api/internal/core/ports/out"
	amqp "github.com/rabbitmq/amqp091-go"
)

// NotificationListener читает события заявок из очереди и
// складывает человекочитаемые уведомления получателям
type NotificationListener struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	useCase in.NotificationUseCase
	cfg     *config.Config
	logger  out.LoggerPort
}

func NewNotificationListener(useCase in.NotificationUseCase, cfg *config.Config, logger out.LoggerPort) (*NotificationListener, error) {
	if !cfg.RabbitMQ.Enabled {
		logger.Info("rabbitmq.disabled", out.LogFields{
			"message": "RabbitMQ is disabled, listener will not be started",
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

	return &NotificationListener{
		conn:    conn,
		channel: channel,
		useCase: useCase,
		cfg:     cfg,
		logger:  logger,
	}, nil
}

func (l *NotificationListener) Start(ctx context.Context) error {
	queue, err := l.channel.QueueDeclare(
		l.cfg.RabbitMQ.Queue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	// Все события заявок
	if err := l.channel.QueueBind(
		queue.Name,
		"fixmate.notification.appointment.*",
		l.cfg.RabbitMQ.Exchange,
		false,
		nil,
	); err != nil {
		return err
	}

	msgs, err := l.channel.Consume(
		queue.Name,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				if err := l.processMessage(ctx, msg); err != nil {
					l.logger.Error("rabbitmq.message.process_failed", out.LogFields{
						"routingKey": msg.RoutingKey,
						"error":      err.Error(),
					})
					// Уведомления без гарантии доставки - не перечитываем
					msg.Nack(false, false)
					continue
				}
				msg.Ack(false)
			}
		}
	}()

	l.logger.Info("rabbitmq.queue.started", out.LogFields{
		"queue": queue.Name,
	})

	return nil
}

func (l *NotificationListener) processMessage(ctx context.Context, msg amqp.Delivery) error {
	var event domain.AppointmentEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		return err
	}

	return l.useCase.RecordEvent(ctx, event)
}

func (l *NotificationListener) Stop() error {
	if l == nil || l.channel == nil {
		return nil
	}

	if err := l.channel.Close(); err != nil {
		return err
	}
	return l.conn.Close()
}
