// Package amqp publishes notifications and change events to a RabbitMQ
// topic exchange.
package amqp

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/fintrack/backend/internal/events"
	"github.com/fintrack/backend/internal/models"
	"github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

const publishTimeout = 5 * time.Second

// channel is the part of *amqp091.Channel the publisher uses.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

type Publisher struct {
	conn     *amqp091.Connection
	channel  channel
	exchange string
}

// NewPublisher connects to the broker at url and declares exchange as
// durable topic exchange.
func NewPublisher(url, exchange string) (*Publisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &Publisher{conn: conn, channel: ch, exchange: exchange}, nil
}

func (p *Publisher) publish(ctx context.Context, key string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange, // exchange
		key,        // routing key
		false,      // mandatory
		false,      // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	log.Debug().Str("exchange", p.exchange).Str("key", key).Msg("published message")
	return nil
}

// Notify publishes a notification with the routing key notification.<severity>.
func (p *Publisher) Notify(ctx context.Context, n models.Notification) error {
	return p.publish(ctx, "notification."+string(n.Severity), n)
}

// PublishChange publishes a change event with the routing key change.<collection>.
func (p *Publisher) PublishChange(ctx context.Context, c events.Change) error {
	return p.publish(ctx, "change."+c.Collection.String(), c)
}

// The number of changes waiting to be forwarded. Changes beyond it are dropped.
const forwardBuffer = 256

// Forward publishes every change on bus until the returned function is called.
// Changes are queued and published by a separate goroutine, so a slow broker
// never holds up writes. Failures are logged.
//
// cancel publishes the changes still queued before it returns.
func (p *Publisher) Forward(bus *events.Bus) (cancel func()) {
	queue := make(chan events.Change, forwardBuffer)
	done := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case c := <-queue:
				p.forward(c)
			case <-done:
				for {
					select {
					case c := <-queue:
						p.forward(c)
					default:
						return
					}
				}
			}
		}
	}()

	unsubscribe := bus.Subscribe(func(c events.Change) {
		select {
		case <-done:
		case queue <- c:
		default:
			log.Warn().Str("collection", c.Collection.String()).Msg("forwarding queue is full, dropping change")
		}
	})

	var once sync.Once
	return func() {
		once.Do(func() {
			unsubscribe()
			close(done)
			wg.Wait()
		})
	}
}

func (p *Publisher) forward(c events.Change) {
	if err := p.PublishChange(context.Background(), c); err != nil {
		log.Warn().Str("collection", c.Collection.String()).Err(err).Msg("could not forward change")
	}
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}

	if p.conn != nil {
		return p.conn.Close()
	}

	return nil
}
