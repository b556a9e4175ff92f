package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// publishChannel is the part of *amqp.Channel the publisher uses.
type publishChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	IsClosed() bool
	Close() error
}

type dialFunc func(url string) (*amqp.Connection, publishChannel, error)

// Publisher redials the broker when its channel has been closed, so a broker
// restart costs at most the publishes made while it was down.
type Publisher struct {
	mu      sync.Mutex
	url     string
	dial    dialFunc
	conn    *amqp.Connection
	channel publishChannel
}

func NewPublisher(url string) (*Publisher, error) {
	p := &Publisher{url: url, dial: dialChannel}
	if err := p.connect(); err != nil {
		return nil, err
	}
	return p, nil
}

func dialChannel(url string) (*amqp.Connection, publishChannel, error) {
	conn, ch, err := open(url)
	if err != nil {
		return nil, nil, err
	}
	return conn, ch, nil
}

// connect replaces the current connection. Callers hold mu, except NewPublisher.
func (p *Publisher) connect() error {
	p.closeLocked()
	conn, ch, err := p.dial(p.url)
	if err != nil {
		return err
	}
	p.conn, p.channel = conn, ch
	return nil
}

// Publish sends payload as JSON to the admin exchange. Channels are not safe
// for concurrent use, so publishes are serialized.
func (p *Publisher) Publish(routingKey string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel == nil || p.channel.IsClosed() {
		log.Println("[RabbitMQ] channel closed, reconnecting")
		if err := p.connect(); err != nil {
			return fmt.Errorf("reconnect: %w", err)
		}
	}

	err = p.channel.PublishWithContext(ctx, ExchangeName, routingKey, false, false, msg)
	if errors.Is(err, amqp.ErrClosed) {
		log.Println("[RabbitMQ] channel closed during publish, reconnecting")
		if cerr := p.connect(); cerr != nil {
			return fmt.Errorf("reconnect: %w", cerr)
		}
		err = p.channel.PublishWithContext(ctx, ExchangeName, routingKey, false, false, msg)
	}
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	log.Printf("[RabbitMQ] published to %s/%s", ExchangeName, routingKey)
	return nil
}

func (p *Publisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closeLocked()
}

func (p *Publisher) closeLocked() {
	if p.channel != nil {
		p.channel.Close()
		p.channel = nil
	}
	if p.conn != nil {
		p.conn.Close()
		p.conn = nil
	}
}
