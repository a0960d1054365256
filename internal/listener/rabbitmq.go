package listener

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"matchsync/internal/domain"
)

// EventSink receives each normalized event, synchronously, before the
// message is acknowledged.
type EventSink interface {
	Send(ctx context.Context, event domain.LiveEvent) error
}

type Config struct {
	URL      string
	Exchange string
	Queues   []string
}

// Listener consumes live match events from one or more queues, one
// consumer loop per queue. Messages on a queue are processed to completion
// in order; queues are independent of each other.
type Listener struct {
	conn     *amqp.Connection
	channels map[string]*amqp.Channel
	queues   []string
	sink     EventSink
	logger   *slog.Logger
}

func NewListener(cfg Config, sink EventSink, logger *slog.Logger) (*Listener, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	channels := make(map[string]*amqp.Channel, len(cfg.Queues))
	for _, queue := range cfg.Queues {
		ch, err := conn.Channel()
		if err != nil {
			closeAll(conn, channels)
			return nil, fmt.Errorf("open channel: %w", err)
		}

		if err := ch.ExchangeDeclare(cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
			ch.Close()
			closeAll(conn, channels)
			return nil, fmt.Errorf("declare exchange: %w", err)
		}

		q, err := ch.QueueDeclare(queue, true, false, false, false, nil)
		if err != nil {
			ch.Close()
			closeAll(conn, channels)
			return nil, fmt.Errorf("declare queue %s: %w", queue, err)
		}

		if err := ch.QueueBind(q.Name, queue, cfg.Exchange, false, nil); err != nil {
			ch.Close()
			closeAll(conn, channels)
			return nil, fmt.Errorf("bind queue %s: %w", queue, err)
		}

		channels[queue] = ch
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queues", cfg.Queues,
	)

	return &Listener{
		conn:     conn,
		channels: channels,
		queues:   cfg.Queues,
		sink:     sink,
		logger:   logger.With("component", "listener"),
	}, nil
}

// Run consumes until ctx is cancelled, then closes every subscription and
// the connection before returning, so no message is left in flight against
// a torn-down connection. A single subscription dying outside shutdown
// (channel error, basic.cancel) also ends the run: continuing with one
// queue silently unconsumed would drop live events without a trace.
func (l *Listener) Run(ctx context.Context) error {
	var wg sync.WaitGroup
	loopExited := make(chan string, len(l.queues))

	for _, queue := range l.queues {
		ch := l.channels[queue]
		deliveries, err := ch.Consume(queue, "", false, false, false, false, nil)
		if err != nil {
			return fmt.Errorf("consume %s: %w", queue, err)
		}

		wg.Add(1)
		go func(queue string, deliveries <-chan amqp.Delivery) {
			defer wg.Done()
			l.consumeLoop(ctx, queue, deliveries)
			loopExited <- queue
		}(queue, deliveries)
	}

	connErrs := l.conn.NotifyClose(make(chan *amqp.Error, 1))

	select {
	case <-ctx.Done():
		l.logger.Info("shutting down, draining subscriptions")
		l.Close()
		wg.Wait()
		return ctx.Err()
	case amqpErr := <-connErrs:
		// Transport-level failure. Logged, never panicked on; the caller
		// decides whether to reconnect or exit.
		wg.Wait()
		if amqpErr != nil {
			l.logger.Error("connection closed", "error", amqpErr)
			return fmt.Errorf("connection closed: %w", amqpErr)
		}
		return nil
	case queue := <-loopExited:
		l.logger.Error("subscription closed unexpectedly", "queue", queue)
		l.Close()
		wg.Wait()
		return fmt.Errorf("subscription closed: %s", queue)
	}
}

func (l *Listener) consumeLoop(ctx context.Context, queue string, deliveries <-chan amqp.Delivery) {
	logger := l.logger.With("queue", queue)
	for delivery := range deliveries {
		l.handleMessage(ctx, logger, queue, delivery)
	}
	logger.Info("subscription closed")
}

// handleMessage processes exactly one delivery and always acknowledges it.
// A message with no match id is dropped: it cannot be acted upon, and
// redelivering it would change nothing. A failed forward is logged and the
// message still acked — live events go stale too fast for a retry loop to
// help. Nothing here may panic the process.
func (l *Listener) handleMessage(ctx context.Context, logger *slog.Logger, queue string, delivery amqp.Delivery) {
	event, ok := extractEvent(delivery.Body)
	if !ok {
		logger.Warn("dropping message without match id", "body_size", len(delivery.Body))
		l.ack(logger, delivery)
		return
	}
	event.Topic = queue

	if err := l.sink.Send(ctx, event); err != nil {
		logger.Error("failed to forward event",
			"match_id", event.MatchID,
			"event_type", event.EventType,
			"error", err,
		)
	} else {
		logger.Info("event forwarded",
			"match_id", event.MatchID,
			"league_id", event.LeagueID,
			"event_type", event.EventType,
		)
	}

	l.ack(logger, delivery)
}

func (l *Listener) ack(logger *slog.Logger, delivery amqp.Delivery) {
	if err := delivery.Ack(false); err != nil {
		logger.Error("failed to ack message", "error", err)
	}
}

// Close tears down every channel and the connection. Safe to call more
// than once.
func (l *Listener) Close() error {
	for _, ch := range l.channels {
		_ = ch.Close()
	}
	if l.conn != nil && !l.conn.IsClosed() {
		return l.conn.Close()
	}
	return nil
}

func closeAll(conn *amqp.Connection, channels map[string]*amqp.Channel) {
	for _, ch := range channels {
		_ = ch.Close()
	}
	_ = conn.Close()
}
