// Package events publishes domain events to NATS as JSON messages.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nats-io/nats.go"
)

// Publisher is what services depend on.
type Publisher interface {
	Publish(ctx context.Context, subject string, v any) error
}

// conn is the part of *nats.Conn the publisher needs.
type conn interface {
	Publish(subject string, data []byte) error
}

type NatsPublisher struct {
	nc     conn
	prefix string
}

// NewNatsPublisher returns a publisher that prepends prefix to every subject.
func NewNatsPublisher(nc *nats.Conn, prefix string) *NatsPublisher {
	return &NatsPublisher{nc: nc, prefix: prefix}
}

func (p *NatsPublisher) Subject(subject string) string {
	return Subject(p.prefix, subject)
}

func (p *NatsPublisher) Publish(ctx context.Context, subject string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if err := p.nc.Publish(p.Subject(subject), data); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	return nil
}

// NopPublisher drops every event. Used when NATS is disabled.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, any) error { return nil }

// Subject joins prefix and the dotted subject tokens.
func Subject(prefix string, tokens ...string) string {
	parts := make([]string, 0, len(tokens)+1)
	if prefix != "" {
		parts = append(parts, prefix)
	}
	for _, t := range tokens {
		if t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, ".")
}

// Subscribe decodes every message on subject into T and hands it to fn.
// Handlers get ctx, so cancelling it stops in-flight work at shutdown.
// Messages that do not decode are logged and dropped.
func Subscribe[T any](ctx context.Context, nc *nats.Conn, subject string, fn func(ctx context.Context, subject string, ev T)) (*nats.Subscription, error) {
	return nc.Subscribe(subject, decoding(ctx, fn))
}

func decoding[T any](ctx context.Context, fn func(ctx context.Context, subject string, ev T)) nats.MsgHandler {
	return func(msg *nats.Msg) {
		if ctx.Err() != nil {
			slog.Debug("events: dropping message after shutdown", "subject", msg.Subject)
			return
		}
		var ev T
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			slog.Warn("events: undecodable message", "subject", msg.Subject, "err", err)
			return
		}
		fn(ctx, msg.Subject, ev)
	}
}
