package dispatch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

const (
	// DefaultStream is the Redis stream delivery workers consume from.
	DefaultStream = "adherence:interventions"

	// streamMaxLen bounds the stream; delivery workers that fall this far
	// behind have bigger problems than lost nudges.
	streamMaxLen = 10000
)

// StreamDispatcher submits interventions to a Redis stream consumed by the
// delivery workers (push gateway, messaging service, agent task queue).
type StreamDispatcher struct {
	client *redis.Client
	stream string
}

// NewStreamDispatcher creates a dispatcher writing to the given stream.
// An empty stream name falls back to DefaultStream.
func NewStreamDispatcher(client *redis.Client, stream string) *StreamDispatcher {
	if stream == "" {
		stream = DefaultStream
	}
	return &StreamDispatcher{client: client, stream: stream}
}

func (d *StreamDispatcher) Dispatch(ctx context.Context, req Request) error {
	err := d.client.XAdd(ctx, &redis.XAddArgs{
		Stream: d.stream,
		MaxLen: streamMaxLen,
		Approx: true,
		Values: map[string]any{
			"user_id":    req.UserID.String(),
			"type":       string(req.Type),
			"channel":    ChannelFor(req.Type),
			"reasoning":  req.Reasoning,
			"priority":   req.Priority,
			"risk_level": string(req.RiskLevel),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("xadd %s: %w", d.stream, err)
	}

	slog.DebugContext(ctx, "intervention submitted",
		"stream", d.stream,
		"user_id", req.UserID,
		"type", req.Type,
		"channel", ChannelFor(req.Type))
	return nil
}

// LogDispatcher logs interventions instead of delivering them. Used in
// development and in deployments without delivery workers.
type LogDispatcher struct{}

func (LogDispatcher) Dispatch(ctx context.Context, req Request) error {
	slog.InfoContext(ctx, "intervention dispatched (log only)",
		"user_id", req.UserID,
		"type", req.Type,
		"channel", ChannelFor(req.Type),
		"priority", req.Priority,
		"reasoning", req.Reasoning)
	return nil
}
