// Package publisher emits assignment decisions to downstream consumers.
package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultMaxLen = 10000

// Decision is one auto-assign outcome for one display in one cycle.
type Decision struct {
	CycleID           string    `json:"cycleId"`
	DisplayID         string    `json:"displayId"`
	Action            string    `json:"action"`
	Rule              string    `json:"rule"`
	Reason            string    `json:"reason"`
	CurrentEventID    *string   `json:"currentEventId"`
	ChallengerEventID string    `json:"challengerEventId"`
	Applied           bool      `json:"applied"`
	At                time.Time `json:"at"`
}

// Publisher sends decisions somewhere.
type Publisher interface {
	PublishDecision(ctx context.Context, d Decision) error
}

// Nop drops every decision.
type Nop struct{}

// PublishDecision implements Publisher.
func (Nop) PublishDecision(context.Context, Decision) error { return nil }

// StreamPublisher appends decisions to a Redis stream.
type StreamPublisher struct {
	client *redis.Client
	stream string
	maxLen int64
}

// NewStreamPublisher creates a publisher for the given stream key. The stream
// is trimmed approximately to maxLen entries; maxLen <= 0 uses the default.
func NewStreamPublisher(client *redis.Client, stream string, maxLen int64) *StreamPublisher {
	if maxLen <= 0 {
		maxLen = defaultMaxLen
	}
	return &StreamPublisher{client: client, stream: stream, maxLen: maxLen}
}

// PublishDecision adds the decision as a stream entry.
func (p *StreamPublisher) PublishDecision(ctx context.Context, d Decision) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshaling decision: %w", err)
	}

	return p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		MaxLen: p.maxLen,
		Approx: true,
		Values: map[string]interface{}{
			"data":       string(data),
			"display_id": d.DisplayID,
			"action":     d.Action,
		},
	}).Err()
}
