// internal/adapter/eventbus/publisher.go

package eventbus

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"trendscope/internal/domain/trend"
)

// Publisher announces completed trend acquisitions to interested subscribers.
type Publisher interface {
	TrendsFetched(platform trend.Platform, count int, status trend.FetchStatus) error
}

// fetchedEvent is the wire format published on the events topic.
type fetchedEvent struct {
	Platform  string    `json:"platform"`
	Count     int       `json:"count"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// NATSPublisher publishes fetch events to a NATS subject.
type NATSPublisher struct {
	conn  *nats.Conn
	topic string
}

// NewNATSPublisher creates a publisher on the given events topic.
func NewNATSPublisher(conn *nats.Conn, topic string) *NATSPublisher {
	return &NATSPublisher{
		conn:  conn,
		topic: topic,
	}
}

// TrendsFetched publishes a fetch-completed event.
func (p *NATSPublisher) TrendsFetched(platform trend.Platform, count int, status trend.FetchStatus) error {
	event := fetchedEvent{
		Platform:  string(platform),
		Count:     count,
		Status:    string(status),
		Timestamp: time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal fetch event: %w", err)
	}

	subject := fmt.Sprintf("%s.fetched", p.topic)
	return p.conn.Publish(subject, data)
}

// NoopPublisher discards events. Used when no event bus is configured.
type NoopPublisher struct{}

// TrendsFetched does nothing.
func (NoopPublisher) TrendsFetched(trend.Platform, int, trend.FetchStatus) error {
	return nil
}
