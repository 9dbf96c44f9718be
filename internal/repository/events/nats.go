package events

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/nats-io/nats.go"

	"github.com/NiceTry3675/news-summarizer/internal/service/progress"
)

// Conn is the subset of *nats.Conn used for publishing
type Conn interface {
	Publish(subject string, data []byte) error
}

// ProgressMessage is the envelope published for each progress event
type ProgressMessage struct {
	Event     progress.Event `json:"event"`
	Timestamp time.Time      `json:"timestamp"`
	Source    string         `json:"source"`
	Version   string         `json:"version"`
}

// NATSPublisher publishes batch progress to a NATS subject
type NATSPublisher struct {
	conn    Conn
	subject string
	close   func()
}

// NewNATSPublisher connects to url and publishes on subject
func NewNATSPublisher(url, subject string) (*NATSPublisher, error) {
	nc, err := nats.Connect(url, nats.Name("news-summarizer"))
	if err != nil {
		return nil, err
	}

	p := NewPublisher(nc, subject)
	p.close = nc.Close
	return p, nil
}

// NewPublisher wraps an existing connection
func NewPublisher(conn Conn, subject string) *NATSPublisher {
	return &NATSPublisher{
		conn:    conn,
		subject: subject,
	}
}

// Close closes the NATS connection if this publisher opened it
func (np *NATSPublisher) Close() {
	if np.close != nil {
		np.close()
	}
}

// Report publishes e; publish errors are logged and dropped
func (np *NATSPublisher) Report(ctx context.Context, e progress.Event) {
	logger := log.New(funcframework.LogWriter(ctx), "", 0)

	message := ProgressMessage{
		Event:     e,
		Timestamp: time.Now(),
		Source:    "news-summarizer",
		Version:   "1.0",
	}

	data, err := json.Marshal(message)
	if err != nil {
		logger.Printf("progress_publish_failed batch=%s error=%v", e.BatchID, err)
		return
	}

	if err := np.conn.Publish(np.subject, data); err != nil {
		logger.Printf("progress_publish_failed batch=%s subject=%s error=%v", e.BatchID, np.subject, err)
	}
}
