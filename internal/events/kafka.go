package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/go-realtime-comments/domain"
)

// messageWriter is the part of *kafka.Writer the sink uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaSink mirrors domain events to a Kafka topic for consumers outside this process.
// Writes are async; failed deliveries are logged by the completion hook.
type KafkaSink struct {
	writer messageWriter
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

func NewKafkaSink(cfg KafkaConfig) *KafkaSink {
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		Completion: func(msgs []kafka.Message, err error) {
			if err != nil {
				logrus.Warnf("kafka: %d event(s) not exported: %v", len(msgs), err)
			}
		},
	}
	return &KafkaSink{writer: w}
}

// exportedEvent is the wire form of a domain event on the topic.
type exportedEvent struct {
	Type        domain.EventType `json:"type"`
	ActorID     int64            `json:"actor_id"`
	RecipientID int64            `json:"recipient_id,omitempty"`
	CommentID   int64            `json:"comment_id,omitempty"`
	ParentID    *int64           `json:"parent_id,omitempty"`
	OccurredAt  time.Time        `json:"occurred_at"`
}

func (s *KafkaSink) Handle(ctx context.Context, ev domain.Event) error {
	out := exportedEvent{
		Type:        ev.Type,
		ActorID:     ev.ActorID,
		RecipientID: ev.RecipientID,
		OccurredAt:  ev.OccurredAt,
	}
	if ev.Comment != nil {
		out.CommentID = ev.Comment.ID
		out.ParentID = ev.Comment.ParentID
	}
	value, err := json.Marshal(out)
	if err != nil {
		return err
	}

	if err := s.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(eventKey(out)),
		Value: value,
		Time:  ev.OccurredAt,
	}); err != nil {
		return fmt.Errorf("export %s: %w", ev.Type, err)
	}
	return nil
}

func (s *KafkaSink) Close() error {
	return s.writer.Close()
}

// eventKey keeps events of one comment, or of one actor for follows, on one partition.
func eventKey(ev exportedEvent) string {
	if ev.CommentID != 0 {
		return "comment:" + strconv.FormatInt(ev.CommentID, 10)
	}
	return "user:" + strconv.FormatInt(ev.ActorID, 10)
}
