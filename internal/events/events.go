// Package events carries in-process domain events between the services and
// the background workers over a watermill gochannel Pub/Sub.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-form-keeper/internal/config"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const (
	// TopicFormSubmitted is published after a submission is stored.
	TopicFormSubmitted = "form.submitted"
	// TopicFormUpdated is published after a form definition changes.
	TopicFormUpdated = "form.updated"
)

var ErrInvalidEvent = errors.New("invalid event payload")

// FormEvent is the payload of every topic.
type FormEvent struct {
	FormID     int64     `json:"form_id"`
	UserID     int64     `json:"user_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

//go:generate mockgen -source=events.go -destination=../mock/events_mock.go -package=mock

// Publisher emits form events.
type Publisher interface {
	Publish(ctx context.Context, topic string, event FormEvent) error
}

// Subscriber delivers raw messages of a topic until ctx is done.
type Subscriber interface {
	Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error)
}

// Bus is a non-persistent in-memory Pub/Sub. Messages published while a
// topic has no subscriber are dropped.
type Bus struct {
	pubSub *gochannel.GoChannel
	logger *logger.Logger
}

func NewBus(cfg config.Workers, log *logger.Logger) *Bus {
	return &Bus{
		pubSub: gochannel.NewGoChannel(
			gochannel.Config{OutputChannelBuffer: cfg.EventBuffer},
			logger.NewWatermillAdapter(log),
		),
		logger: log,
	}
}

func (b *Bus) Publish(ctx context.Context, topic string, event FormEvent) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(context.WithoutCancel(ctx))

	if err = b.pubSub.Publish(topic, msg); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*Bus.Publish").Str("topic", topic).Int64("form_id", event.FormID).Msg("error publishing event")
		return fmt.Errorf("publish %s: %w", topic, err)
	}

	return nil
}

func (b *Bus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return b.pubSub.Subscribe(ctx, topic)
}

func (b *Bus) Close() error {
	return b.pubSub.Close()
}

// Decode reads a FormEvent from msg.
func Decode(msg *message.Message) (FormEvent, error) {
	var event FormEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		return FormEvent{}, fmt.Errorf("%w: %w", ErrInvalidEvent, err)
	}
	if event.FormID <= 0 {
		return FormEvent{}, fmt.Errorf("%w: missing form id", ErrInvalidEvent)
	}

	return event, nil
}
