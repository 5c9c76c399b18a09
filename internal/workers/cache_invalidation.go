package workers

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-form-keeper/internal/events"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/store"
	"github.com/ThreeDotsLabs/watermill/message"
)

// CacheInvalidationWorker drops cached reports of a form whenever the form
// receives a submission or its definition changes.
type CacheInvalidationWorker struct {
	subscriber events.Subscriber
	cache      store.ReportCache
	logger     *logger.Logger
	topics     []string
}

func NewCacheInvalidationWorker(subscriber events.Subscriber, cache store.ReportCache, log *logger.Logger) *CacheInvalidationWorker {
	return &CacheInvalidationWorker{
		subscriber: subscriber,
		cache:      cache,
		logger:     log.WithComponent("cache-invalidation-worker"),
		topics:     []string{events.TopicFormSubmitted, events.TopicFormUpdated},
	}
}

func (w *CacheInvalidationWorker) Run(ctx context.Context) error {
	for _, topic := range w.topics {
		messages, err := w.subscriber.Subscribe(ctx, topic)
		if err != nil {
			return fmt.Errorf("subscribe %s: %w", topic, err)
		}

		go w.consume(ctx, topic, messages)
	}
	w.logger.Info().Strs("topics", w.topics).Msg("cache invalidation worker started")

	return nil
}

func (w *CacheInvalidationWorker) consume(ctx context.Context, topic string, messages <-chan *message.Message) {
	for msg := range messages {
		w.handle(ctx, topic, msg)
	}
	w.logger.Debug().Str("topic", topic).Msg("subscription closed")
}

// handle always acks: a failed invalidation only leaves a stale entry until
// its TTL runs out.
func (w *CacheInvalidationWorker) handle(ctx context.Context, topic string, msg *message.Message) {
	defer msg.Ack()

	event, err := events.Decode(msg)
	if err != nil {
		w.logger.Err(err).Str("topic", topic).Str("message_uuid", msg.UUID).Msg("dropping event")
		return
	}

	if err = w.cache.Invalidate(ctx, event.FormID); err != nil {
		w.logger.Err(err).Str("topic", topic).Int64("form_id", event.FormID).Msg("error invalidating cached reports")
		return
	}
	w.logger.Debug().Str("topic", topic).Int64("form_id", event.FormID).Msg("cached reports invalidated")
}
