package event

import (
	"context"
	"log"

	"github.com/viant/nodly/internal/clock"
	"github.com/viant/nodly/internal/idgen"
	"github.com/viant/nodly/service/messaging"
)

// Service publishes execution lifecycle events to a queue and lets callers
// attach a listener consuming them. Publishing is best effort - a full queue
// or a cancelled context never fails the execution that emitted the event.
type Service struct {
	queue messaging.Queue[Event]
}

// New creates an event service backed by the supplied queue.
func New(queue messaging.Queue[Event]) *Service {
	return &Service{queue: queue}
}

// Publish stamps and enqueues the event. A nil service is a no-op so that
// callers do not need to guard every emission site.
func (s *Service) Publish(ctx context.Context, event *Event) {
	if s == nil || event == nil {
		return
	}
	if event.ID == "" {
		event.ID = idgen.New()
	}
	event.CreatedAt = clock.Now()
	if err := s.queue.Publish(ctx, event); err != nil && ctx.Err() == nil {
		log.Printf("failed to publish %v event: %v", event.Kind, err)
	}
}

// Listen starts a goroutine delivering every published event to handler in
// consumption order. The returned stop function terminates delivery.
func (s *Service) Listen(handler func(*Event)) (stop func()) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			msg, err := s.queue.Consume(ctx)
			if err != nil {
				return
			}
			if msg == nil {
				continue
			}
			_ = msg.Ack()
			handler(msg.T())
		}
	}()
	return func() {
		cancel()
		<-done
	}
}
