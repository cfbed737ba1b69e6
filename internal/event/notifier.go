package event

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Notifier fans one lifecycle event out to both sinks: the durable log and
// the broadcast hub. Each sink has its own error boundary, so neither sink's
// latency or failure can reach the triggering operation. No ordering holds
// between the two sinks; within one sink, events from one operation keep the
// order Emit was called in: the hub is published inline (it never blocks)
// and durable-log writes are drained by a single worker from a FIFO queue.
type Notifier struct {
	publisher Publisher
	hub       *Hub
	queue     chan queuedEvent
	done      chan struct{}
}

type queuedEvent struct {
	eventType string
	payload   interface{}
}

const notifierQueueSize = 256

func NewNotifier(publisher Publisher, hub *Hub) *Notifier {
	n := &Notifier{
		publisher: publisher,
		hub:       hub,
		queue:     make(chan queuedEvent, notifierQueueSize),
		done:      make(chan struct{}),
	}
	go n.drain()
	return n
}

// Emit dispatches after the triggering operation has committed. The durable
// log and the broadcast may carry different event names for the same
// occurrence (StudentJoinedAssessment vs StudentJoined), so both are taken.
// Emit never blocks and never returns an error; when the durable-log queue is
// full the event is dropped there (still broadcast) and the drop is logged.
func (n *Notifier) Emit(group, logType, broadcastType string, payload interface{}) {
	select {
	case n.queue <- queuedEvent{eventType: logType, payload: payload}:
	default:
		log.Warn().Str("event_type", logType).Msg("Durable log queue full, dropping event")
	}

	func() {
		defer recoverSink("broadcast", broadcastType)
		n.hub.Publish(group, broadcastType, payload)
	}()
}

// Close stops the durable-log worker after the queued events are drained.
func (n *Notifier) Close() {
	close(n.queue)
	<-n.done
}

func (n *Notifier) drain() {
	defer close(n.done)
	for ev := range n.queue {
		func() {
			defer recoverSink("durable-log", ev.eventType)
			// Background context: a client disconnect must not cancel the
			// write. Publish itself applies the bounded timeout.
			n.publisher.Publish(context.Background(), ev.eventType, ev.payload)
		}()
	}
}

func recoverSink(sink, eventType string) {
	if r := recover(); r != nil {
		log.Error().Interface("panic", r).Str("sink", sink).Str("event_type", eventType).
			Msg("Notification sink panicked")
	}
}
