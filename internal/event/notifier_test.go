package event

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []string
}

func (p *recordingPublisher) Publish(_ context.Context, eventType string, _ interface{}) {
	p.mu.Lock()
	p.events = append(p.events, eventType)
	p.mu.Unlock()
}

type panickingPublisher struct{}

func (p *panickingPublisher) Publish(context.Context, string, interface{}) {
	panic("event store is down")
}

func TestNotifier_EmitReachesBothSinks(t *testing.T) {
	pub := &recordingPublisher{}
	hub := NewHub()
	notifier := NewNotifier(pub, hub)

	sub := hub.Subscribe("assessment-1")

	notifier.Emit("assessment-1", "StudentJoinedAssessment", "StudentJoined", map[string]string{"user": "u1"})

	msg := <-sub.C()
	assert.Equal(t, "StudentJoined", msg.EventType, "broadcast carries the broadcast name")

	notifier.Close()
	pub.mu.Lock()
	defer pub.mu.Unlock()
	require.Equal(t, []string{"StudentJoinedAssessment"}, pub.events, "durable log carries the log name")
}

func TestNotifier_DurableLogKeepsEmitOrder(t *testing.T) {
	pub := &recordingPublisher{}
	notifier := NewNotifier(pub, NewHub())

	notifier.Emit("a", "First", "First", nil)
	notifier.Emit("a", "Second", "Second", nil)
	notifier.Emit("a", "Third", "Third", nil)
	notifier.Close()

	pub.mu.Lock()
	defer pub.mu.Unlock()
	assert.Equal(t, []string{"First", "Second", "Third"}, pub.events)
}

func TestNotifier_PanickingSinkDoesNotReachCaller(t *testing.T) {
	notifier := NewNotifier(&panickingPublisher{}, NewHub())

	assert.NotPanics(t, func() {
		notifier.Emit("assessment-1", "AnswerSubmitted", "AnswerSubmitted", nil)
	})
	assert.NotPanics(t, notifier.Close)
}

func TestNotifier_SlowLogDoesNotBlockBroadcast(t *testing.T) {
	pub := &recordingPublisher{}
	hub := NewHub()
	notifier := NewNotifier(pub, hub)
	defer notifier.Close()

	sub := hub.Subscribe("assessment-1")

	start := time.Now()
	for i := 0; i < notifierQueueSize+10; i++ {
		notifier.Emit("assessment-1", "Ping", "Ping", i)
	}
	assert.Less(t, time.Since(start), time.Second, "Emit must never block on the durable log")

	// The broadcast side still delivered up to the subscriber's buffer.
	received := 0
	for {
		select {
		case <-sub.C():
			received++
			continue
		default:
		}
		break
	}
	assert.Equal(t, subscriberBuffer, received)
}
