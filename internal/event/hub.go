package event

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// GroupAll receives every broadcast in addition to the named group, so clients
// can watch platform-wide activity without joining each assessment.
const GroupAll = "all"

// Message is one broadcast event as seen by a subscriber.
type Message struct {
	EventType string      `json:"event_type"`
	Group     string      `json:"group"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// Hub is the real-time broadcast channel: subscribers join named groups
// (assessment id, or GroupAll) and receive events published to them.
// Delivery is at-most-once to currently connected subscribers; a subscriber
// whose buffer is full has that event dropped, and nothing is replayed to
// late joiners.
type Hub struct {
	mu     sync.RWMutex
	groups map[string]map[*Subscriber]struct{}
}

type Subscriber struct {
	group string
	ch    chan Message
}

// C is the subscriber's receive channel. Closed by Unsubscribe.
func (s *Subscriber) C() <-chan Message { return s.ch }

const subscriberBuffer = 16

func NewHub() *Hub {
	return &Hub{groups: make(map[string]map[*Subscriber]struct{})}
}

func (h *Hub) Subscribe(group string) *Subscriber {
	sub := &Subscriber{group: group, ch: make(chan Message, subscriberBuffer)}
	h.mu.Lock()
	if h.groups[group] == nil {
		h.groups[group] = make(map[*Subscriber]struct{})
	}
	h.groups[group][sub] = struct{}{}
	h.mu.Unlock()
	return sub
}

func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	if members, ok := h.groups[sub.group]; ok {
		if _, ok := members[sub]; ok {
			delete(members, sub)
			close(sub.ch)
		}
		if len(members) == 0 {
			delete(h.groups, sub.group)
		}
	}
	h.mu.Unlock()
}

// Publish delivers to every current member of the group plus GroupAll,
// without blocking: slow subscribers lose the event.
func (h *Hub) Publish(group, eventType string, payload interface{}) {
	msg := Message{
		EventType: eventType,
		Group:     group,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	h.deliver(h.groups[group], msg)
	if group != GroupAll {
		h.deliver(h.groups[GroupAll], msg)
	}
}

func (h *Hub) deliver(members map[*Subscriber]struct{}, msg Message) {
	for sub := range members {
		select {
		case sub.ch <- msg:
		default:
			log.Warn().Str("group", msg.Group).Str("event_type", msg.EventType).
				Msg("Dropping broadcast for slow subscriber")
		}
	}
}

// GroupSize reports the number of currently connected subscribers in a group.
func (h *Hub) GroupSize(group string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.groups[group])
}
