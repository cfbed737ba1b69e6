package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesGroupAndAll(t *testing.T) {
	hub := NewHub()
	groupSub := hub.Subscribe("assessment-1")
	allSub := hub.Subscribe(GroupAll)
	otherSub := hub.Subscribe("assessment-2")

	hub.Publish("assessment-1", "StudentJoined", map[string]string{"user": "u1"})

	msg := <-groupSub.C()
	assert.Equal(t, "StudentJoined", msg.EventType)
	assert.Equal(t, "assessment-1", msg.Group)

	all := <-allSub.C()
	assert.Equal(t, "StudentJoined", all.EventType)

	select {
	case <-otherSub.C():
		t.Fatal("subscriber of another group must not receive the event")
	default:
	}
}

func TestHub_SlowSubscriberLosesEvents(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe("assessment-1")

	// Fill the buffer without draining, then publish one more.
	for i := 0; i < subscriberBuffer+5; i++ {
		hub.Publish("assessment-1", "AnswerSubmitted", i)
	}

	// Only the buffered events arrive; the overflow was dropped, not queued.
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

func TestHub_UnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe("assessment-1")
	require.Equal(t, 1, hub.GroupSize("assessment-1"))

	hub.Unsubscribe(sub)
	assert.Equal(t, 0, hub.GroupSize("assessment-1"))

	_, open := <-sub.C()
	assert.False(t, open, "channel must be closed after unsubscribe")

	// Publishing to an empty group must not panic.
	hub.Publish("assessment-1", "StudentLeft", nil)

	// Double unsubscribe is a no-op.
	hub.Unsubscribe(sub)
}

func TestHub_NoReplayForLateJoiners(t *testing.T) {
	hub := NewHub()
	hub.Publish("assessment-1", "AssessmentStarted", nil)

	late := hub.Subscribe("assessment-1")
	select {
	case <-late.C():
		t.Fatal("late joiner must not see earlier events")
	default:
	}
}
