package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrokerFanout(t *testing.T) {
	b := NewBroker()

	ch1, cancel1 := b.Subscribe("job:a")
	ch2, cancel2 := b.Subscribe("job:a")
	other, cancelOther := b.Subscribe("job:b")
	defer cancel1()
	defer cancel2()
	defer cancelOther()

	b.Broadcast("job:a", []byte("hello"))

	for _, ch := range []<-chan []byte{ch1, ch2} {
		select {
		case got := <-ch:
			assert.Equal(t, "hello", string(got))
		default:
			t.Fatal("expected a delivered payload")
		}
	}
	select {
	case <-other:
		t.Fatal("payload leaked to another channel")
	default:
	}
}

func TestBrokerCancelIsIdempotent(t *testing.T) {
	b := NewBroker()

	_, cancel := b.Subscribe("job:a")
	require.Equal(t, 1, b.SubscriberCount("job:a"))

	cancel()
	cancel()
	assert.Equal(t, 0, b.SubscriberCount("job:a"))

	// Broadcasting to a channel with no subscribers is a no-op.
	b.Broadcast("job:a", []byte("late"))
}

func TestBrokerSlowSubscriberDoesNotBlock(t *testing.T) {
	b := NewBroker()

	ch, cancel := b.Subscribe("job:a")
	defer cancel()

	for i := 0; i < subscriberBuffer+10; i++ {
		b.Broadcast("job:a", []byte("x"))
	}
	// The buffer is full; the overflow was dropped, not blocked on.
	assert.Len(t, ch, subscriberBuffer)
}
