package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobChannel(t *testing.T) {
	assert.Equal(t, "job:abc-123", JobChannel("abc-123"))
}

func TestInjectDBEventID(t *testing.T) {
	payload := []byte(`{"jobId":"j1","status":"invoking"}`)
	out, err := injectDBEventIDAndTruncate(payload, 42)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.EqualValues(t, 42, m["db_event_id"])
	assert.Equal(t, "j1", m["jobId"])
	assert.Equal(t, "invoking", m["status"])
}

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("small payload passes through", func(t *testing.T) {
		out, err := truncateIfNeeded(`{"jobId":"j1","status":"complete"}`)
		require.NoError(t, err)
		assert.Equal(t, `{"jobId":"j1","status":"complete"}`, out)
	})

	t.Run("oversized payload becomes envelope", func(t *testing.T) {
		big := map[string]any{
			"jobId":    "j1",
			"status":   "complete",
			"metadata": map[string]any{"blob": strings.Repeat("x", 9000)},
		}
		raw, err := json.Marshal(big)
		require.NoError(t, err)

		out, err := truncateIfNeeded(string(raw))
		require.NoError(t, err)
		assert.Less(t, len(out), notifyLimit)

		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &m))
		assert.Equal(t, true, m["truncated"])
		assert.Equal(t, "j1", m["jobId"])
		assert.Equal(t, "complete", m["status"])
		assert.NotContains(t, m, "metadata")
	})

	t.Run("envelope keeps db_event_id", func(t *testing.T) {
		big := map[string]any{
			"jobId":       "j1",
			"status":      "complete",
			"db_event_id": 7,
			"metadata":    map[string]any{"blob": strings.Repeat("x", 9000)},
		}
		raw, err := json.Marshal(big)
		require.NoError(t, err)

		out, err := truncateIfNeeded(string(raw))
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &m))
		assert.EqualValues(t, 7, m["db_event_id"])
	})
}

func TestBrokerFanoutCounts(t *testing.T) {
	b := NewBroker()

	ch1, cancel1 := b.Subscribe("job:j1")
	ch2, cancel2 := b.Subscribe("job:j1")
	other, cancelOther := b.Subscribe("job:j2")
	defer cancelOther()

	b.Broadcast("job:j1", []byte("hello"))

	assert.Equal(t, []byte("hello"), <-ch1)
	assert.Equal(t, []byte("hello"), <-ch2)
	assert.Empty(t, other)

	assert.Equal(t, 2, b.SubscriberCount("job:j1"))
	cancel1()
	assert.Equal(t, 1, b.SubscriberCount("job:j1"))
	cancel2()
	cancel2() // idempotent
	assert.Equal(t, 0, b.SubscriberCount("job:j1"))

	// Broadcast to a channel with no subscribers is a no-op.
	b.Broadcast("job:j1", []byte("dropped"))
}

func TestBrokerSlowSubscriberBroadcastReturns(t *testing.T) {
	b := NewBroker()
	_, cancel := b.Subscribe("job:j1")
	defer cancel()

	// Fill well past the buffer; Broadcast must never block.
	for i := 0; i < subscriberBuffer*2; i++ {
		b.Broadcast("job:j1", []byte("x"))
	}
}
