package events

import "sync"

// subscriberBuffer is the per-subscriber channel capacity. A subscriber that
// stops draining loses events rather than blocking the dispatch path;
// clients recover via catchup from the events table.
const subscriberBuffer = 64

// Broker fans notifications out to in-process subscribers, keyed by NOTIFY
// channel name. Safe for concurrent use.
type Broker struct {
	mu   sync.RWMutex
	subs map[string]map[chan []byte]struct{}
}

// NewBroker creates an empty Broker.
func NewBroker() *Broker {
	return &Broker{subs: make(map[string]map[chan []byte]struct{})}
}

// Subscribe registers a subscriber for a channel and returns the delivery
// channel plus a cancel function. The cancel function is idempotent.
func (b *Broker) Subscribe(channel string) (<-chan []byte, func()) {
	ch := make(chan []byte, subscriberBuffer)

	b.mu.Lock()
	set, ok := b.subs[channel]
	if !ok {
		set = make(map[chan []byte]struct{})
		b.subs[channel] = set
	}
	set[ch] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			if set, ok := b.subs[channel]; ok {
				delete(set, ch)
				if len(set) == 0 {
					delete(b.subs, channel)
				}
			}
			b.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Broadcast delivers a payload to every subscriber of the channel without
// blocking. Slow subscribers are skipped.
func (b *Broker) Broadcast(channel string, payload []byte) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for ch := range b.subs[channel] {
		select {
		case ch <- payload:
		default:
		}
	}
}

// SubscriberCount reports the number of active subscribers for a channel.
func (b *Broker) SubscriberCount(channel string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[channel])
}
