package events

import "sync"

// Topics published by the mutating services. Admin dashboards subscribe to
// these over SSE instead of polling.
const (
	TopicAppointments = "appointments"
	TopicOrders       = "orders"
	TopicProducts     = "products"
)

// Event is a change notification for one document in a collection.
type Event struct {
	Topic   string      `json:"topic"`
	Action  string      `json:"action"` // created | updated
	Payload interface{} `json:"payload"`
}

// Hub is an in-process publish/subscribe fan-out. Publishing never blocks:
// a subscriber that falls behind drops events rather than stalling writers.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[chan Event]struct{})}
}

// Subscribe registers a listener for a topic. The returned cancel func must
// be called when the listener goes away.
func (h *Hub) Subscribe(topic string) (<-chan Event, func()) {
	ch := make(chan Event, 16)
	h.mu.Lock()
	if h.subs[topic] == nil {
		h.subs[topic] = make(map[chan Event]struct{})
	}
	h.subs[topic][ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if _, ok := h.subs[topic][ch]; ok {
			delete(h.subs[topic], ch)
			close(ch)
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// Publish delivers an event to every subscriber of the topic.
// A nil Hub is a no-op so services can run without one in tests.
func (h *Hub) Publish(topic, action string, payload interface{}) {
	if h == nil {
		return
	}
	ev := Event{Topic: topic, Action: action, Payload: payload}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subs[topic] {
		select {
		case ch <- ev:
		default:
		}
	}
}
