// Package eventbus delivers typed domain events to subscribed handlers.
//
// Delivery is synchronous and strictly ordered: Publish runs every handler
// for the event's kind to completion, in subscription order, before
// returning. Publish must only be called from a single goroutine; the
// status engine relies on this single-threaded contract instead of locks.
package eventbus

import (
	"log/slog"

	"github.com/kestrelkb/keyhud/event"
)

// Handler consumes one delivered event.
type Handler func(event.Event)

// Bus routes events to handlers by kind.
type Bus struct {
	subs map[event.Kind][]Handler
	log  *slog.Logger
}

// New creates an empty bus. A nil logger disables publish logging.
func New(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Bus{
		subs: make(map[event.Kind][]Handler),
		log:  logger,
	}
}

// Subscribe registers a handler for one event kind. Handlers fire in
// subscription order.
func (b *Bus) Subscribe(kind event.Kind, h Handler) {
	b.subs[kind] = append(b.subs[kind], h)
}

// Publish delivers an event to all handlers subscribed to its kind. Events
// with no subscribers are dropped silently.
func (b *Bus) Publish(ev event.Event) {
	kind := ev.EventKind()
	handlers := b.subs[kind]
	b.log.Debug("publishing event", "kind", kind.String(), "handlers", len(handlers))
	for _, h := range handlers {
		h(ev)
	}
}
