package game

import (
	"slices"

	"github.com/kamstrup/intmap"
)

//go:generate go tool stringer -type=EventKind -trimprefix=Event

// EventKind tags the payload carried by an Event.
type EventKind int

const (
	EventLineClear EventKind = iota
	EventPieceLock
	EventSpin
	EventCombo
	EventLevelUp
	EventGameOver
	EventCompleted

	eventKindCount = iota
)

// Event is raised synchronously by the Controller. Only the fields relevant
// to Kind are set.
type Event struct {
	Kind EventKind
	// Rows lists the cleared row indices, top to bottom (EventLineClear).
	// Each handler receives its own copy.
	Rows []int
	// Piece is the locked piece (EventPieceLock, EventSpin).
	Piece ActivePiece
	// Combo is the current consecutive clear count (EventCombo).
	Combo int
	// Level is the new level (EventLevelUp).
	Level int
}

// Handler receives events. Handlers run on the caller's goroutine before the
// raising operation returns and must not block.
type Handler func(Event)

// Subscription identifies a registered handler.
type Subscription uint64

type subscriber struct {
	id Subscription
	fn Handler
}

// eventBus keeps per-kind handler lists in registration order. Lists are
// replaced rather than edited on removal so an emit in progress keeps
// iterating the list it started with.
type eventBus struct {
	lastID   Subscription
	handlers [eventKindCount][]subscriber
	kinds    *intmap.Map[Subscription, EventKind]
}

func newEventBus() eventBus {
	return eventBus{kinds: intmap.New[Subscription, EventKind](16)}
}

func (b *eventBus) subscribe(kind EventKind, fn Handler) Subscription {
	if kind < 0 || kind >= eventKindCount {
		panic("game: unknown event kind " + kind.String())
	}
	if fn == nil {
		panic("game: nil event handler")
	}
	b.lastID++
	b.handlers[kind] = append(b.handlers[kind], subscriber{id: b.lastID, fn: fn})
	b.kinds.Put(b.lastID, kind)
	return b.lastID
}

func (b *eventBus) unsubscribe(id Subscription) bool {
	kind, ok := b.kinds.Get(id)
	if !ok {
		return false
	}
	b.kinds.Del(id)
	b.handlers[kind] = slices.DeleteFunc(slices.Clone(b.handlers[kind]), func(s subscriber) bool {
		return s.id == id
	})
	return true
}

// emit hands every handler its own copy of Rows.
func (b *eventBus) emit(ev Event) {
	for _, s := range b.handlers[ev.Kind] {
		e := ev
		e.Rows = slices.Clone(ev.Rows)
		s.fn(e)
	}
}

// Subscribe registers fn for events of the given kind and returns a handle
// for Unsubscribe. Handlers of one kind run in registration order.
func (c *Controller) Subscribe(kind EventKind, fn Handler) Subscription {
	return c.events.subscribe(kind, fn)
}

// SubscribeAll registers fn for every event kind. The returned handles are
// ordered by kind.
func (c *Controller) SubscribeAll(fn Handler) []Subscription {
	subs := make([]Subscription, 0, eventKindCount)
	for kind := EventKind(0); kind < eventKindCount; kind++ {
		subs = append(subs, c.events.subscribe(kind, fn))
	}
	return subs
}

// Unsubscribe removes a handler. It reports false if the handle is unknown or
// was already removed.
func (c *Controller) Unsubscribe(sub Subscription) bool {
	return c.events.unsubscribe(sub)
}
