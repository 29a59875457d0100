package circuit

type EventType int

const (
	EventWrap       EventType = iota // marker reached the end and restarted
	EventRegenerate                  // wrap rebuilt the path at a new origin
	EventResize                      // collection rebuilt for new bounds
)

func (t EventType) String() string {
	switch t {
	case EventWrap:
		return "wrap"
	case EventRegenerate:
		return "regenerate"
	case EventResize:
		return "resize"
	}
	return "unknown"
}

type Event struct {
	Type EventType
	X, Y float64 // origin of the path, or bounds for EventResize
	Data int     // path index, or path count for EventResize
}

type EventHandler func(Event)

// EventBus dispatches synchronously on the emitting goroutine.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	if eb == nil {
		return
	}
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
