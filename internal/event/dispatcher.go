package event

// Listener receives events.
type Listener interface {
	Handle(e Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(e Event)

// Handle calls f(e).
func (f ListenerFunc) Handle(e Event) {
	f(e)
}

type subscription struct {
	kinds    map[Kind]bool // nil matches every kind
	listener Listener
}

// Dispatcher fans events out to listeners in registration order.
// It is not safe for concurrent use.
type Dispatcher struct {
	subs []subscription
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Subscribe registers l for the given kinds only.
func (d *Dispatcher) Subscribe(l Listener, kinds ...Kind) {
	set := make(map[Kind]bool, len(kinds))
	for _, k := range kinds {
		set[k] = true
	}
	d.subs = append(d.subs, subscription{kinds: set, listener: l})
}

// SubscribeAll registers l for every kind.
func (d *Dispatcher) SubscribeAll(l Listener) {
	d.subs = append(d.subs, subscription{listener: l})
}

// Dispatch delivers e to every matching listener. A nil dispatcher drops it.
func (d *Dispatcher) Dispatch(e Event) {
	if d == nil {
		return
	}
	for _, s := range d.subs {
		if s.kinds == nil || s.kinds[e.Kind()] {
			s.listener.Handle(e)
		}
	}
}

// Queue is a listener that buffers events until drained.
type Queue struct {
	events []Event
}

// Handle appends e to the queue.
func (q *Queue) Handle(e Event) {
	q.events = append(q.events, e)
}

// Len returns the number of buffered events.
func (q *Queue) Len() int {
	return len(q.events)
}

// Drain returns the buffered events and empties the queue.
func (q *Queue) Drain() []Event {
	out := q.events
	q.events = nil
	return out
}
