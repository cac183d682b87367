package nav

// EventKind identifies a user action after key and mouse decoding.
type EventKind int

const (
	EventActivate EventKind = iota
	EventExit
	EventQuit
	EventMoveUp
	EventMoveDown
	EventMoveLeft
	EventMoveRight
)

// Handler reacts to one event kind. T is the state it transforms, R what it
// hands back to the caller (for the UI, a command).
type Handler[T any, R any] func(T) (T, R)

// Dispatcher is a table from event kind to handler, invoked synchronously.
type Dispatcher[T any, R any] struct {
	handlers map[EventKind]Handler[T, R]
}

func NewDispatcher[T any, R any]() *Dispatcher[T, R] {
	return &Dispatcher[T, R]{handlers: make(map[EventKind]Handler[T, R])}
}

// On registers h for kind, replacing any earlier handler.
func (d *Dispatcher[T, R]) On(kind EventKind, h Handler[T, R]) *Dispatcher[T, R] {
	d.handlers[kind] = h
	return d
}

// Dispatch runs the handler for kind. ok is false when none is registered, in
// which case state is returned unchanged.
func (d *Dispatcher[T, R]) Dispatch(kind EventKind, state T) (next T, result R, ok bool) {
	h, found := d.handlers[kind]
	if !found {
		return state, result, false
	}
	next, result = h(state)
	return next, result, true
}
