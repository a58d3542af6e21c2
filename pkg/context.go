package trigger

import "sync"

// EventContext is passed to every per-event call. It carries what used to
// come from the framework's current slot: the event identity, the verbosity
// and where to report.
type EventContext struct {
	EventID   uint64
	Verbosity int
	Logger    Logger
}

func NewEventContext(eventID uint64, verbosity int, logger Logger) *EventContext {
	if logger == nil {
		logger = NopLogger{}
	}
	return &EventContext{EventID: eventID, Verbosity: verbosity, Logger: logger}
}

func (ev *EventContext) logger() Logger {
	if ev == nil || ev.Logger == nil {
		return NopLogger{}
	}
	return ev.Logger
}

func (ev *EventContext) eventID() uint64 {
	if ev == nil {
		return 0
	}
	return ev.EventID
}

func (ev *EventContext) verbosity() int {
	if ev == nil {
		return 0
	}
	return ev.Verbosity
}

// reportLatch makes an error key reach the logger only the first time it
// is seen, whichever event sees it first.
type reportLatch struct {
	seen sync.Map
}

func (l *reportLatch) report(ev *EventContext, key string, err error) bool {
	if _, loaded := l.seen.LoadOrStore(key, struct{}{}); loaded {
		return false
	}
	ev.logger().Error(err.Error())
	return true
}
