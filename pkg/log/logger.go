package log

// Logger receives beacon events. Producers call Log from OS callback
// goroutines, so implementations must be safe for concurrent use.
type Logger interface {
	Log(event Event)
}

// NoopLogger discards every event. The zero value is ready to use.
type NoopLogger struct{}

func (NoopLogger) Log(Event) {}

// OrNoop returns l, or NoopLogger when l is nil.
func OrNoop(l Logger) Logger {
	return Combine(l)
}

// Combine fans events out to every non-nil logger in order. It returns
// NoopLogger when none are left and the logger itself when only one is.
func Combine(loggers ...Logger) Logger {
	var sinks []Logger
	for _, l := range loggers {
		if l != nil {
			sinks = append(sinks, l)
		}
	}
	switch len(sinks) {
	case 0:
		return NoopLogger{}
	case 1:
		return sinks[0]
	}
	return &fanout{sinks: sinks}
}

type fanout struct {
	sinks []Logger
}

func (f *fanout) Log(event Event) {
	for _, l := range f.sinks {
		l.Log(event)
	}
}
