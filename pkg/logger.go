package trigger

type Logger interface {
	Info(message string, module string)
	Error(string)
}

// NopLogger discards everything. Used when the caller does not care.
type NopLogger struct{}

func (NopLogger) Info(string, string) {}
func (NopLogger) Error(string)        {}
