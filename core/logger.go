package core

// Logger is the app-wide logging contract.
// args may include structured context (map[string]interface{}), errors and,
// where relevant, the active session so the backing service can attribute
// the event to a person.
type Logger interface {
	Enable(enabled bool)
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
