// File: internal/services/chat/types.go
package chat

import "time"

// Logger defines the logging interface used across chat services
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// ChatResult is the outcome of one HandleChat call. Failure is nil when the
// reply came from the model or when the gateway runs without a provider.
type ChatResult struct {
	Domain    string
	Text      string
	AIPowered bool
	Failure   *Failure
	Timestamp time.Time
}

// OK reports whether the result should be presented as a success.
func (r ChatResult) OK() bool {
	return r.Failure == nil
}

// HealthStatus is a snapshot of process-wide configuration flags.
type HealthStatus struct {
	Status           string
	Timestamp        time.Time
	AIAvailable      bool
	APIKeyConfigured bool
	Environment      string
	Version          string
}

// TestResult is the outcome of a diagnostic upstream call.
type TestResult struct {
	Success          bool
	Response         string
	Model            string
	Error            string
	AIAvailable      bool
	APIKeyConfigured bool
	Timestamp        time.Time
}
