// Package notify adapts the invoicing Notifier port to the structured log.
// The original UI showed these notices as toasts; here the log is the
// operator-visible channel.
package notify

import "github.com/rs/zerolog"

// LogNotifier publishes success notices to the log.
type LogNotifier struct {
	log zerolog.Logger
}

// NewLogNotifier builds the notifier.
func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// Success implements invoicing.Notifier.
func (n *LogNotifier) Success(message string) {
	n.log.Info().Str("notice", message).Msg("store notification")
}
