// Package mail simulates code delivery. Real email delivery is out of
// scope: the one-time code is emitted to the structured log where an
// operator can read it.
package mail

import "github.com/rs/zerolog"

// LogCodeSender writes the verification code to the log, standing in for
// an email delivery provider.
type LogCodeSender struct {
	log zerolog.Logger
}

// NewLogCodeSender builds the sender.
func NewLogCodeSender(log zerolog.Logger) *LogCodeSender {
	return &LogCodeSender{log: log}
}

// SendCode emits the code for the given recipient.
func (s *LogCodeSender) SendCode(email, code string) error {
	s.log.Info().
		Str("to", email).
		Str("code", code).
		Msg("verification code issued (simulated email delivery)")
	return nil
}
