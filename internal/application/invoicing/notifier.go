package invoicing

// Notifier is the explicit observer contract replacing UI reactivity:
// every successful store mutation publishes a user-facing notice.
type Notifier interface {
	Success(message string)
}

// NopNotifier discards notices. Useful where no observer is wired.
type NopNotifier struct{}

// Success implements Notifier.
func (NopNotifier) Success(string) {}
