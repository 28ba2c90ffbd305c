// Package notify carries user-facing outcome notifications out of the content
// managers. Hosts plug in their own Notifier (a toast, a status bar); the
// default writes through the application logger.
package notify

import (
	"github.com/okdev/milton/internal/pkg/logger"
)

// Notifier receives the outcome notifications the managers and the auth gate
// produce for the user.
type Notifier interface {
	// Success reports a completed operation.
	Success(title, detail string)
	// Failure reports an operation that did not go through.
	Failure(title, detail string)
}

type logNotifier struct{}

// NewLogNotifier returns a Notifier that writes notifications to the log.
func NewLogNotifier() Notifier {
	return logNotifier{}
}

func (logNotifier) Success(title, detail string) {
	logger.Info().Str("title", title).Msg(detail)
}

func (logNotifier) Failure(title, detail string) {
	logger.Warn().Str("title", title).Msg(detail)
}
