package repository

import "github.com/udhaydurai/donor-breeze/internal/domain/entity"

// SessionRepository persists the credential-gate state: the pending
// one-time code and the durable signed-in flag.
type SessionRepository interface {
	// SetPendingCode stores {code, expiry, email}, overwriting any prior
	// pending code.
	SetPendingCode(code entity.PendingCode) error
	// GetPendingCode returns the stored code, or nil when none is pending.
	GetPendingCode() (*entity.PendingCode, error)
	// ClearPendingCode removes the stored code. Idempotent.
	ClearPendingCode() error

	// SetSession persists the signed-in state.
	SetSession(session entity.Session) error
	// GetSession returns the current state; zero value when never set.
	GetSession() (entity.Session, error)
	// ClearSession signs out. Idempotent.
	ClearSession() error
}
