package bolt

import (
	"fmt"
	"time"

	"github.com/udhaydurai/donor-breeze/internal/domain/entity"
	"github.com/udhaydurai/donor-breeze/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo persists the pending verification code and the signed-in
// flag, one value per key, matching the historical storage entries
// (verificationCode, verificationExpiration, verificationEmail,
// isAuthenticated, userEmail).
type SessionRepo struct {
	store *Store
}

// NewSessionRepository builds the adapter.
func NewSessionRepository(store *Store) *SessionRepo {
	return &SessionRepo{store: store}
}

// SetPendingCode stores the code, expiry and email atomically, overwriting
// any prior pending code.
func (r *SessionRepo) SetPendingCode(code entity.PendingCode) error {
	err := r.store.putAll(map[string][]byte{
		keyVerificationCode:       []byte(code.Code),
		keyVerificationExpiration: []byte(code.Expiry.UTC().Format(time.RFC3339Nano)),
		keyVerificationEmail:      []byte(code.Email),
	})
	if err != nil {
		return fmt.Errorf("set pending code: %w", err)
	}
	return nil
}

// GetPendingCode returns the stored code, or nil when none is pending.
func (r *SessionRepo) GetPendingCode() (*entity.PendingCode, error) {
	rawCode, err := r.store.get(keyVerificationCode)
	if err != nil {
		return nil, fmt.Errorf("get pending code: %w", err)
	}
	if rawCode == nil {
		return nil, nil
	}
	rawExpiry, err := r.store.get(keyVerificationExpiration)
	if err != nil {
		return nil, fmt.Errorf("get pending code expiry: %w", err)
	}
	expiry, err := time.Parse(time.RFC3339Nano, string(rawExpiry))
	if err != nil {
		return nil, fmt.Errorf("parse pending code expiry: %w", err)
	}
	rawEmail, err := r.store.get(keyVerificationEmail)
	if err != nil {
		return nil, fmt.Errorf("get pending code email: %w", err)
	}
	return &entity.PendingCode{
		Code:   string(rawCode),
		Expiry: expiry,
		Email:  string(rawEmail),
	}, nil
}

// ClearPendingCode removes all three code keys. Idempotent.
func (r *SessionRepo) ClearPendingCode() error {
	err := r.store.putAll(map[string][]byte{
		keyVerificationCode:       nil,
		keyVerificationExpiration: nil,
		keyVerificationEmail:      nil,
	})
	if err != nil {
		return fmt.Errorf("clear pending code: %w", err)
	}
	return nil
}

// SetSession persists the signed-in state.
func (r *SessionRepo) SetSession(session entity.Session) error {
	flag := []byte("false")
	if session.Authenticated {
		flag = []byte("true")
	}
	err := r.store.putAll(map[string][]byte{
		keyIsAuthenticated: flag,
		keyUserEmail:       []byte(session.Email),
	})
	if err != nil {
		return fmt.Errorf("set session: %w", err)
	}
	return nil
}

// GetSession returns the current signed-in state; the zero value when the
// keys were never written (or were cleared).
func (r *SessionRepo) GetSession() (entity.Session, error) {
	rawFlag, err := r.store.get(keyIsAuthenticated)
	if err != nil {
		return entity.Session{}, fmt.Errorf("get session: %w", err)
	}
	rawEmail, err := r.store.get(keyUserEmail)
	if err != nil {
		return entity.Session{}, fmt.Errorf("get session email: %w", err)
	}
	return entity.Session{
		Authenticated: string(rawFlag) == "true",
		Email:         string(rawEmail),
	}, nil
}

// ClearSession removes the signed-in flag and identity. Idempotent.
func (r *SessionRepo) ClearSession() error {
	err := r.store.putAll(map[string][]byte{
		keyIsAuthenticated: nil,
		keyUserEmail:       nil,
	})
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
