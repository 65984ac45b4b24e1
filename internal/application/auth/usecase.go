package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/udhaydurai/donor-breeze/internal/application/dto"
	"github.com/udhaydurai/donor-breeze/internal/domain"
	"github.com/udhaydurai/donor-breeze/internal/domain/entity"
	"github.com/udhaydurai/donor-breeze/internal/domain/repository"
	"github.com/udhaydurai/donor-breeze/pkg/jwt"
)

// CodeSender delivers a verification code to the user. The production
// implementation writes to the log; real email delivery is out of scope.
type CodeSender interface {
	SendCode(email, code string) error
}

// Config credential-gate settings. AllowedEmail is the single permitted
// identity, compared exactly and case-sensitively.
type Config struct {
	AllowedEmail string
	CodeTTL      time.Duration
}

// JWTConfig session token settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase is the credential gate: issues one-time codes for the single
// allowed identity, verifies them with expiry and maintains the signed-in
// session.
type UseCase struct {
	sessions repository.SessionRepository
	sender   CodeSender
	cfg      Config
	jwtCfg   JWTConfig
	now      func() time.Time
}

// NewUseCase builds the credential gate.
func NewUseCase(sessions repository.SessionRepository, sender CodeSender, cfg Config, jwtCfg JWTConfig) *UseCase {
	return &UseCase{
		sessions: sessions,
		sender:   sender,
		cfg:      cfg,
		jwtCfg:   jwtCfg,
		now:      time.Now,
	}
}

// RequestCode validates the identity and issues a fresh 6-digit code with
// an expiry CodeTTL ahead, overwriting any prior pending code. A rejected
// identity changes no state. The code is handed to the sender (simulated
// email).
func (uc *UseCase) RequestCode(email string) error {
	if email != uc.cfg.AllowedEmail {
		return domain.ErrAccessDenied
	}
	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("auth: generate code: %w", err)
	}
	pending := entity.PendingCode{
		Code:   code,
		Expiry: uc.now().Add(uc.cfg.CodeTTL),
		Email:  email,
	}
	if err := uc.sessions.SetPendingCode(pending); err != nil {
		return fmt.Errorf("auth: store pending code: %w", err)
	}
	if err := uc.sender.SendCode(email, code); err != nil {
		return fmt.Errorf("auth: send code: %w", err)
	}
	return nil
}

// VerifyCode checks the submitted code against the pending one. Success
// requires: a stored code, an exact textual match, the current time
// strictly before expiry, and the stored identity equal to the allowed
// one. On success the session becomes authenticated and the code is
// cleared (single use). On failure a not-yet-expired pending code stays
// intact so the user can retry within the window.
func (uc *UseCase) VerifyCode(submitted string) (*dto.VerifyCodeResponse, error) {
	pending, err := uc.sessions.GetPendingCode()
	if err != nil {
		return nil, fmt.Errorf("auth: read pending code: %w", err)
	}
	if pending == nil ||
		submitted != pending.Code ||
		!uc.now().Before(pending.Expiry) ||
		pending.Email != uc.cfg.AllowedEmail {
		return nil, domain.ErrInvalidOrExpiredCode
	}
	if err := uc.sessions.SetSession(entity.Session{Authenticated: true, Email: pending.Email}); err != nil {
		return nil, fmt.Errorf("auth: store session: %w", err)
	}
	if err := uc.sessions.ClearPendingCode(); err != nil {
		return nil, fmt.Errorf("auth: clear pending code: %w", err)
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, pending.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("auth: issue token: %w", err)
	}
	return &dto.VerifyCodeResponse{Token: token, Email: pending.Email}, nil
}

// SignOut clears the signed-in state. Idempotent: signing out twice is fine.
func (uc *UseCase) SignOut() error {
	if err := uc.sessions.ClearSession(); err != nil {
		return fmt.Errorf("auth: sign out: %w", err)
	}
	return nil
}

// IsAuthenticated reports whether the durable signed-in flag is set.
func (uc *UseCase) IsAuthenticated() (bool, error) {
	session, err := uc.sessions.GetSession()
	if err != nil {
		return false, err
	}
	return session.Authenticated, nil
}

// CurrentIdentity returns the signed-in email, or empty when signed out.
func (uc *UseCase) CurrentIdentity() (string, error) {
	session, err := uc.sessions.GetSession()
	if err != nil {
		return "", err
	}
	if !session.Authenticated {
		return "", nil
	}
	return session.Email, nil
}

// generateCode draws a uniformly random 6-digit decimal code in
// [100000, 999999].
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}
