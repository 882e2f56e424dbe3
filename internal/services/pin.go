package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// FallbackPin is the effective PIN while no credential record exists yet.
const FallbackPin = "000000"

const (
	pinLength = 6
	// Failures beyond this many consecutive misses trigger the cooldown.
	maxFreeAttempts = 5
	baseLockout     = 30 * time.Second
	maxLockout      = time.Hour
)

// PinService guards the staff dashboard behind the shared six-digit PIN.
// The stored credential is a bcrypt hash, never a comparable plaintext, and
// repeated failures are throttled by a doubling cooldown.
type PinService struct {
	store PinStore
	now   func() time.Time
}

func NewPinService(store PinStore) *PinService {
	return &PinService{store: store, now: time.Now}
}

// Verify checks a six-digit PIN against the stored credential, or against
// the fallback when none is stored. A mismatch counts toward the lockout;
// a match resets the counter.
func (s *PinService) Verify(ctx context.Context, pin string) error {
	rec, found, err := s.store.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to load pin record: %w", err)
	}

	if remaining := s.lockoutRemaining(rec); remaining > 0 {
		slog.Warn("PIN verification refused during cooldown.", "remaining", remaining.String())
		return ErrPinLocked
	}

	if s.matches(rec, found, pin) {
		if found && rec.Attempts > 0 {
			rec.Attempts = 0
			rec.LastFailure = time.Time{}
			if err := s.store.Put(ctx, rec); err != nil {
				return fmt.Errorf("failed to reset attempt counter: %w", err)
			}
		}
		return nil
	}

	if err := s.recordFailure(ctx, rec, found); err != nil {
		slog.Error("Failed to persist PIN failure count.", "error", err)
	}
	return ErrInvalidPin
}

// Change rotates the PIN. The previous PIN must match the current effective
// value and the new PIN must be exactly six digits; otherwise the stored
// credential is unchanged.
func (s *PinService) Change(ctx context.Context, prevPin, newPin string) error {
	if !isSixDigits(newPin) {
		return fmt.Errorf("%w: new PIN must be %d digits", ErrValidation, pinLength)
	}
	if err := s.Verify(ctx, prevPin); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPin), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash new PIN: %w", err)
	}
	if err := s.store.Put(ctx, PinRecord{Hash: string(hash)}); err != nil {
		return fmt.Errorf("failed to store new PIN: %w", err)
	}
	slog.Info("Dashboard PIN changed.")
	return nil
}

func (s *PinService) matches(rec PinRecord, found bool, pin string) bool {
	if !found || rec.Hash == "" {
		return pin == FallbackPin
	}
	return bcrypt.CompareHashAndPassword([]byte(rec.Hash), []byte(pin)) == nil
}

// lockoutRemaining returns how long verification stays refused. The cooldown
// starts after maxFreeAttempts consecutive failures and doubles per extra
// failure, capped at maxLockout.
func (s *PinService) lockoutRemaining(rec PinRecord) time.Duration {
	if rec.Attempts < maxFreeAttempts {
		return 0
	}
	cooldown := baseLockout << uint(rec.Attempts-maxFreeAttempts)
	if cooldown > maxLockout || cooldown <= 0 {
		cooldown = maxLockout
	}
	remaining := cooldown - s.now().Sub(rec.LastFailure)
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (s *PinService) recordFailure(ctx context.Context, rec PinRecord, found bool) error {
	if !found {
		// First-ever failure with no record: persist a record for the
		// fallback so the counter has somewhere to live.
		hash, err := bcrypt.GenerateFromPassword([]byte(FallbackPin), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash fallback PIN: %w", err)
		}
		rec.Hash = string(hash)
	}
	rec.Attempts++
	rec.LastFailure = s.now()
	return s.store.Put(ctx, rec)
}

func isSixDigits(pin string) bool {
	if len(pin) != pinLength {
		return false
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
