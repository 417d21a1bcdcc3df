// Package waitlist implements the signup submission flow: validation, bot
// token verification, then the admin notification followed by the user
// confirmation email. The two sends are sequential and non-transactional;
// the outcome records which steps completed so partial failures can be
// reported precisely.
package waitlist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Xiorelia/waitlist-service/internal/models"
	"github.com/Xiorelia/waitlist-service/internal/turnstile"
	"github.com/Xiorelia/waitlist-service/internal/validation"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	// ErrValidation marks user-correctable input problems.
	ErrValidation = errors.New("validation error")
	// ErrTokenRejected marks a bot-verification token the provider refused.
	ErrTokenRejected = errors.New("verification token rejected")
	// ErrVerifierUnavailable marks a failure to reach the verification
	// provider; the token's validity is unknown and no email is attempted.
	ErrVerifierUnavailable = errors.New("internal error: failed to verify challenge token")
)

// DeliveryError reports a failed email send along with which of the two
// sends had already completed. There is no compensating action: a succeeded
// admin send stays sent, and a retried submission will duplicate it.
type DeliveryError struct {
	Stage     string // "admin" or "user"
	AdminSent bool
	UserSent  bool
	Err       error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("failed to deliver %s email: %v", e.Stage, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// Mailer dispatches the two waitlist emails.
type Mailer interface {
	SendAdminNotification(ctx context.Context, signup models.SignupRequest, signupID string, submittedAt time.Time) (string, error)
	SendWelcome(ctx context.Context, signup models.SignupRequest, signupID string) (string, error)
}

// Outcome summarizes one processed submission.
type Outcome struct {
	SignupID  string
	AdminSent bool
	UserSent  bool
}

type Service struct {
	mailer   Mailer
	verifier turnstile.Verifier // nil disables server-side verification
	now      func() time.Time
}

type Option func(*Service)

// WithVerifier enables server-side verification of the submitted token.
func WithVerifier(v turnstile.Verifier) Option {
	return func(s *Service) { s.verifier = v }
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(mailer Mailer, opts ...Option) *Service {
	s := &Service{
		mailer: mailer,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ProcessSignup runs one submission end to end. The returned Outcome is
// meaningful even on error; callers use it to report which sends completed.
func (s *Service) ProcessSignup(ctx context.Context, req models.SignupRequest) (Outcome, error) {
	outcome := Outcome{SignupID: uuid.NewString()}

	log := logrus.WithFields(logrus.Fields{
		"signup_id": outcome.SignupID,
		"email":     req.Email,
	})
	log.Info("Processing waitlist signup")

	req, err := validation.ValidateAndFormatSignup(req)
	if err != nil {
		return outcome, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if s.verifier != nil {
		ok, err := s.verifier.Verify(ctx, req.VerificationToken)
		if err != nil {
			log.WithError(err).Error("Failed to verify challenge token")
			return outcome, fmt.Errorf("%w: %v", ErrVerifierUnavailable, err)
		}
		if !ok {
			log.Warn("Challenge token rejected, refusing submission")
			return outcome, ErrTokenRejected
		}
	}

	// Admin email first, then the user confirmation. Always in this order.
	if _, err := s.mailer.SendAdminNotification(ctx, req, outcome.SignupID, s.now()); err != nil {
		return outcome, &DeliveryError{Stage: "admin", Err: err}
	}
	outcome.AdminSent = true

	if _, err := s.mailer.SendWelcome(ctx, req, outcome.SignupID); err != nil {
		return outcome, &DeliveryError{Stage: "user", AdminSent: true, Err: err}
	}
	outcome.UserSent = true

	log.Info("Waitlist signup processed successfully")
	return outcome, nil
}
