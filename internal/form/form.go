// Package form models the waitlist submission form: raw field input, bot
// verification gating, one POST per submit attempt, and the loading, success
// and error states the UI reflects.
package form

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/Xiorelia/waitlist-service/internal/models"
)

type State int

const (
	// StateIdle: no valid verification token held; submit is blocked.
	StateIdle State = iota
	// StateVerified: challenge passed, token held, submit allowed.
	StateVerified
	// StateSubmitting: POST in flight.
	StateSubmitting
	// StateSuccess: confirmation shown; reverts to idle after the window.
	StateSuccess
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateVerified:
		return "verified"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	default:
		return "unknown"
	}
}

const (
	// DefaultSuccessWindow matches the confirmation display time of the
	// landing page before the form reverts to idle.
	DefaultSuccessWindow = 4 * time.Second

	ErrMsgVerificationRequired = "please complete the security verification"
	ErrMsgVerificationFailed   = "security verification failed, please try again"
	ErrMsgVerificationExpired  = "security verification expired, please complete it again"
	ErrMsgSubmitFailed         = "failed to submit the form"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Form is safe for concurrent use, though a single UI normally drives it.
type Form struct {
	mu            sync.Mutex
	endpoint      string
	client        HTTPClient
	lang          string
	successWindow time.Duration

	name   string
	email  string
	token  string
	state  State
	errMsg string
	timer  *time.Timer
}

type Option func(*Form)

// WithSuccessWindow overrides how long the success state is held.
func WithSuccessWindow(d time.Duration) Option {
	return func(f *Form) { f.successWindow = d }
}

// WithLanguage sets the lang field sent with submissions.
func WithLanguage(lang string) Option {
	return func(f *Form) { f.lang = lang }
}

func New(endpoint string, client HTTPClient, opts ...Option) *Form {
	f := &Form{
		endpoint:      endpoint,
		client:        client,
		successWindow: DefaultSuccessWindow,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Form) UpdateName(value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.name = value
}

func (f *Form) UpdateEmail(value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.email = value
}

// HandleVerificationSuccess stores the challenge token and unblocks submit.
func (f *Form) HandleVerificationSuccess(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = token
	f.errMsg = ""
	if f.state == StateIdle {
		f.state = StateVerified
	}
}

// HandleVerificationError clears the token and blocks submit again.
func (f *Form) HandleVerificationError() {
	f.invalidateToken(ErrMsgVerificationFailed)
}

// HandleVerificationExpire clears the expired token and blocks submit again.
func (f *Form) HandleVerificationExpire() {
	f.invalidateToken(ErrMsgVerificationExpired)
}

func (f *Form) invalidateToken(msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = ""
	f.errMsg = msg
	if f.state == StateVerified {
		f.state = StateIdle
	}
}

// Submit performs one submission attempt. It is a no-op network-wise unless
// a verification token is held. Any error invalidates the token; the name
// and email stay intact so the user can retry without re-typing.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.state == StateSubmitting {
		f.mu.Unlock()
		return fmt.Errorf("submission already in progress")
	}
	if f.state != StateVerified || f.token == "" {
		f.errMsg = ErrMsgVerificationRequired
		f.mu.Unlock()
		return fmt.Errorf(ErrMsgVerificationRequired)
	}

	payload := models.SignupRequest{
		Name:              f.name,
		Email:             f.email,
		VerificationToken: f.token,
		Lang:              f.lang,
	}
	f.state = StateSubmitting
	f.errMsg = ""
	f.mu.Unlock()

	err := f.post(ctx, payload)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		// The token was consumed by the attempt; a fresh one is required.
		f.token = ""
		f.state = StateIdle
		f.errMsg = err.Error()
		return err
	}

	f.name = ""
	f.email = ""
	f.token = ""
	f.errMsg = ""
	f.state = StateSuccess
	if f.timer != nil {
		f.timer.Stop()
	}
	f.timer = time.AfterFunc(f.successWindow, f.revertSuccess)
	return nil
}

func (f *Form) revertSuccess() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StateSuccess {
		f.state = StateIdle
	}
}

func (f *Form) post(ctx context.Context, payload models.SignupRequest) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgSubmitFailed, err)
	}
	defer resp.Body.Close()

	var result struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&result)

	if resp.StatusCode != http.StatusOK || !result.Success {
		if result.Error != "" {
			return fmt.Errorf("%s", result.Error)
		}
		return fmt.Errorf(ErrMsgSubmitFailed)
	}
	return nil
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Form) Err() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg
}

// Values returns the currently entered name and email.
func (f *Form) Values() (name, email string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.name, f.email
}
