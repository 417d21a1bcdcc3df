package models

// SignupRequest is the body of one waitlist submission. It is never stored;
// it only lives for the duration of the request that carries it.
type SignupRequest struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	VerificationToken string `json:"verificationToken,omitempty"`
	Lang              string `json:"lang,omitempty"`
}

// SignupSuccess is the 200 response body.
type SignupSuccess struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SignupFailure is the 4xx/5xx response body. AdminSent and UserSent are set
// when delivery or token verification fails, so callers can tell which of
// the two sends completed before the request failed.
type SignupFailure struct {
	Error     string `json:"error"`
	AdminSent *bool  `json:"admin_sent,omitempty"`
	UserSent  *bool  `json:"user_sent,omitempty"`
}

type EmailCreds struct {
	APIKey string `json:"RESEND_APIKEY"`
}

type TurnstileCreds struct {
	SecretKey string `json:"TURNSTILE_SECRET_KEY"`
}
