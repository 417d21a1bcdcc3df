package mailer

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Xiorelia/waitlist-service/config"
	"github.com/Xiorelia/waitlist-service/internal/messages"
	"github.com/Xiorelia/waitlist-service/internal/models"
	"github.com/resend/resend-go/v2"
	"github.com/sirupsen/logrus"
)

const (
	adminTemplate   = "admin_notification.liquid"
	welcomeTemplate = "welcome.liquid"

	logoContentID = "xiorelia-logo"
	logoFilename  = "xiorelia-logo.png"

	// The admin notification always carried an es-ES short timestamp,
	// regardless of the submitter's language.
	adminTimeFormat = "02/01/2006 15:04:05"
)

//go:embed assets/xiorelia-logo.png
var logoPNG []byte

// EmailClient is the slice of the Resend API the mailer needs. The resend
// client's Emails service satisfies it directly.
type EmailClient interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

type Settings struct {
	FromAddress        string
	AdminEmail         string
	PreRegistrationURL string
}

// Mailer builds and dispatches the two waitlist emails.
type Mailer struct {
	client EmailClient
	tmpl   *TemplateEngine
	cfg    Settings
}

func New(client EmailClient, cfg Settings) *Mailer {
	return &Mailer{
		client: client,
		tmpl:   NewTemplateEngine(),
		cfg:    cfg,
	}
}

// SendAdminNotification emails the internal admin address about a new signup.
func (m *Mailer) SendAdminNotification(ctx context.Context, signup models.SignupRequest, signupID string, submittedAt time.Time) (string, error) {
	loc := messages.DefaultLocale

	html, err := m.tmpl.Render(adminTemplate, map[string]interface{}{
		"title":        messages.Lookup(loc, messages.KeyAdminTitle),
		"name_label":   messages.Lookup(loc, messages.KeyAdminNameLabel),
		"email_label":  messages.Lookup(loc, messages.KeyAdminMailLabel),
		"date_label":   messages.Lookup(loc, messages.KeyAdminDateLabel),
		"footnote":     messages.Lookup(loc, messages.KeyAdminFootnote),
		"name":         signup.Name,
		"email":        signup.Email,
		"submitted_at": submittedAt.Format(adminTimeFormat),
		"signup_id":    signupID,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render admin notification: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    m.cfg.FromAddress,
		To:      []string{m.cfg.AdminEmail},
		Subject: fmt.Sprintf(messages.Lookup(loc, messages.KeyAdminSubject), signup.Name),
		Html:    html,
	}

	sent, err := m.client.SendWithContext(ctx, params)
	if err != nil {
		logrus.WithError(err).WithField("signup_id", signupID).Error("Failed to send admin notification")
		return "", fmt.Errorf("failed to send admin notification: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"signup_id": signupID,
		"email_id":  sent.Id,
	}).Info("Admin notification sent")

	return sent.Id, nil
}

// SendWelcome emails the submitter a localized confirmation with the
// pre-registration call to action and the inline logo.
func (m *Mailer) SendWelcome(ctx context.Context, signup models.SignupRequest, signupID string) (string, error) {
	loc := messages.ParseLocale(signup.Lang)

	html, err := m.tmpl.Render(welcomeTemplate, map[string]interface{}{
		"logo_cid":   logoContentID,
		"greeting":   fmt.Sprintf(messages.Lookup(loc, messages.KeyWelcomeGreeting), signup.Name),
		"intro":      messages.Lookup(loc, messages.KeyWelcomeIntro),
		"next_title": messages.Lookup(loc, messages.KeyWelcomeNextTitle),
		"next_items": []string{
			messages.Lookup(loc, messages.KeyWelcomeNextOne),
			messages.Lookup(loc, messages.KeyWelcomeNextTwo),
			messages.Lookup(loc, messages.KeyWelcomeNextThree),
		},
		"cta_title":  messages.Lookup(loc, messages.KeyWelcomeCTATitle),
		"cta_body":   messages.Lookup(loc, messages.KeyWelcomeCTABody),
		"cta_url":    m.cfg.PreRegistrationURL,
		"cta_button": messages.Lookup(loc, messages.KeyWelcomeCTAButton),
		"cta_hint":   messages.Lookup(loc, messages.KeyWelcomeCTAHint),
		"contact":    messages.Lookup(loc, messages.KeyWelcomeContact),
		"footer":     messages.Lookup(loc, messages.KeyWelcomeFooter),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render welcome email: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    m.cfg.FromAddress,
		To:      []string{signup.Email},
		Subject: messages.Lookup(loc, messages.KeyWelcomeSubject),
		Html:    html,
		Attachments: []*resend.Attachment{
			{
				Content:     logoPNG,
				Filename:    logoFilename,
				ContentType: "image/png",
				ContentId:   logoContentID,
			},
		},
	}

	sent, err := m.client.SendWithContext(ctx, params)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"signup_id": signupID,
			"email":     signup.Email,
		}).Error("Failed to send welcome email")
		return "", fmt.Errorf("failed to send welcome email: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"signup_id": signupID,
		"email_id":  sent.Id,
	}).Info("Welcome email sent")

	return sent.Id, nil
}

// GetEmailCreds pulls the Resend API key from Secrets Manager.
func GetEmailCreds(ctx context.Context, svc config.SecretsManagerAPI, secretName string) (models.EmailCreds, error) {
	if secretName == "" {
		return models.EmailCreds{}, fmt.Errorf("email service secret name is required")
	}

	raw, err := config.RetrieveSecret(ctx, secretName, svc)
	if err != nil {
		return models.EmailCreds{}, fmt.Errorf("failed to retrieve email service credentials: %w", err)
	}

	var creds models.EmailCreds
	if err := json.Unmarshal([]byte(raw), &creds); err != nil {
		return models.EmailCreds{}, fmt.Errorf("failed to unmarshal email credentials: %w", err)
	}

	return creds, nil
}
