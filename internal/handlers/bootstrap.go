package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Xiorelia/waitlist-service/config"
	"github.com/Xiorelia/waitlist-service/internal/mailer"
	"github.com/Xiorelia/waitlist-service/internal/models"
	"github.com/Xiorelia/waitlist-service/internal/turnstile"
	"github.com/Xiorelia/waitlist-service/internal/waitlist"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/resend/resend-go/v2"
	"github.com/sirupsen/logrus"
)

// Bootstrap wires the handler from environment configuration and Secrets
// Manager credentials.
func Bootstrap(ctx context.Context) (*Handler, error) {
	cfg, awsCfg, err := config.LoadConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	smClient := secretsmanager.NewFromConfig(awsCfg)

	emailCreds, err := mailer.GetEmailCreds(ctx, smClient, cfg.EmailSecretName)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve email credentials: %w", err)
	}

	m := mailer.New(resend.NewClient(emailCreds.APIKey).Emails, mailer.Settings{
		FromAddress:        cfg.FromAddress,
		AdminEmail:         cfg.AdminEmail,
		PreRegistrationURL: cfg.PreRegistrationURL,
	})

	var opts []waitlist.Option
	if cfg.TurnstileSecretName != "" {
		verifier, err := buildVerifier(ctx, smClient, cfg.TurnstileSecretName)
		if err != nil {
			return nil, err
		}
		opts = append(opts, waitlist.WithVerifier(verifier))
	} else {
		logrus.Warn("Turnstile secret not configured, server-side token verification disabled")
	}

	return NewHandler(waitlist.NewService(m, opts...)), nil
}

func buildVerifier(ctx context.Context, smClient config.SecretsManagerAPI, secretName string) (turnstile.Verifier, error) {
	raw, err := config.RetrieveSecret(ctx, secretName, smClient)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve turnstile credentials: %w", err)
	}

	var creds models.TurnstileCreds
	if err := json.Unmarshal([]byte(raw), &creds); err != nil {
		return nil, fmt.Errorf("failed to unmarshal turnstile credentials: %w", err)
	}

	return turnstile.NewClient(creds.SecretKey, nil)
}
