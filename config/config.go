package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/sirupsen/logrus"
)

const defaultPreRegistrationURL = "https://docs.google.com/forms/d/e/1FAIpQLSfmNLxNk3Dsdyp4-rTwDpl8trqtcmpKrC-hPtRULlfLR3cvsw/viewform?usp=header"

type Config struct {
	// FromAddress is the sender of both outbound emails, e.g.
	// "Xiorelia <hola@xiorelia.com>".
	FromAddress string
	// AdminEmail receives the internal signup notification. Falls back to
	// FromAddress when unset.
	AdminEmail string
	// PreRegistrationURL is the call-to-action link in the welcome email.
	PreRegistrationURL string
	// EmailSecretName is the Secrets Manager secret holding the Resend API key.
	EmailSecretName string
	// TurnstileSecretName is the Secrets Manager secret holding the Turnstile
	// secret key. Empty disables server-side token verification.
	TurnstileSecretName string
}

type SecretsManagerAPI interface {
	GetSecretValue(ctx context.Context, input *secretsmanager.GetSecretValueInput, opts ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

func LoadConfig(ctx context.Context) (*Config, aws.Config, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}

	fromAddress := os.Getenv("EMAIL_FROM_ADDRESS")
	if fromAddress == "" {
		return nil, aws.Config{}, errors.New("EMAIL_FROM_ADDRESS environment variable is required")
	}

	emailSecretName := os.Getenv("EMAIL_SERVICE_KEY")
	if emailSecretName == "" {
		return nil, aws.Config{}, errors.New("EMAIL_SERVICE_KEY environment variable is required")
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = fromAddress
	}

	preRegURL := os.Getenv("PREREGISTRATION_FORM_URL")
	if preRegURL == "" {
		preRegURL = defaultPreRegistrationURL
	}

	cfg := &Config{
		FromAddress:         fromAddress,
		AdminEmail:          adminEmail,
		PreRegistrationURL:  preRegURL,
		EmailSecretName:     emailSecretName,
		TurnstileSecretName: os.Getenv("TURNSTILE_SECRET_NAME"),
	}

	logrus.WithFields(logrus.Fields{
		"admin_email":         cfg.AdminEmail,
		"turnstile_enabled":   cfg.TurnstileSecretName != "",
		"preregistration_url": cfg.PreRegistrationURL,
	}).Info("Successfully loaded application configuration")

	return cfg, awsCfg, nil
}

func RetrieveSecret(ctx context.Context, secretName string, svc SecretsManagerAPI) (string, error) {
	input := &secretsmanager.GetSecretValueInput{
		SecretId:     aws.String(secretName),
		VersionStage: aws.String("AWSCURRENT"),
	}

	result, err := svc.GetSecretValue(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to retrieve secret: %w", err)
	}

	if result.SecretString == nil {
		return "", fmt.Errorf("secret string is nil")
	}

	return *result.SecretString, nil
}
