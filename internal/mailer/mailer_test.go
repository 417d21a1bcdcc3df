package mailer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Xiorelia/waitlist-service/internal/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockEmailClient struct {
	mock.Mock
}

func (m *mockEmailClient) SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	args := m.Called(ctx, params)
	resp, _ := args.Get(0).(*resend.SendEmailResponse)
	return resp, args.Error(1)
}

type mockSecretsManagerClient struct {
	mock.Mock
}

func (m *mockSecretsManagerClient) GetSecretValue(ctx context.Context,
	input *secretsmanager.GetSecretValueInput, opts ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	args := m.Called(ctx, input)
	output, _ := args.Get(0).(*secretsmanager.GetSecretValueOutput)
	return output, args.Error(1)
}

var testSettings = Settings{
	FromAddress:        "Xiorelia <hola@xiorelia.com>",
	AdminEmail:         "team@xiorelia.com",
	PreRegistrationURL: "https://example.com/preregister",
}

func TestSendAdminNotification(t *testing.T) {
	ctx := context.Background()
	signup := models.SignupRequest{Name: "Ana García", Email: "ana@example.com"}
	submittedAt := time.Date(2025, time.March, 7, 14, 30, 0, 0, time.UTC)

	t.Run("Sends to the admin address with the submitter details", func(t *testing.T) {
		mockClient := new(mockEmailClient)
		var captured *resend.SendEmailRequest
		mockClient.On("SendWithContext", ctx, mock.AnythingOfType("*resend.SendEmailRequest")).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(*resend.SendEmailRequest)
			}).
			Return(&resend.SendEmailResponse{Id: "email-1"}, nil)

		m := New(mockClient, testSettings)
		id, err := m.SendAdminNotification(ctx, signup, "signup-123", submittedAt)

		require.NoError(t, err)
		assert.Equal(t, "email-1", id)
		require.NotNil(t, captured)
		assert.Equal(t, testSettings.FromAddress, captured.From)
		assert.Equal(t, []string{testSettings.AdminEmail}, captured.To)
		assert.Contains(t, captured.Subject, "Ana García")
		assert.Contains(t, captured.Html, "Ana García")
		assert.Contains(t, captured.Html, "ana@example.com")
		assert.Contains(t, captured.Html, "07/03/2025 14:30:00")
		assert.Contains(t, captured.Html, "signup-123")
		assert.Empty(t, captured.Attachments)
		mockClient.AssertExpectations(t)
	})

	t.Run("Escapes markup in the submitter name", func(t *testing.T) {
		mockClient := new(mockEmailClient)
		var captured *resend.SendEmailRequest
		mockClient.On("SendWithContext", ctx, mock.AnythingOfType("*resend.SendEmailRequest")).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(*resend.SendEmailRequest)
			}).
			Return(&resend.SendEmailResponse{Id: "email-1"}, nil)

		m := New(mockClient, testSettings)
		_, err := m.SendAdminNotification(ctx, models.SignupRequest{
			Name:  "<script>alert(1)</script>",
			Email: "ana@example.com",
		}, "signup-123", submittedAt)

		require.NoError(t, err)
		assert.NotContains(t, captured.Html, "<script>")
	})

	t.Run("Send failure is wrapped", func(t *testing.T) {
		mockClient := new(mockEmailClient)
		mockClient.On("SendWithContext", ctx, mock.AnythingOfType("*resend.SendEmailRequest")).
			Return(nil, errors.New("network error"))

		m := New(mockClient, testSettings)
		id, err := m.SendAdminNotification(ctx, signup, "signup-123", submittedAt)

		assert.Empty(t, id)
		assert.EqualError(t, err, "failed to send admin notification: network error")
	})
}

func TestSendWelcome(t *testing.T) {
	ctx := context.Background()
	signup := models.SignupRequest{Name: "Ana García", Email: "ana@example.com"}

	t.Run("Sends a personalized welcome with inline logo and CTA", func(t *testing.T) {
		mockClient := new(mockEmailClient)
		var captured *resend.SendEmailRequest
		mockClient.On("SendWithContext", ctx, mock.AnythingOfType("*resend.SendEmailRequest")).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(*resend.SendEmailRequest)
			}).
			Return(&resend.SendEmailResponse{Id: "email-2"}, nil)

		m := New(mockClient, testSettings)
		id, err := m.SendWelcome(ctx, signup, "signup-123")

		require.NoError(t, err)
		assert.Equal(t, "email-2", id)
		require.NotNil(t, captured)
		assert.Equal(t, []string{"ana@example.com"}, captured.To)
		assert.Contains(t, captured.Html, "Ana García")
		assert.Contains(t, captured.Html, testSettings.PreRegistrationURL)
		assert.Contains(t, captured.Html, "cid:"+logoContentID)

		require.Len(t, captured.Attachments, 1)
		attachment := captured.Attachments[0]
		assert.Equal(t, logoFilename, attachment.Filename)
		assert.Equal(t, "image/png", attachment.ContentType)
		assert.Equal(t, logoContentID, attachment.ContentId)
		assert.NotEmpty(t, attachment.Content)
	})

	t.Run("Subject follows the requested language", func(t *testing.T) {
		mockClient := new(mockEmailClient)
		var captured *resend.SendEmailRequest
		mockClient.On("SendWithContext", ctx, mock.AnythingOfType("*resend.SendEmailRequest")).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(*resend.SendEmailRequest)
			}).
			Return(&resend.SendEmailResponse{Id: "email-2"}, nil)

		m := New(mockClient, testSettings)
		_, err := m.SendWelcome(ctx, models.SignupRequest{
			Name:  "Ana",
			Email: "ana@example.com",
			Lang:  "en",
		}, "signup-123")

		require.NoError(t, err)
		assert.Equal(t, "Welcome to the Xiorelia waitlist!", captured.Subject)
	})

	t.Run("Defaults to Spanish", func(t *testing.T) {
		mockClient := new(mockEmailClient)
		var captured *resend.SendEmailRequest
		mockClient.On("SendWithContext", ctx, mock.AnythingOfType("*resend.SendEmailRequest")).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(*resend.SendEmailRequest)
			}).
			Return(&resend.SendEmailResponse{Id: "email-2"}, nil)

		m := New(mockClient, testSettings)
		_, err := m.SendWelcome(ctx, signup, "signup-123")

		require.NoError(t, err)
		assert.Equal(t, "¡Bienvenido a la lista de espera de Xiorelia!", captured.Subject)
	})

	t.Run("Send failure is wrapped", func(t *testing.T) {
		mockClient := new(mockEmailClient)
		mockClient.On("SendWithContext", ctx, mock.AnythingOfType("*resend.SendEmailRequest")).
			Return(nil, errors.New("network error"))

		m := New(mockClient, testSettings)
		id, err := m.SendWelcome(ctx, signup, "signup-123")

		assert.Empty(t, id)
		assert.EqualError(t, err, "failed to send welcome email: network error")
	})
}

func TestGetEmailCreds(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		secretName    string
		mockOutput    *secretsmanager.GetSecretValueOutput
		mockError     error
		expectedCreds models.EmailCreds
		expectedError string
	}{
		{
			name:       "Success",
			secretName: "prod/email-creds",
			mockOutput: &secretsmanager.GetSecretValueOutput{
				SecretString: aws.String(`{"RESEND_APIKEY": "test-key"}`),
			},
			expectedCreds: models.EmailCreds{APIKey: "test-key"},
		},
		{
			name:          "Missing secret name",
			secretName:    "",
			expectedError: "email service secret name is required",
		},
		{
			name:          "Secrets Manager error",
			secretName:    "prod/email-creds",
			mockError:     errors.New("access denied"),
			expectedError: "failed to retrieve email service credentials: failed to retrieve secret: access denied",
		},
		{
			name:       "Unmarshal error",
			secretName: "prod/email-creds",
			mockOutput: &secretsmanager.GetSecretValueOutput{
				SecretString: aws.String(`invalid: json`),
			},
			expectedError: "failed to unmarshal email credentials",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mockSvc := new(mockSecretsManagerClient)
			if test.secretName != "" {
				mockSvc.On("GetSecretValue", ctx, mock.MatchedBy(func(input *secretsmanager.GetSecretValueInput) bool {
					return input.SecretId != nil && *input.SecretId == test.secretName
				})).Return(test.mockOutput, test.mockError)
			}

			creds, err := GetEmailCreds(ctx, mockSvc, test.secretName)

			if test.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), test.expectedError)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, test.expectedCreds, creds)
			mockSvc.AssertExpectations(t)
		})
	}
}
