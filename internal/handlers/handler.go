package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Xiorelia/waitlist-service/internal/messages"
	"github.com/Xiorelia/waitlist-service/internal/models"
	"github.com/Xiorelia/waitlist-service/internal/waitlist"
	"github.com/sirupsen/logrus"
)

// SignupService is satisfied by *waitlist.Service.
type SignupService interface {
	ProcessSignup(ctx context.Context, req models.SignupRequest) (waitlist.Outcome, error)
}

// Handler adapts the signup service to the transport layer. The same status
// and body mapping backs both the Lambda and the plain HTTP entrypoints.
type Handler struct {
	svc SignupService
}

func NewHandler(svc SignupService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) process(ctx context.Context, body []byte) (int, interface{}) {
	var req models.SignupRequest
	if err := json.Unmarshal(body, &req); err != nil {
		logrus.WithError(err).Warn("Failed to parse signup request body")
		return http.StatusBadRequest, models.SignupFailure{Error: "invalid request payload"}
	}

	outcome, err := h.svc.ProcessSignup(ctx, req)
	if err == nil {
		loc := messages.ParseLocale(req.Lang)
		return http.StatusOK, models.SignupSuccess{
			Success: true,
			Message: messages.Lookup(loc, messages.KeySignupConfirmed),
		}
	}

	var deliveryErr *waitlist.DeliveryError
	switch {
	case errors.Is(err, waitlist.ErrValidation):
		return http.StatusBadRequest, models.SignupFailure{Error: err.Error()}
	case errors.Is(err, waitlist.ErrTokenRejected):
		return http.StatusBadRequest, models.SignupFailure{Error: "security verification failed, please try again"}
	case errors.Is(err, waitlist.ErrVerifierUnavailable):
		logrus.WithError(err).WithField("signup_id", outcome.SignupID).Error("Challenge token verification unavailable")
		return http.StatusInternalServerError, models.SignupFailure{
			Error:     "internal error: failed to verify challenge token",
			AdminSent: boolPtr(false),
			UserSent:  boolPtr(false),
		}
	case errors.As(err, &deliveryErr):
		logrus.WithError(err).WithFields(logrus.Fields{
			"signup_id":  outcome.SignupID,
			"admin_sent": deliveryErr.AdminSent,
			"user_sent":  deliveryErr.UserSent,
		}).Error("Email delivery failed")
		return http.StatusInternalServerError, models.SignupFailure{
			Error:     "internal error: failed to deliver emails",
			AdminSent: boolPtr(deliveryErr.AdminSent),
			UserSent:  boolPtr(deliveryErr.UserSent),
		}
	default:
		logrus.WithError(err).WithField("signup_id", outcome.SignupID).Error("Signup processing failed")
		return http.StatusInternalServerError, models.SignupFailure{Error: "internal server error"}
	}
}

func boolPtr(b bool) *bool { return &b }
