package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Xiorelia/waitlist-service/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	MissingFields = "name and email are required fields"
	InvalidEmail  = "invalid email format"
	NameTooLong   = "name cannot exceed 100 characters"

	maxNameLength = 100
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateAndFormatSignup trims the submitted fields and checks the required
// ones. It returns the normalized request, so callers always work with the
// cleaned-up values.
func ValidateAndFormatSignup(req models.SignupRequest) (models.SignupRequest, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Lang = strings.ToLower(strings.TrimSpace(req.Lang))

	if req.Name == "" || req.Email == "" {
		logrus.Warn("Validation failed: missing required fields")
		return models.SignupRequest{}, fmt.Errorf("%v", MissingFields)
	}

	if nameLength := utf8.RuneCountInString(req.Name); nameLength > maxNameLength {
		logrus.WithField("name_length", nameLength).Warn("Validation failed: name too long")
		return models.SignupRequest{}, fmt.Errorf("%v", NameTooLong)
	}

	if err := ValidateEmail(req.Email); err != nil {
		logrus.WithField("email", req.Email).Warnf("Validation failed: %v", err)
		return models.SignupRequest{}, err
	}

	return req, nil
}

func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("%v", InvalidEmail)
	}
	return nil
}
