package user

import (
	"regexp"
	"strings"

	"estate-booking/internal/pkg/errs"
)

var (
	ErrInvalidEmail = errs.New("invalid email format")
	ErrInvalidRole  = errs.New("invalid role")
	ErrInvalidToken = errs.New("invalid notification token")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

const maxNotificationTokenLength = 4096

// NewNotificationToken validates a push token registered by a device.
func NewNotificationToken(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > maxNotificationTokenLength || strings.ContainsAny(s, " \t\n") {
		return "", ErrInvalidToken
	}
	return s, nil
}
