package helper

import (
	"errors"
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func isValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

func ValidateRegisterInput(userName, email, password string) error {
	userName = strings.TrimSpace(userName)
	if len(userName) < 3 || len(userName) > 50 {
		return errors.New("user_name must be between 3 and 50 characters")
	}
	if !isValidEmail(strings.TrimSpace(email)) {
		return errors.New("email is not valid")
	}
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}

func ValidateLoginInput(userName, password string) error {
	if strings.TrimSpace(userName) == "" {
		return errors.New("user_name is required")
	}
	if password == "" {
		return errors.New("password is required")
	}
	return nil
}
