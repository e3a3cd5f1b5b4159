package domain

import (
	"crypto/subtle"
	"errors"
	"strings"
)

var ErrMissingCredentials = errors.New("admin username and password must be configured")

// Credentials holds the deployment's single admin account.
type Credentials struct {
	username string
	password string
}

// NewCredentials validates and stores the configured admin account.
func NewCredentials(username, password string) (Credentials, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return Credentials{}, ErrMissingCredentials
	}
	return Credentials{username: username, password: password}, nil
}

// Match compares caller-supplied credentials in constant time.
func (c Credentials) Match(username, password string) bool {
	u := subtle.ConstantTimeCompare([]byte(c.username), []byte(strings.TrimSpace(username)))
	p := subtle.ConstantTimeCompare([]byte(c.password), []byte(password))
	return u&p == 1
}
