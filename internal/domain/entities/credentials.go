package entities

import (
	"encoding/base64"
	"fmt"
)

// Credentials authenticate against the Bitbucket REST API.
// The password is never printed.
type Credentials struct {
	username string
	password string
}

// NewCredentials validates and builds a Credentials value.
func NewCredentials(username, password string) (Credentials, error) {
	if username == "" {
		return Credentials{}, fmt.Errorf("%w: username is required", ErrInvalidSettings)
	}
	return Credentials{username: username, password: password}, nil
}

// Username returns the user the credentials belong to.
func (c Credentials) Username() string { return c.username }

// AuthorizationHeader returns the value for a basic-auth Authorization header.
func (c Credentials) AuthorizationHeader() string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(c.username+":"+c.password))
}

func (c Credentials) String() string {
	return fmt.Sprintf("Credentials{username: %q, password: <redacted>}", c.username)
}

// GoString keeps %#v from leaking the password.
func (c Credentials) GoString() string { return c.String() }
