// Package bugcrowd provides the authenticated HTTP bridge to the Bugcrowd REST API.
package bugcrowd

import (
	"fmt"
	"os"
	"strings"
)

// Environment variables supplying the API credentials.
const (
	EnvUsername = "BUGCROWD_API_USERNAME"
	EnvPassword = "BUGCROWD_API_PASSWORD"
)

// Credentials holds the Bugcrowd API username and password.
// Immutable after process start.
type Credentials struct {
	username string
	password string
}

// LoadCredentials reads credentials from the process environment.
// Missing or empty values are a startup error — the gateway must not
// serve tools with broken authentication.
func LoadCredentials() (*Credentials, error) {
	username := strings.TrimSpace(os.Getenv(EnvUsername))
	password := strings.TrimSpace(os.Getenv(EnvPassword))

	var missing []string
	if username == "" {
		missing = append(missing, EnvUsername)
	}
	if password == "" {
		missing = append(missing, EnvPassword)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return &Credentials{username: username, password: password}, nil
}

// NewCredentials creates credentials directly. Used by tests; production
// code loads from the environment via LoadCredentials.
func NewCredentials(username, password string) *Credentials {
	return &Credentials{username: username, password: password}
}

// AuthorizationValue returns the Authorization header value used on every request.
func (c *Credentials) AuthorizationValue() string {
	return "Token " + c.username + ":" + c.password
}
