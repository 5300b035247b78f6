package bugcrowd

import (
	"testing"
)

func TestLoadCredentials_Success(t *testing.T) {
	t.Setenv(EnvUsername, "hunter")
	t.Setenv(EnvPassword, "s3cret")

	creds, err := LoadCredentials()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := creds.AuthorizationValue(); got != "Token hunter:s3cret" {
		t.Errorf("unexpected authorization value: %s", got)
	}
}

func TestLoadCredentials_MissingUsername(t *testing.T) {
	t.Setenv(EnvUsername, "")
	t.Setenv(EnvPassword, "s3cret")

	_, err := LoadCredentials()
	if err == nil {
		t.Fatal("expected error for missing username")
	}
}

func TestLoadCredentials_MissingPassword(t *testing.T) {
	t.Setenv(EnvUsername, "hunter")
	t.Setenv(EnvPassword, "")

	_, err := LoadCredentials()
	if err == nil {
		t.Fatal("expected error for missing password")
	}
}

func TestLoadCredentials_BothMissing(t *testing.T) {
	t.Setenv(EnvUsername, "")
	t.Setenv(EnvPassword, "")

	_, err := LoadCredentials()
	if err == nil {
		t.Fatal("expected error for missing credentials")
	}
}

func TestLoadCredentials_WhitespaceOnlyRejected(t *testing.T) {
	t.Setenv(EnvUsername, "   ")
	t.Setenv(EnvPassword, "s3cret")

	_, err := LoadCredentials()
	if err == nil {
		t.Fatal("expected error for whitespace-only username")
	}
}
