// Package keyring provides access to the system keychain for storing API keys.
package keyring

import (
	"errors"
	"fmt"
	"os"

	"github.com/zalando/go-keyring"
)

const serviceName = "recap"

// APIKey represents a named API key stored in the keychain.
type APIKey string

const (
	// Anthropic is the keychain entry for the Anthropic API key.
	Anthropic APIKey = "anthropic-api-key"
	// OpenAI is the keychain entry for the OpenAI API key.
	OpenAI APIKey = "openai-api-key"
	// Gemini is the keychain entry for the Gemini API key.
	Gemini APIKey = "gemini-api-key"
	// Postmark is the keychain entry for the Postmark server token.
	Postmark APIKey = "postmark-server-token"
)

// ErrNotFound is returned by Resolve when neither the environment nor the
// keychain has a value.
var ErrNotFound = errors.New("api key not found")

// AllAPIKeys returns all known API key types for iteration.
func AllAPIKeys() []APIKey {
	return []APIKey{Anthropic, OpenAI, Gemini, Postmark}
}

// DisplayName returns a human-readable name for the API key.
func (k APIKey) DisplayName() string {
	switch k {
	case Anthropic:
		return "anthropic"
	case OpenAI:
		return "openai"
	case Gemini:
		return "gemini"
	case Postmark:
		return "postmark"
	default:
		return string(k)
	}
}

// EnvVar returns the environment variable that overrides the keychain entry.
func (k APIKey) EnvVar() string {
	switch k {
	case Anthropic:
		return "ANTHROPIC_API_KEY"
	case OpenAI:
		return "OPENAI_API_KEY"
	case Gemini:
		return "GEMINI_API_KEY"
	case Postmark:
		return "POSTMARK_SERVER_TOKEN"
	default:
		return ""
	}
}

// Get retrieves an API key value from the system keychain.
func Get(apiKey APIKey) (string, error) {
	value, err := keyring.Get(serviceName, string(apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to get %s from keychain: %w", apiKey.DisplayName(), err)
	}

	return value, nil
}

// Set stores an API key value in the system keychain.
func Set(apiKey APIKey, value string) error {
	if err := keyring.Set(serviceName, string(apiKey), value); err != nil {
		return fmt.Errorf("failed to set %s in keychain: %w", apiKey.DisplayName(), err)
	}

	return nil
}

// IsSet checks if an API key exists in the keychain.
func IsSet(apiKey APIKey) bool {
	_, err := keyring.Get(serviceName, string(apiKey))

	return err == nil
}

// Resolve returns explicit when non-empty, then the key's environment variable,
// then the keychain entry.
func Resolve(apiKey APIKey, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	if env := apiKey.EnvVar(); env != "" {
		if v := os.Getenv(env); v != "" {
			return v, nil
		}
	}

	if v, err := Get(apiKey); err == nil && v != "" {
		return v, nil
	}

	return "", fmt.Errorf("%w: set %s or run 'recap config set-key %s'",
		ErrNotFound, apiKey.EnvVar(), apiKey.DisplayName())
}

// APIKeyFromServiceName maps a service name (e.g., "openai") to an APIKey.
func APIKeyFromServiceName(name string) (APIKey, error) {
	for _, k := range AllAPIKeys() {
		if k.DisplayName() == name {
			return k, nil
		}
	}

	return "", fmt.Errorf("unknown service: %s", name)
}
