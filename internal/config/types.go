// internal/config/types.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidEnvironment is returned when an environment name is not recognized.
var ErrInvalidEnvironment = errors.New("invalid environment")

// Environment selects the build flavour the logger runs under.
// It is resolved once at startup and never re-read.
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

// ParseEnvironment parses an environment name. Accepts "dev" and "prod" as aliases.
func ParseEnvironment(s string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "development", "dev":
		return Development, nil
	case "production", "prod":
		return Production, nil
	}
	return "", fmt.Errorf("%w: %q (expected development or production)", ErrInvalidEnvironment, s)
}

// IsProduction reports whether e is the production environment.
func (e Environment) IsProduction() bool {
	return e == Production
}

// String implements fmt.Stringer.
func (e Environment) String() string {
	return string(e)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Environment) UnmarshalText(text []byte) error {
	parsed, err := ParseEnvironment(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (e Environment) MarshalText() ([]byte, error) {
	return []byte(e), nil
}

// MarshalJSON implements json.Marshaler.
func (e Environment) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(e))
}
