package pasetotoken

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidToken wraps every parse, signature and claim failure.
	ErrInvalidToken = errors.New("invalid token")
	errNotAccess    = errors.New("not an access token")
)

// ConfigError reports key material or manager settings that cannot work.
type ConfigError struct{ Msg string }

func (e ConfigError) Error() string { return "paseto config: " + e.Msg }

func configErr(format string, args ...any) error {
	return ConfigError{Msg: fmt.Sprintf(format, args...)}
}

func invalidToken(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidToken, err)
}
