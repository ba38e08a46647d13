package numrange

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig  = errors.New("invalid config")
	ErrMalformedToken = errors.New("malformed token")
	ErrInvalidNumber  = errors.New("invalid number")
	ErrInvalidRange   = errors.New("invalid range")
	ErrLimitExceeded  = errors.New("too many numbers")
)

type ConfigError struct {
	Separator rune
	RangeSign rune
	Reason    string
}

func (this *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s (separator %q, range sign %q)", ErrInvalidConfig.Error(), this.Reason, this.Separator, this.RangeSign)
}

func (this *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// ParseError points at the token that stopped the parser.
// Err is one of the Err* sentinels.
type ParseError struct {
	Err error
	// Token is the offending substring: the trimmed token, a single range bound,
	// or the raw piece between separators when the token is blank
	Token string
	// Index is the zero-based position of the token among all tokens
	Index int
	// Offset is the byte offset of Token within the input
	Offset int
}

func (this *ParseError) Error() string {
	return fmt.Sprintf("%s: token %d at offset %d: %q", this.Err.Error(), this.Index, this.Offset, this.Token)
}

func (this *ParseError) Unwrap() error {
	return this.Err
}
