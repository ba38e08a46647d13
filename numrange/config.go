package numrange

import (
	"unicode"
	"unicode/utf8"
)

const (
	DefaultSeparator = ','
	DefaultRangeSign = '-'
	DefaultLimit     = 100_000
)

// Config holds the signs used to split and expand an expression.
// It's a plain value: copy it freely and share it between goroutines.
// The zero value is equivalent to DefaultConfig().
type Config struct {
	separator rune
	rangeSign rune
	limit     int
	sorted    bool
	skipEmpty bool
	built     bool
}

func DefaultConfig() Config {
	return Config{
		separator: DefaultSeparator,
		rangeSign: DefaultRangeSign,
		limit:     DefaultLimit,
		built:     true,
	}
}

// NewConfig validates the signs and returns a config with the default limit
func NewConfig(separator, rangeSign rune) (Config, error) {
	return NewBuilder().SeparatorSign(separator).RangeSign(rangeSign).Build()
}

func (this Config) normalized() Config {
	if !this.built {
		return DefaultConfig()
	}
	return this
}

func (this Config) Separator() rune {
	return this.normalized().separator
}

func (this Config) RangeSign() rune {
	return this.normalized().rangeSign
}

// Limit is the max amount of values an expression may produce. Zero means unlimited.
func (this Config) Limit() int {
	return this.normalized().limit
}

func (this Config) Sorted() bool {
	return this.normalized().sorted
}

func (this Config) TolerateEmpty() bool {
	return this.normalized().skipEmpty
}

func (this Config) Parse(input string) ([]int, error) {
	return Parse(input, this)
}

type Builder struct {
	separator rune
	rangeSign rune
	limit     int
	sorted    bool
	skipEmpty bool
}

func NewBuilder() *Builder {
	return &Builder{
		separator: DefaultSeparator,
		rangeSign: DefaultRangeSign,
		limit:     DefaultLimit,
	}
}

func (this *Builder) SeparatorSign(sign rune) *Builder {
	this.separator = sign
	return this
}

func (this *Builder) RangeSign(sign rune) *Builder {
	this.rangeSign = sign
	return this
}

// Limit caps the number of values produced by a single expression, duplicates included.
// Pass zero or a negative value to disable the cap.
func (this *Builder) Limit(limit int) *Builder {
	if limit < 0 {
		limit = 0
	}
	this.limit = limit
	return this
}

// Sorted makes Parse return values in ascending order instead of the order of first appearance
func (this *Builder) Sorted(sorted bool) *Builder {
	this.sorted = sorted
	return this
}

// TolerateEmpty makes Parse skip blank tokens such as the middle one in "1,,2" instead of failing
func (this *Builder) TolerateEmpty(tolerate bool) *Builder {
	this.skipEmpty = tolerate
	return this
}

func (this *Builder) Build() (Config, error) {

	if reason := checkSign("separator", this.separator); reason != "" {
		return Config{}, this.configError(reason)
	}

	if reason := checkSign("range sign", this.rangeSign); reason != "" {
		return Config{}, this.configError(reason)
	}

	if this.separator == this.rangeSign {
		return Config{}, this.configError("separator and range signs must be different")
	}

	return Config{
		separator: this.separator,
		rangeSign: this.rangeSign,
		limit:     this.limit,
		sorted:    this.sorted,
		skipEmpty: this.skipEmpty,
		built:     true,
	}, nil
}

func (this *Builder) configError(reason string) *ConfigError {
	return &ConfigError{
		Separator: this.separator,
		RangeSign: this.rangeSign,
		Reason:    reason,
	}
}

func checkSign(name string, sign rune) string {

	switch {
	case !utf8.ValidRune(sign):
		return name + " must be a valid character"
	case sign >= '0' && sign <= '9':
		return name + " must not be a digit"
	case unicode.IsSpace(sign):
		return name + " must not be whitespace"
	}

	return ""
}
