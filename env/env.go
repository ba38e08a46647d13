package env

import (
	"os"
	"strings"

	"github.com/maddsua/numrange/numrange"
)

type Value string

func Get(key string) Value {
	return Value(strings.TrimSpace(os.Getenv(strings.ToUpper(key))))
}

func (this Value) IsTrue() bool {
	return strings.ToLower(string(this)) == "true"
}

func (this Value) IsFalse() bool {
	return strings.ToLower(string(this)) == "false"
}

func (this Value) IsEmpty() bool {
	return this == ""
}

func (this Value) ToLower() string {
	return strings.ToLower(string(this))
}

// Ints expands the value as a range expression; an unset variable yields no values
func (this Value) Ints(cfg numrange.Config) ([]int, error) {
	return cfg.Parse(string(this))
}

// Rune returns the only character of the value
func (this Value) Rune() (rune, bool) {

	runes := []rune(string(this))
	if len(runes) != 1 {
		return 0, false
	}

	return runes[0], true
}
