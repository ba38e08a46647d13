package config

import (
	"encoding/json"
	"errors"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Sign is a single character written as a one-rune string in config files
type Sign rune

func parseSign(val string) (Sign, error) {

	if !utf8.ValidString(val) || utf8.RuneCountInString(val) != 1 {
		return 0, errors.New("sign must be exactly one character")
	}

	sign, _ := utf8.DecodeRuneInString(val)
	return Sign(sign), nil
}

func (this *Sign) UnmarshalYAML(node *yaml.Node) error {

	var val string
	if err := node.Decode(&val); err != nil {
		return err
	}

	sign, err := parseSign(val)
	if err != nil {
		return err
	}

	*this = sign
	return nil
}

func (this *Sign) UnmarshalJSON(data []byte) error {

	var val string
	if err := json.Unmarshal(data, &val); err != nil {
		return err
	}

	sign, err := parseSign(val)
	if err != nil {
		return err
	}

	*this = sign
	return nil
}

func (this Sign) MarshalYAML() (any, error) {
	return string(rune(this)), nil
}

func (this Sign) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(rune(this)))
}
