package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/maddsua/numrange/numrange"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Options ParserConfig      `yaml:"parser" json:"parser"`
	Sets    map[string]string `yaml:"sets" json:"sets"`

	parser numrange.Config
	values map[string][]int
}

func (this *Config) Validate() error {

	parser, err := this.Options.Build()
	if err != nil {
		return fmt.Errorf("parser: %w", err)
	}

	values := map[string][]int{}

	for _, name := range this.Names() {

		expr := this.Sets[name]
		LoadEnvValue(&expr)

		parsed, err := parser.Parse(expr)
		if err != nil {
			return fmt.Errorf("sets: %s: %w", name, err)
		}

		values[name] = parsed
	}

	this.parser = parser
	this.values = values

	return nil
}

// Parser returns the parser config built by Validate
func (this *Config) Parser() numrange.Config {
	return this.parser
}

func (this *Config) Names() []string {

	names := make([]string, 0, len(this.Sets))
	for key := range this.Sets {
		names = append(names, key)
	}

	slices.Sort(names)
	return names
}

func (this *Config) Resolve(name string) ([]int, bool) {
	values, has := this.values[name]
	return values, has
}

type ParserConfig struct {
	Separator     *Sign `yaml:"separator" json:"separator"`
	RangeSign     *Sign `yaml:"range_sign" json:"range_sign"`
	Sorted        bool  `yaml:"sorted" json:"sorted"`
	TolerateEmpty bool  `yaml:"tolerate_empty" json:"tolerate_empty"`
	Limit         *int  `yaml:"limit" json:"limit"`
}

func (this *ParserConfig) Build() (numrange.Config, error) {

	builder := numrange.NewBuilder().
		Sorted(this.Sorted).
		TolerateEmpty(this.TolerateEmpty)

	if this.Separator != nil {
		builder.SeparatorSign(rune(*this.Separator))
	}

	if this.RangeSign != nil {
		builder.RangeSign(rune(*this.RangeSign))
	}

	if this.Limit != nil {
		builder.Limit(*this.Limit)
	}

	return builder.Build()
}

func LoadConfigFile(path string) (*Config, error) {

	file, err := os.OpenFile(path, os.O_RDONLY, os.ModePerm)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %s", err.Error())
	}

	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to get config file info: %s", err.Error())
	}

	if !info.Mode().IsRegular() {
		return nil, errors.New("failed to read config file: config file must be a regular file")
	}

	var cfg Config

	if strings.HasSuffix(path, ".yml") || strings.HasSuffix(path, ".yaml") {
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config file: %s", err.Error())
		}
	} else if strings.HasSuffix(path, ".json") {
		if err := json.NewDecoder(file).Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config file: %s", err.Error())
		}
	} else {
		return nil, errors.New("unsupported config file format")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
