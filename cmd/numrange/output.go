package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/maddsua/numrange/numrange"
)

type OutputFormat string

const (
	FormatLines   = OutputFormat("lines")
	FormatJSON    = OutputFormat("json")
	FormatCompact = OutputFormat("compact")
)

func ParseOutputFormat(val string) (OutputFormat, error) {
	switch format := OutputFormat(strings.ToLower(strings.TrimSpace(val))); format {
	case FormatLines, FormatJSON, FormatCompact:
		return format, nil
	default:
		return "", fmt.Errorf("unknown output format '%s'", val)
	}
}

type Result struct {
	Name   string `json:"name,omitempty"`
	Input  string `json:"input,omitempty"`
	Values []int  `json:"values"`

	cfg numrange.Config
}

func WriteResults(writer io.Writer, format OutputFormat, results []Result) error {

	switch format {

	case FormatJSON:
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(results)

	case FormatCompact:
		for _, item := range results {
			if _, err := fmt.Fprintln(writer, item.cfg.Format(item.Values)); err != nil {
				return err
			}
		}
		return nil

	default:
		for _, item := range results {
			for _, val := range item.Values {
				if _, err := io.WriteString(writer, strconv.Itoa(val)+"\n"); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
