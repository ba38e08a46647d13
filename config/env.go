package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// LoadEnvValue replaces a "$NAME" value with the contents of the NAME env variable
func LoadEnvValue(val *string) {

	if val == nil || *val == "" {
		return
	}

	key := strings.ToUpper(strings.TrimSpace(*val))
	if !strings.HasPrefix(key, "$") {
		return
	}

	slog.Debug(fmt.Sprintf("Config variable '%s' is loaded from env", key))

	*val = strings.TrimSpace(os.Getenv(strings.TrimPrefix(key, "$")))
}

// FindLocation returns the first of the candidate paths that is a regular file
func FindLocation(locations []string) (string, bool) {

	for _, val := range locations {
		if stat, err := os.Stat(val); err == nil && stat.Mode().IsRegular() {
			return val, true
		}
	}

	return "", false
}
