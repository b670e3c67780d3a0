package util

import (
	"os"
	"strings"
)

// GetEnvironmentVariables returns the environment variables matching the
// prefix, keyed by full name. An empty value is kept distinct from an unset
// variable (absent from the map).
func GetEnvironmentVariables(prefix string) map[string]string {
	environmentVariables := map[string]string{}

	for _, variable := range os.Environ() {
		pair := strings.SplitN(variable, "=", 2)

		if strings.HasPrefix(pair[0], prefix) {
			environmentVariables[pair[0]] = pair[1]
		}
	}

	return environmentVariables
}
