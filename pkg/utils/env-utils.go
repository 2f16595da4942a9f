package utils

import (
	"regexp"
	"strings"
)

// GenerateEnvVarName generates a standardized environment variable name from a given string.
// It converts the input to uppercase and replaces any non-alphanumeric characters with underscores.
// Leading and trailing underscores are removed.
func GenerateEnvVarName(input string) string {
	// Convert to uppercase
	normalized := strings.ToUpper(input)

	// Replace any non-alphanumeric characters with underscores
	reg := regexp.MustCompile(`[^A-Z0-9]+`)
	normalized = reg.ReplaceAllString(normalized, "_")

	// Remove leading/trailing underscores
	normalized = strings.Trim(normalized, "_")

	return normalized
}

