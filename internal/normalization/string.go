package normalization

import (
	"strings"
)

func ParseInputString(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// ParseFreeformString trims without lowercasing, for fields where case carries
// meaning (goals, lesson titles).
func ParseFreeformString(input string) string {
	return strings.TrimSpace(input)
}
