package utils

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var cardTextPolicy *bluemonday.Policy
var cardTextPolicyOnce sync.Once

// SanitizeCardText strips markup from user-entered face text.
func SanitizeCardText(text string) string {
	cardTextPolicyOnce.Do(func() {
		cardTextPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(cardTextPolicy.Sanitize(text))
}

// SanitizeHeaderFilename removes characters that can break headers.
func SanitizeHeaderFilename(name string) string {
	clean := strings.TrimSpace(name)
	if clean == "" {
		return "download"
	}
	clean = strings.ReplaceAll(clean, "\r", "")
	clean = strings.ReplaceAll(clean, "\n", "")
	clean = strings.ReplaceAll(clean, "\"", "")
	return clean
}
