package languages

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultCode is the pivot locale: the provider answers in it, and chat
// replies are translated out of it when the session targets another
// language.
const DefaultCode = "en-IN"

// Closed mapping from display name to provider locale code. Lookups are
// case-sensitive exact matches; there is no dynamic registration.
var languageCodes = map[string]string{
	"English":  "en-IN",
	"Hindi":    "hi-IN",
	"Gujarati": "gu-IN",
	"Bengali":  "bn-IN",
	"Kannada":  "kn-IN",
	"Punjabi":  "pa-IN",
}

type UnsupportedLanguageError struct {
	Name      string
	Supported []string
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("unsupported language: %s. Available: %s", e.Name, strings.Join(e.Supported, ", "))
}

// Supported returns the display names in sorted order.
func Supported() []string {
	names := make([]string, 0, len(languageCodes))
	for name := range languageCodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Resolve(name string) (string, error) {
	code, ok := languageCodes[name]
	if !ok {
		return "", &UnsupportedLanguageError{Name: name, Supported: Supported()}
	}
	return code, nil
}
