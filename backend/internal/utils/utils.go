package utils

import (
	"html"
	"strings"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer strips every HTML tag from user text.
type Sanitizer struct {
	policy *bluemonday.Policy
}

func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

// maxSanitizePasses bounds nested entity encodings such as "&amp;lt;b&amp;gt;".
const maxSanitizePasses = 8

// Sanitize returns plain text. Entities are decoded since responses are
// JSON, not HTML. Decoding repeats until the policy has nothing left to
// strip, so a tag sent as entities never survives.
func (s *Sanitizer) Sanitize(text string) string {
	for i := 0; i < maxSanitizePasses; i++ {
		next := html.UnescapeString(s.policy.Sanitize(text))
		if next == text {
			return strings.TrimSpace(text)
		}
		text = next
	}
	// not settled, keep it escaped
	return strings.TrimSpace(s.policy.Sanitize(text))
}

// IdGenerator produces ids such as "thread-<uuid>".
type IdGenerator struct{}

func (IdGenerator) New(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
