// Package ids builds the human-readable identifiers used in client links.
package ids

import (
	"crypto/rand"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

const (
	alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	// maxSlug keeps every generated id within the 128 characters Valid allows.
	maxSlug = 48
)

var keyIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{0,127}$`)

// reserved are index segments stored under the same prefix as entities
// (<prefix>:ids, <prefix>:email:<addr>).
var reserved = map[string]struct{}{"ids": {}, "email": {}}

// Valid reports whether id can be used as the last segment of a store key:
// lowercase letters, digits and dashes, and not a reserved index name.
func Valid(id string) bool {
	if !keyIDPattern.MatchString(id) {
		return false
	}
	_, taken := reserved[id]
	return !taken
}

// Slugify lower-cases s, strips accents and joins alphanumeric runs with "-".
func Slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range norm.NFD.String(strings.ToLower(s)) {
		switch {
		case unicode.Is(unicode.Mn, r):
			continue
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
			dash = false
		default:
			if b.Len() > 0 && !dash {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// RandomSuffix returns n characters from [a-z0-9].
func RandomSuffix(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand does not fail on supported platforms; fall back to a uuid.
		return strings.ReplaceAll(uuid.NewString(), "-", "")[:n]
	}
	for i, c := range buf {
		buf[i] = alphabet[int(c)%len(alphabet)]
	}
	return string(buf)
}

func idSlug(s string) string {
	slug := Slugify(s)
	if len(slug) > maxSlug {
		slug = strings.TrimRight(slug[:maxSlug], "-")
	}
	return slug
}

func slugOr(s, fallback string) string {
	if slug := idSlug(s); slug != "" {
		return slug
	}
	return fallback
}

// NewProposalID returns "<client-slug>-<unix-millis>-<6 random>".
func NewProposalID(clientName string, now time.Time) string {
	return fmt.Sprintf("%s-%d-%s", slugOr(clientName, "proposal"), now.UnixMilli(), RandomSuffix(6))
}

// NewQuestionnaireID returns "q-<client-slug>-<8 random>".
func NewQuestionnaireID(clientName string) string {
	return fmt.Sprintf("q-%s-%s", slugOr(clientName, "client"), RandomSuffix(8))
}

// NewPortalID returns "<name-slug>-<email-local-part-slug>-<6 random>".
func NewPortalID(clientName, email string) string {
	local := email
	if i := strings.IndexByte(email, '@'); i >= 0 {
		local = email[:i]
	}
	parts := []string{slugOr(clientName, "client")}
	if l := idSlug(local); l != "" {
		parts = append(parts, l)
	}
	parts = append(parts, RandomSuffix(6))
	return strings.Join(parts, "-")
}

// NewManualClientID returns "mc-<unix-millis>-<6 random>".
func NewManualClientID(now time.Time) string {
	return fmt.Sprintf("mc-%d-%s", now.UnixMilli(), RandomSuffix(6))
}

// NewContentID returns a random uuid.
func NewContentID() string {
	return uuid.NewString()
}

// NewTemplateID returns "custom-<name-slug>-<6 random>".
func NewTemplateID(name string) string {
	return fmt.Sprintf("custom-%s-%s", slugOr(name, "template"), RandomSuffix(6))
}
