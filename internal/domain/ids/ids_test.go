package ids

import (
	"regexp"
	"strings"
	"testing"
	"time"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Acme Corp":           "acme-corp",
		"  José  Álvarez ":    "jose-alvarez",
		"O'Brien & Sons, Ltd": "o-brien-sons-ltd",
		"!!!":                 "",
		"":                    "",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Fatalf("Slugify(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestIDs(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_123)

	t.Run("proposal", func(t *testing.T) {
		id := NewProposalID("Acme Corp", now)
		if !regexp.MustCompile(`^acme-corp-1700000000123-[a-z0-9]{6}$`).MatchString(id) {
			t.Fatalf("unexpected proposal id %q", id)
		}
		if !strings.HasPrefix(NewProposalID("???", now), "proposal-") {
			t.Fatalf("expected fallback slug")
		}
	})

	t.Run("questionnaire", func(t *testing.T) {
		id := NewQuestionnaireID("Ana Lima")
		if !regexp.MustCompile(`^q-ana-lima-[a-z0-9]{8}$`).MatchString(id) {
			t.Fatalf("unexpected questionnaire id %q", id)
		}
	})

	t.Run("portal", func(t *testing.T) {
		id := NewPortalID("Ana Lima", "ana.lima@example.com")
		if !regexp.MustCompile(`^ana-lima-ana-lima-[a-z0-9]{6}$`).MatchString(id) {
			t.Fatalf("unexpected portal id %q", id)
		}
	})

	t.Run("random suffixes differ", func(t *testing.T) {
		if RandomSuffix(12) == RandomSuffix(12) {
			t.Fatalf("expected different suffixes")
		}
	})
}

func TestValid(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_123)
	for _, id := range []string{
		NewProposalID("Acme Corp", now),
		NewQuestionnaireID("Ana Lima"),
		NewPortalID("Ana", "ana@example.com"),
		NewManualClientID(now),
		NewTemplateID("Brief"),
		"isa-setup",
	} {
		if !Valid(id) {
			t.Fatalf("expected generated id %q to be valid", id)
		}
	}

	long := strings.Repeat("Very Long Company Name ", 20)
	for _, id := range []string{
		NewProposalID(long, now),
		NewQuestionnaireID(long),
		NewPortalID(long, strings.Repeat("x", 64)+"@example.com"),
		NewTemplateID(long),
	} {
		if !Valid(id) {
			t.Fatalf("expected id from a long name to stay valid, got %q (%d chars)", id, len(id))
		}
	}

	for _, id := range []string{"", "ids", "email", "email:ana@example.com", "Acme", "-lead", "a b", "a_b", strings.Repeat("a", 129)} {
		if Valid(id) {
			t.Fatalf("expected %q to be rejected", id)
		}
	}
}
