package phone

import "testing"

func TestNormalizeE164_ValidNumberIsFormatted(t *testing.T) {
	got := NormalizeE164("(212) 555-0123", "US")
	if got != "+12125550123" {
		t.Fatalf("expected +12125550123, got %q", got)
	}
}

func TestNormalizeE164_InternationalPrefixWinsOverRegion(t *testing.T) {
	got := NormalizeE164("+31 6 12345678", "US")
	if got != "+31612345678" {
		t.Fatalf("expected +31612345678, got %q", got)
	}
}

func TestNormalizeE164_FreeTextPassesThroughTrimmed(t *testing.T) {
	cases := map[string]string{
		"  ask for Bob  ": "ask for Bob",
		"":                "",
		"   ":             "",
	}

	for input, want := range cases {
		if got := NormalizeE164(input, "US"); got != want {
			t.Fatalf("input %q: expected %q, got %q", input, want, got)
		}
	}
}
