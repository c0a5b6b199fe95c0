package utils

import "testing"

func TestNormalizeEmail(t *testing.T) {
	tests := map[string]string{
		"Ada@X.com ":        "ada@x.com",
		"  BOB@EXAMPLE.ORG": "bob@example.org",
		"\tmixed@Case.Io\n": "mixed@case.io",
		"":                  "",
	}

	for in, want := range tests {
		if got := NormalizeEmail(in); got != want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", in, got, want)
		}
	}
}
