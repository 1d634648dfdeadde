package version

import "testing"

func TestNormalizeRelease(t *testing.T) {
	tests := map[string]string{
		"":              "unknown",
		"1.2":           "v1.2.0",
		"v0.4.1":        "v0.4.1",
		"v1.0.0+build7": "v1.0.0",
		"nightly":       "nightly",
	}
	for in, want := range tests {
		if got := normalizeRelease(in); got != want {
			t.Errorf("normalizeRelease(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGetRelease(t *testing.T) {
	if got := GetRelease(); got.Release == "" {
		t.Error("Release should never be empty")
	}
}
