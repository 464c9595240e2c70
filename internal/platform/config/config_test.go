package config

import (
	"testing"
	"time"
)

func TestPrefixComposition(t *testing.T) {
	t.Setenv("SF_API_VERSION", "v61.0")

	c := New().Prefix("SF_")
	if got := c.MayString("API_VERSION", ""); got != "v61.0" {
		t.Fatalf("prefix lookup failed: %q", got)
	}
}

func TestMayDefaults(t *testing.T) {
	c := New().Prefix("VF_TEST_")

	if got := c.MayString("MISSING", "fallback"); got != "fallback" {
		t.Fatalf("MayString default: %q", got)
	}
	if got := c.MayInt("MISSING", 7); got != 7 {
		t.Fatalf("MayInt default: %d", got)
	}
	if got := c.MayBool("MISSING", true); got != true {
		t.Fatalf("MayBool default: %v", got)
	}
	if got := c.MayDuration("MISSING", 3*time.Second); got != 3*time.Second {
		t.Fatalf("MayDuration default: %v", got)
	}
}

func TestMayInvalidFallsBack(t *testing.T) {
	t.Setenv("VF_TEST_N", "not-a-number")
	t.Setenv("VF_TEST_D", "sideways")

	c := New().Prefix("VF_TEST_")
	if got := c.MayInt("N", 42); got != 42 {
		t.Fatalf("invalid int must fall back: %d", got)
	}
	if got := c.MayDuration("D", time.Minute); got != time.Minute {
		t.Fatalf("invalid duration must fall back: %v", got)
	}
}

func TestMayCSV(t *testing.T) {
	t.Setenv("VF_TEST_ORIGINS", "chrome-extension://abc, https://example.com ,")

	c := New().Prefix("VF_TEST_")
	got := c.MayCSV("ORIGINS", nil)
	if len(got) != 2 || got[0] != "chrome-extension://abc" || got[1] != "https://example.com" {
		t.Fatalf("unexpected csv: %v", got)
	}
}
