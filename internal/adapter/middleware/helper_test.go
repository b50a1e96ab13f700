package middleware

import (
	"strings"
	"testing"
)

func TestValidIdempotencyKey(t *testing.T) {
	valid := []string{
		strings.Repeat("a", 32),
		"3f9a6a1b-3d54-4fbe-8b3a-6b3e8d6b2c88",
	}
	for _, k := range valid {
		if !validIdempotencyKey(k) {
			t.Fatalf("expected %q to be valid", k)
		}
	}

	invalid := []string{
		"",
		"short",
		strings.Repeat("g", 32),
		strings.Repeat("a", 31),
		strings.Repeat("a", 33),
	}
	for _, k := range invalid {
		if validIdempotencyKey(k) {
			t.Fatalf("expected %q to be invalid", k)
		}
	}
}

func TestBuildKey_ScopedPerMethodAndRoute(t *testing.T) {
	a := buildKey("POST", "/create-loan", "k")
	b := buildKey("POST", "/check-eligibility", "k")
	if a == b {
		t.Fatal("keys for different routes must differ")
	}
	if !strings.HasPrefix(a, "idemp:post:") {
		t.Fatalf("unexpected key format: %s", a)
	}
}
