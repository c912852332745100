package pipeline

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateULID_Format(t *testing.T) {
	id := NewJobID()
	if len(id) != 26 {
		t.Fatalf("expected 26 chars, got %d (%q)", len(id), id)
	}
	for _, c := range id {
		if !strings.ContainsRune(crockford, c) {
			t.Errorf("unexpected character %q in %q", c, id)
		}
	}
}

func TestGenerateULID_SortsByCreation(t *testing.T) {
	now := time.Now()
	a := generateULID(now)
	b := generateULID(now)
	c := generateULID(now.Add(time.Millisecond))
	if !(a < b && b < c) {
		t.Errorf("expected increasing ids, got %q %q %q", a, b, c)
	}
}

func TestEncode_KnownValues(t *testing.T) {
	var zero [16]byte
	if got := encode(zero); got != strings.Repeat("0", 26) {
		t.Errorf("expected all zeros, got %q", got)
	}

	var max [16]byte
	for i := range max {
		max[i] = 0xff
	}
	if got := encode(max); got != "7"+strings.Repeat("Z", 25) {
		t.Errorf("expected 7ZZZ..., got %q", got)
	}
}
