package util

import (
	"regexp"
	"testing"
)

var hexPattern = regexp.MustCompile(`^[0-9a-f]+$`)

func TestShortID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		n    int
		want string
	}{
		{"default length", "abcdef12", 0, "abc"},
		{"custom length", "abcdef12", 5, "abcde"},
		{"shorter than n", "ab", 5, "ab"},
		{"negative uses default", "abcdef", -1, "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShortID(tt.id, tt.n); got != tt.want {
				t.Errorf("ShortID(%q, %d) = %q, want %q", tt.id, tt.n, got, tt.want)
			}
		})
	}
}

func TestGenerateID_LengthAndAlphabet(t *testing.T) {
	for _, n := range []int{1, 3, 8, 32} {
		id := GenerateID(n, nil)
		if len(id) != n {
			t.Errorf("GenerateID(%d) length = %d (%q)", n, len(id), id)
		}
		if !hexPattern.MatchString(id) {
			t.Errorf("GenerateID(%d) = %q, want lowercase hex", n, id)
		}
	}
	if id := GenerateID(0, nil); len(id) != DefaultIDLength {
		t.Errorf("GenerateID(0) length = %d, want %d", len(id), DefaultIDLength)
	}
	if id := GenerateID(100, nil); len(id) != MaxIDLength {
		t.Errorf("GenerateID(100) length = %d, want %d", len(id), MaxIDLength)
	}
}

func TestGenerateID_AvoidsExisting(t *testing.T) {
	taken := map[string]bool{}
	for i := 0; i < 200; i++ {
		id := GenerateID(2, func(id string) bool { return taken[id] })
		if taken[id] {
			t.Fatalf("GenerateID returned taken id %q", id)
		}
		taken[id] = true
	}
}

func TestGenerateID_GrowsWhenCrowded(t *testing.T) {
	// every single-character id is taken
	id := GenerateID(1, func(id string) bool { return len(id) == 1 })
	if len(id) < 2 {
		t.Errorf("expected id to grow past 1 character, got %q", id)
	}
}
