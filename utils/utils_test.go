package utils

import "testing"

func TestGenerateID(t *testing.T) {
	id := GenerateID(IDLength)
	if len(id) != IDLength {
		t.Fatalf("expected %d characters, got %d", IDLength, len(id))
	}
	for _, c := range id {
		if c < '0' || c > '9' {
			t.Fatalf("unexpected character %q in id %q", c, id)
		}
	}
	if !ValidID(id) {
		t.Fatalf("generated id %q does not validate", id)
	}
}

func TestValidID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"valid", "1234567890123456789012", true},
		{"empty", "", false},
		{"too short", "12345", false},
		{"too long", "12345678901234567890123", false},
		{"letters", "12345678901234567890ab", false},
		{"injection", `{"$ne": null}`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidID(tt.id); got != tt.want {
				t.Fatalf("ValidID(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}
