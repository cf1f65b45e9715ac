package domain

import "testing"

func TestIsStrongPassword(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"Abc123!@#", true},
		{"aB1!xy", true},
		{"Ünï1a!", false},
		{"Zz9 zz", true},
		{"", false},
		{"x", false},
		{"aB1!x", false},
		{"abc123!@#", false},
		{"ABC123!@#", false},
		{"Abcdef!@#", false},
		{"Abc123456", false},
	}
	for _, tt := range tests {
		if got := IsStrongPassword(tt.password); got != tt.want {
			t.Errorf("IsStrongPassword(%q) = %v, want %v", tt.password, got, tt.want)
		}
	}
}
