package validators

import "testing"

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"+39 333 123 4567", "393331234567"},
		{"(333) 123-4567", "3331234567"},
		{"333.123.4567", "3331234567"},
		{"abc", ""},
	}

	for _, tt := range cases {
		if got := NormalizePhone(tt.in); got != tt.want {
			t.Fatalf("NormalizePhone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsPhoneValid(t *testing.T) {
	cases := []struct {
		in    string
		valid bool
	}{
		{"+39 333 123 4567", true},
		{"12345678", true},
		{"1234567", false},
		{"1234567890123456", false},
		{"", false},
	}

	for _, tt := range cases {
		if got := IsPhoneValid(tt.in); got != tt.valid {
			t.Fatalf("IsPhoneValid(%q) = %v, want %v", tt.in, got, tt.valid)
		}
	}
}
