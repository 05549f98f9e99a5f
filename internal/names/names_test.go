package names

import (
	"reflect"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"Jane Smith", "Jane Smith"},
		{"  Jane\n\tSmith  ", "Jane Smith"},
		{"a  b   c", "a b c"},
		{" Gold Sponsors\r\n", "Gold Sponsors"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		" lead and trail ",
		"tabs\t\tand\nnewlines\r\n",
		strings.Repeat(" x ", 50),
		" em space",
	}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestBlockFilter_Accept(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"mixed case name", "Jane Smith", true},
		{"ampersand and period", "Mr. & Mrs. Lee", true},
		{"exactly 8 chars", "Ann Leed", true},
		{"exactly 20 chars", "Abcdefghij Klmnopqrs", true},
		{"all upper", "PLATINUM SPONSORS", false},
		{"all lower", "thank you donors", false},
		{"contains digit", "Jane Smith 2", false},
		{"too short", "Ann Lee", false},
		{"too long", "Abcdefghij Klmnopqrstu", false},
		{"comma", "Smith, Jane", false},
		{"currency", "$100 Gold Tier", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BlockFilter.Accept(tt.in); got != tt.want {
				t.Errorf("Accept(%q): expected %v, got %v", tt.in, tt.want, got)
			}
		})
	}
}

func TestBlockFilter_Soundness(t *testing.T) {
	// Every mixed-case, digit-free string of the right shape is accepted;
	// its all-upper and all-lower variants are rejected.
	shapes := []string{
		"Jane Smith",
		"Dr. Alan Turing",
		"Smith & Wesson",
		"Ada Lovelace",
		"J. R. R. Tolkien",
	}
	for _, s := range shapes {
		if !BlockFilter.Accept(s) {
			t.Errorf("expected %q to be accepted", s)
		}
		if BlockFilter.Accept(strings.ToUpper(s)) {
			t.Errorf("expected upper-case %q to be rejected", strings.ToUpper(s))
		}
		if BlockFilter.Accept(strings.ToLower(s)) {
			t.Errorf("expected lower-case %q to be rejected", strings.ToLower(s))
		}
	}
}

func TestLooseFilter_Accept(t *testing.T) {
	if !LooseFilter.Accept("Al") {
		t.Error("expected two-letter mixed-case name to pass loose filter")
	}
	if !LooseFilter.Accept("Bartholomew Montgomery Fitzgerald") {
		t.Error("expected long name to pass unbounded loose filter")
	}
	if LooseFilter.Accept("A") {
		t.Error("expected single character to fail loose filter")
	}
	if LooseFilter.Accept("AL") {
		t.Error("expected all upper to fail loose filter")
	}
}

func TestFilter_Scan(t *testing.T) {
	got := BlockFilter.Scan("  Jane Smith,\n Robert Brown ")
	want := []string{"Jane Smith", "Robert Brown"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	if got := BlockFilter.Scan("TOM BAKER"); len(got) != 0 {
		t.Errorf("expected upper-case text to yield nothing, got %v", got)
	}
	if got := BlockFilter.Scan("Gift of $500 or more"); len(got) != 0 {
		t.Errorf("expected no names, got %v", got)
	}
}

func TestDedupe(t *testing.T) {
	in := []string{"b", "a", "b", "c", "a", "b"}
	once := Dedupe(in)
	want := []string{"b", "a", "c"}
	if !reflect.DeepEqual(once, want) {
		t.Fatalf("expected %v, got %v", want, once)
	}
	if twice := Dedupe(once); !reflect.DeepEqual(twice, once) {
		t.Errorf("dedupe not idempotent: %v then %v", once, twice)
	}
	if got := Dedupe([]string(nil)); len(got) != 0 {
		t.Errorf("expected empty output for nil input, got %v", got)
	}
}

func TestDedupe_CaseSensitive(t *testing.T) {
	got := Dedupe([]string{"Jane Smith", "jane smith", "Jane Smith"})
	if len(got) != 2 {
		t.Errorf("expected exact-match dedupe to keep 2 values, got %v", got)
	}
}

func TestFragments(t *testing.T) {
	got := Fragments("Jane Smith & Tom Baker, Acme Co | Ann Leeson / ")
	want := []string{"Jane Smith", "Tom Baker", "Acme Co", "Ann Leeson"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
