package morse

import (
	"strings"
	"testing"
)

func patternOf(t *testing.T, elements []Element, idx int) string {
	t.Helper()
	if idx >= len(elements) {
		t.Fatalf("expected at least %d elements, got %d", idx+1, len(elements))
	}
	el := elements[idx]
	if el.Break {
		t.Fatalf("element %d is a word boundary", idx)
	}
	out := make([]byte, len(el.Symbols))
	for i, sym := range el.Symbols {
		out[i] = byte(sym)
	}
	return string(out)
}

func TestEncodeBasicLetters(t *testing.T) {
	cases := []struct {
		in      string
		pattern string
	}{
		{"e", "."},
		{"t", "-"},
		{"a", ".-"},
		{"q", "--.-"},
		{"0", "-----"},
		{"9", "----."},
		{"?", "..--.."},
		{"@", ".--.-."},
	}
	for _, tc := range cases {
		elements := Encode(tc.in)
		if len(elements) != 1 {
			t.Fatalf("Encode(%q): expected 1 element, got %d", tc.in, len(elements))
		}
		if got := patternOf(t, elements, 0); got != tc.pattern {
			t.Errorf("Encode(%q) = %q, want %q", tc.in, got, tc.pattern)
		}
	}
}

func TestEncodeCaseInsensitive(t *testing.T) {
	for _, s := range []string{"a", "sos", "Pater Noster"} {
		lower := Encode(strings.ToLower(s))
		upper := Encode(strings.ToUpper(s))
		if len(lower) != len(upper) {
			t.Fatalf("Encode(%q): length differs between cases", s)
		}
		for i := range lower {
			if lower[i].Break != upper[i].Break {
				t.Fatalf("Encode(%q): element %d boundary mismatch", s, i)
			}
			if !lower[i].Break && patternOf(t, lower, i) != patternOf(t, upper, i) {
				t.Errorf("Encode(%q): element %d pattern mismatch", s, i)
			}
		}
	}
}

func TestEncodeFoldsAccents(t *testing.T) {
	cases := []struct {
		accented string
		base     string
	}{
		{"Á", "A"}, {"À", "A"}, {"Â", "A"}, {"Ą", "A"},
		{"É", "E"}, {"Ê", "E"}, {"Ě", "E"},
		{"Í", "I"}, {"Ï", "I"},
		{"Ó", "O"}, {"Ö", "O"}, {"Ő", "O"},
		{"Ú", "U"}, {"Ü", "U"}, {"Ų", "U"},
		{"á", "a"}, {"é", "e"},
	}
	for _, tc := range cases {
		got := Encode(tc.accented)
		want := Encode(tc.base)
		if len(got) != 1 || len(want) != 1 {
			t.Fatalf("Encode(%q): expected single element", tc.accented)
		}
		if patternOf(t, got, 0) != patternOf(t, want, 0) {
			t.Errorf("Encode(%q) != Encode(%q)", tc.accented, tc.base)
		}
	}
}

func TestEncodeLigatures(t *testing.T) {
	cases := []struct {
		in      string
		pattern string
	}{
		{"Æ", ".-.-"},
		{"æ", ".-.-"},
		{"Œ", "---."},
		{"œ", "---."},
	}
	for _, tc := range cases {
		elements := Encode(tc.in)
		if len(elements) != 1 {
			t.Fatalf("Encode(%q): expected 1 element, got %d", tc.in, len(elements))
		}
		if got := patternOf(t, elements, 0); got != tc.pattern {
			t.Errorf("Encode(%q) = %q, want %q", tc.in, got, tc.pattern)
		}
	}
}

func TestEncodeDropsUnknownRunes(t *testing.T) {
	elements := Encode("a☧b¶")
	if len(elements) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(elements))
	}
	if patternOf(t, elements, 0) != ".-" || patternOf(t, elements, 1) != "-..." {
		t.Errorf("unexpected surviving patterns: %v", elements)
	}
}

func TestEncodeSpaceIsWordBoundary(t *testing.T) {
	elements := Encode("a b")
	if len(elements) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(elements))
	}
	if elements[0].Break || !elements[1].Break || elements[2].Break {
		t.Fatalf("boundary flags wrong: %+v", elements)
	}
	if len(elements[1].Symbols) != 0 {
		t.Errorf("word boundary must carry no symbols, got %v", elements[1].Symbols)
	}
}

func TestEncodeIsPure(t *testing.T) {
	first := Encode("Quis ut Deus?")
	second := Encode("Quis ut Deus?")
	if len(first) != len(second) {
		t.Fatalf("repeated Encode differs in length")
	}
	for i := range first {
		if first[i].Break != second[i].Break || first[i].Rune != second[i].Rune {
			t.Fatalf("repeated Encode differs at %d", i)
		}
	}
}
