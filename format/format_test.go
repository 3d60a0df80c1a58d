package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Format
		err  bool
	}{
		{"y", YAMLFormat, false},
		{"yaml", YAMLFormat, false},
		{"j", JSONFormat, false},
		{"json", JSONFormat, false},
		{"report", ReportFormat, false},
		{"toml", 0, true},
		{"", 0, true},
	} {
		got, err := ParseFormat(tc.in)
		if tc.err {
			if !errors.Is(err, ErrBadFormat) {
				t.Errorf("ParseFormat(%q) error = %v", tc.in, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("ParseFormat(%q) = %v, %v", tc.in, got, err)
		}
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, f := range AllFormats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var g Format
		if err := g.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if g != f {
			t.Errorf("%s round tripped to %s", f, g)
		}
	}
	if got := Format(42).String(); got == "" {
		t.Errorf("bad format has empty String")
	}
}

func TestSuffix(t *testing.T) {
	for _, f := range AllFormats() {
		if !f.IsInput() {
			continue
		}
		g, ok := FromSuffix(f.Suffix())
		if !ok || g != f {
			t.Errorf("FromSuffix(%q) = %v, %t", f.Suffix(), g, ok)
		}
	}
	if f, ok := FromSuffix(".yml"); !ok || !f.IsYAML() {
		t.Errorf(".yml not yaml")
	}
	if _, ok := FromSuffix(".txt"); ok {
		t.Errorf(".txt is not an input format")
	}
}
