package debug

import (
	"bytes"
	"strings"
	"testing"
)

type named string

func (n named) String() string { return "<" + string(n) + ">" }

func TestLogf(t *testing.T) {
	buf := &bytes.Buffer{}
	old := Logger()
	SetLogger(NewLogger(buf))
	defer SetLogger(old)

	Logf("copied %s", named("t.a"))
	got := buf.String()
	if !strings.Contains(got, "level=DEBUG") || !strings.Contains(got, "copied <t.a>") {
		t.Errorf("got %q", got)
	}
	if strings.Contains(got, "time=") {
		t.Errorf("timestamp not dropped: %q", got)
	}
}

func TestInfoLevelDropped(t *testing.T) {
	buf := &bytes.Buffer{}
	NewLogger(buf).Info("loaded", "keys", 2)
	if got := buf.String(); got != "msg=loaded keys=2\n" {
		t.Errorf("got %q", got)
	}
}

func TestBoolEnv(t *testing.T) {
	for _, tc := range []struct {
		v    string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"no", false},
	} {
		t.Setenv("TREEDICT_DEBUG_TEST", tc.v)
		if got := boolEnv("TREEDICT_DEBUG_TEST"); got != tc.want {
			t.Errorf("boolEnv(%q) = %t", tc.v, got)
		}
	}
}
