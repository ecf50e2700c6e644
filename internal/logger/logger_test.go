package logger

import (
	"strings"
	"testing"

	"github.com/chronos-tachyon/hufftree"
)

var _ hufftree.Logger = New(nil, false)

func TestLogger(t *testing.T) {
	var buf strings.Builder
	l := New(&buf, false)
	l.Infof("count=%d", 3)
	l.Errorf("bad %s", "magic")

	out := buf.String()
	if !strings.Contains(out, "[INFO] count=3\n") {
		t.Errorf("missing info line in %q", out)
	}
	if !strings.Contains(out, "[ERROR] bad magic\n") {
		t.Errorf("missing error line in %q", out)
	}
}

func TestLogger_Quiet(t *testing.T) {
	var buf strings.Builder
	l := New(&buf, true)
	l.Infof("hidden")
	l.Errorf("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("quiet logger wrote an info line: %q", out)
	}
	if !strings.Contains(out, "[ERROR] shown") {
		t.Errorf("quiet logger dropped an error line: %q", out)
	}
}
