package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func newTestLogger(buf *bytes.Buffer, lvl Level, format Format) Logger {
	l := New(Options{Level: lvl, Format: format, App: "petclinic", Output: buf})
	l.(*stdLogger).sink.now = func() time.Time {
		return time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	}
	return l
}

func TestLogger_Text_SortedKeys(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, Info, FormatText)

	l.Info("owner saved", Fields{"owner_id": 7})

	got := strings.TrimSpace(buf.String())
	want := `app=petclinic level=info msg="owner saved" owner_id=7 ts=2025-12-22T10:00:00Z`
	if got != want {
		t.Fatalf("unexpected line\n got: %s\nwant: %s", got, want)
	}
}

func TestLogger_JSON_WithMergesFields(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, Debug, FormatJSON).With(Fields{"request_id": "r-1"})

	l.Warn("slow query", Fields{"ms": 120, "": "ignored"})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid json: %v (%s)", err, buf.String())
	}
	if entry["request_id"] != "r-1" || entry["level"] != "warn" || entry["app"] != "petclinic" {
		t.Fatalf("unexpected entry: %#v", entry)
	}
	if _, ok := entry[""]; ok {
		t.Fatalf("empty key should be dropped: %#v", entry)
	}
}

func TestLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, Warn, FormatText)

	l.Debug("debug", nil)
	l.Info("info", nil)
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}

	l.Error("boom", nil)
	if !strings.Contains(buf.String(), "level=error") {
		t.Fatalf("expected error line, got %q", buf.String())
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	cases := map[string]Level{"": Info, "DEBUG": Debug, "warning": Warn, "error": Error, "nope": Info}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
	if ParseFormat(" JSON ") != FormatJSON || ParseFormat("xml") != FormatText {
		t.Fatalf("unexpected ParseFormat result")
	}
}

func TestFromContext_DefaultsToNop(t *testing.T) {
	if _, ok := FromContext(context.Background()).(nop); !ok {
		t.Fatalf("expected nop logger")
	}

	var buf bytes.Buffer
	l := newTestLogger(&buf, Info, FormatText)
	ctx := WithContext(context.Background(), l)
	FromContext(ctx).Info("hi", nil)
	if buf.Len() == 0 {
		t.Fatalf("expected logger from context to write")
	}
}
