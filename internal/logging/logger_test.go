package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLine(t *testing.T) {
	fields := Fields{"opponent": 2}
	line := Line("info", "battle started", fields)

	var got map[string]interface{}
	if err := json.Unmarshal([]byte(line), &got); err != nil {
		t.Fatalf("Line() is not JSON: %v (%s)", err, line)
	}
	if got["level"] != "info" || got["msg"] != "battle started" {
		t.Errorf("Line() = %s, missing level or msg", line)
	}
	if got["opponent"] != float64(2) {
		t.Errorf("Line() opponent = %v, want 2", got["opponent"])
	}
	if _, ok := got["ts"]; !ok {
		t.Error("Line() missing ts")
	}
	if _, ok := fields["level"]; ok {
		t.Error("Line() mutated the caller's fields")
	}
}

func TestErrorIncludesErrorText(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	Error("layout failed", errors.New("boom"), nil)

	if !strings.Contains(buf.String(), `"error":"boom"`) {
		t.Errorf("Error() wrote %q, want error field", buf.String())
	}
	if !strings.Contains(buf.String(), `"level":"error"`) {
		t.Errorf("Error() wrote %q, want error level", buf.String())
	}
}

func TestOpen(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	path := filepath.Join(t.TempDir(), "game.log")
	closer, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	Info("hello", Fields{"tick": 1})
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(content), `"msg":"hello"`) {
		t.Errorf("log file = %q, want hello line", content)
	}

	if _, err := Open("-"); err != nil {
		t.Errorf("Open(-) error = %v", err)
	}
	if _, err := Open(filepath.Join(t.TempDir(), "missing", "dir", "x.log")); err == nil {
		t.Error("Open() into a missing directory should fail")
	}
}
