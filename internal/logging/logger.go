// Package logging writes structured JSON log lines through the standard
// logger. The terminal belongs to the game screen, so callers point the
// standard logger at a file with Open before the screen starts.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"time"
)

// Fields are extra key/value pairs attached to a log line.
type Fields map[string]interface{}

// Open directs log output to path. An empty path or "-" discards output.
// The returned closer must be called on exit.
func Open(path string) (io.Closer, error) {
	log.SetFlags(0)
	if path == "" || path == "-" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), fmt.Errorf("open log file %s: %w", path, err)
	}
	log.SetOutput(f)
	return f, nil
}

// Line renders one JSON log line without writing it.
func Line(level, msg string, fields Fields) string {
	out := Fields{}
	for k, v := range fields {
		out[k] = v
	}
	out["level"] = level
	out["ts"] = time.Now().UTC().Format(time.RFC3339)
	out["msg"] = msg

	b, err := json.Marshal(out)
	if err != nil {
		return fmt.Sprintf("%s: %s (%v)", level, msg, fields)
	}
	return string(b)
}

// Info logs an informational message with optional fields.
func Info(msg string, fields Fields) {
	log.Println(Line("info", msg, fields))
}

// Error logs an error message and includes the error text in the fields.
func Error(msg string, err error, fields Fields) {
	log.Println(Line("error", msg, withError(fields, err)))
}

func withError(fields Fields, err error) Fields {
	out := Fields{}
	for k, v := range fields {
		out[k] = v
	}
	if err != nil {
		out["error"] = err.Error()
	}
	return out
}
