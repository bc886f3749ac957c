package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// TestLogger is a trace-level logger that records its JSON events in
// memory so tests can assert on them.
type TestLogger struct {
	*zerolog.Logger
	Buffer *bytes.Buffer
}

// NewTestLogger returns a logger writing to an in-memory buffer. The
// global level is widened to trace for the duration of the test so no
// event is filtered before it reaches the buffer.
func NewTestLogger(t testing.TB) *TestLogger {
	t.Helper()

	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.TraceLevel).With().Timestamp().Logger()

	return &TestLogger{Logger: &logger, Buffer: &buf}
}

// Output returns everything logged so far.
func (tl *TestLogger) Output() string {
	return tl.Buffer.String()
}

// Contains reports whether the output mentions substr.
func (tl *TestLogger) Contains(substr string) bool {
	return strings.Contains(tl.Output(), substr)
}

// Count returns the number of events logged so far.
func (tl *TestLogger) Count() int {
	out := strings.TrimSpace(tl.Output())
	if out == "" {
		return 0
	}
	return strings.Count(out, "\n") + 1
}

// Clear discards everything logged so far.
func (tl *TestLogger) Clear() {
	tl.Buffer.Reset()
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

// DisableLoggingForTest swaps the default logger for a nop one until
// the test ends.
func DisableLoggingForTest(t testing.TB) {
	t.Helper()

	// Default returns a pointer into package state; copy before the
	// swap so cleanup restores the entry value.
	original := *Default()
	SetDefault(zerolog.Nop())
	t.Cleanup(func() { SetDefault(original) })
}
