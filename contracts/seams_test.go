//go:build unit

package contracts

import (
	"bytes"
	"context"
	"testing"

	"github.com/rianquinn/bsl-sub002/contracts/log"
)

// exitSignal is the sentinel the stubbed exit seam panics with so
// captureViolation can observe the termination without ending the test
// process.
type exitSignal struct {
	status int
}

// captureViolation runs fn with the stderr and exit seams swapped out.
// It reports whether fn attempted to terminate the process, the exit
// status it requested, and everything written to the diagnostic stream.
func captureViolation(t *testing.T, fn func()) (exited bool, status int, output string) {
	t.Helper()

	var buf bytes.Buffer

	prevStderr, prevExit := stderr, exit
	stderr = &buf
	exit = func(code int) { panic(exitSignal{status: code}) }

	defer func() {
		stderr, exit = prevStderr, prevExit
	}()

	defer func() {
		output = buf.String()

		if r := recover(); r != nil {
			signal, ok := r.(exitSignal)
			if !ok {
				panic(r)
			}

			exited = true
			status = signal.status
		}
	}()

	fn()

	return exited, status, buf.String()
}

// testLogger records every event it receives.
type testLogger struct {
	messages []string
	fields   [][]log.Field
}

func (l *testLogger) Log(_ context.Context, _ log.Level, msg string, fields ...log.Field) {
	l.messages = append(l.messages, msg)
	l.fields = append(l.fields, fields)
}

//nolint:ireturn
func (l *testLogger) With(_ ...log.Field) log.Logger { return l }

//nolint:ireturn
func (l *testLogger) WithGroup(_ string) log.Logger { return l }

func (l *testLogger) Enabled(_ log.Level) bool { return true }

func (l *testLogger) Sync(_ context.Context) error { return nil }
