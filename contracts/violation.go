package contracts

import (
	"context"
	"fmt"
	"io"
	"os"
	goruntime "runtime"
	"runtime/debug"
	"strings"
	"sync"

	constant "github.com/rianquinn/bsl-sub002/contracts/constants"
	"github.com/rianquinn/bsl-sub002/contracts/log"
)

// defaultViolationMessage is used when a check supplies no message of its own.
const defaultViolationMessage = "contract condition evaluated to false"

// violationCallDepth is the number of frames between runtime.Caller inside
// violationLocation and the code that invoked the failed check:
// violationLocation <- violate <- check <- exported wrapper <- caller.
const violationCallDepth = 4

// Indirections for tests. Production code never reassigns these.
var (
	stderr io.Writer = os.Stderr
	exit             = os.Exit
)

var (
	violationLogger   log.Logger
	violationLoggerMu sync.RWMutex
)

// SetViolationLogger configures an optional structured sink that receives a
// copy of every violation diagnostic (with kind, code, and location fields)
// before the process terminates. The fixed stderr line is always written
// regardless of this setting. Pass nil to remove the sink.
func SetViolationLogger(logger log.Logger) {
	violationLoggerMu.Lock()
	defer violationLoggerMu.Unlock()

	violationLogger = logger
}

func getViolationLogger() log.Logger {
	violationLoggerMu.RLock()
	defer violationLoggerMu.RUnlock()

	return violationLogger
}

// violate is the terminal sink for every failed check. It emits exactly one
// fatal diagnostic line on stderr, forwards the violation to the optional
// logger and metrics sinks, and terminates the process. It never returns.
func violate(kind Kind, msgAndArgs []any) {
	code, msg := violationMessage(kind, msgAndArgs)
	location := violationLocation()

	line := formatViolation(kind, code, msg, location)
	fmt.Fprintln(stderr, line)

	logViolation(kind, code, line, location)
	recordViolationMetric(context.Background(), kind, code)

	exit(constant.ViolationExitStatus)
}

// formatViolation renders the fixed diagnostic format:
// FATAL ERROR: <kind label> violation [<code>]: <message> at <file:line>.
func formatViolation(kind Kind, code Code, msg, location string) string {
	line := fmt.Sprintf("%s: %s violation [%d]: %s", constant.FatalPrefix, kind.Label(), code, msg)
	if location != "" {
		line += " at " + location
	}

	return line
}

// violationMessage resolves the diagnostic code and message from the
// variadic check arguments. A leading Code value overrides the kind's
// default code; a leading string with further arguments is treated as a
// Printf format.
func violationMessage(kind Kind, msgAndArgs []any) (Code, string) {
	code := kind.Code()

	if len(msgAndArgs) > 0 {
		if override, ok := msgAndArgs[0].(Code); ok {
			code = override
			msgAndArgs = msgAndArgs[1:]
		}
	}

	switch len(msgAndArgs) {
	case 0:
		return code, defaultViolationMessage
	case 1:
		return code, fmt.Sprint(msgAndArgs[0])
	default:
		if format, ok := msgAndArgs[0].(string); ok {
			return code, fmt.Sprintf(format, msgAndArgs[1:]...)
		}

		return code, fmt.Sprint(msgAndArgs...)
	}
}

// violationLocation reports the file:line of the failed check's call site,
// or an empty string if the stack could not be resolved.
func violationLocation() string {
	_, file, line, ok := goruntime.Caller(violationCallDepth)
	if !ok {
		return ""
	}

	return fmt.Sprintf("%s:%d", file, line)
}

func logViolation(kind Kind, code Code, line, location string) {
	logger := getViolationLogger()
	if logger == nil {
		return
	}

	fields := []log.Field{
		log.String("kind", kind.Label()),
		log.Int("code", int(code)),
	}

	if location != "" {
		fields = append(fields, log.String("location", location))
	}

	if shouldIncludeStack() {
		fields = append(fields, log.String("stack", string(debug.Stack())))
	}

	logger.Log(context.Background(), log.LevelError, line, fields...)
}

// shouldIncludeStack suppresses stack traces in the structured sink when
// the environment identifies itself as production.
func shouldIncludeStack() bool {
	env := strings.TrimSpace(os.Getenv("ENV"))
	goEnv := strings.TrimSpace(os.Getenv("GO_ENV"))

	return !strings.EqualFold(env, "production") && !strings.EqualFold(goEnv, "production")
}
