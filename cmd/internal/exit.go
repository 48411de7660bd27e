package internal

import (
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	// Stderr is where Echo writes messages.
	Stderr io.Writer = os.Stderr
	exit             = os.Exit
)

// Fatal will Echo the message and os.Exit with code 1.
func Fatal(msg string, args ...any) {
	FatalCode(1, msg, args...)
}

// FatalCode will Echo the message and os.Exit with the given code.
func FatalCode(code int, msg string, args ...any) {
	Echo(msg, args...)
	exit(code)
}

// Echo will emit the given message without any logging formatting.
func Echo(msg string, args ...any) {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, _ = fmt.Fprintf(Stderr, msg, args...)
}
