package errors

import (
	"fmt"
	"io"
	"os"
)

// LogHandler is a Handler that writes errors as single log lines.
type LogHandler struct {
	// Out receives the log output. Defaults to stderr.
	Out io.Writer
	// Verbose enables detailed output including stack traces.
	Verbose bool
}

func (h *LogHandler) out() io.Writer {
	if h.Out == nil {
		return os.Stderr
	}
	return h.Out
}

// HandleError logs an Error.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	w := h.out()
	if !h.Verbose {
		fmt.Fprintf(w, "[zeta error] %s: %v\n", err.Op, err.Err)
		return
	}
	fmt.Fprintf(w, "[zeta error] %s [%s]", err.Op, err.Kind)
	if err.Index >= 0 {
		fmt.Fprintf(w, " index=%d count=%d", err.Index, err.Count)
	}
	fmt.Fprintf(w, ": %v\n", err.Err)
	if err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	w := h.out()
	if err.Op != "" {
		fmt.Fprintf(w, "[zeta panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(w, "[zeta panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}
