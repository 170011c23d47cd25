package mylog

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
)

func init() {
	if os.Getenv("GOOGLE_CLOUD_PROJECT") == "" {
		New = newStandardLogger
	}
}

type standardLogger struct {
	sync.Mutex
	componentName string
	out           io.Writer
}

func newStandardLogger(componentName string) Logger {
	return NewWriterLogger(componentName, os.Stderr)
}

// NewWriterLogger writes plain text lines to out. Used on the command line and in tests.
func NewWriterLogger(componentName string, out io.Writer) Logger {
	return &standardLogger{
		componentName: componentName,
		out:           out,
	}
}

func (l *standardLogger) Log(c context.Context, traceLabel string, severity Severity, format string, a ...any) {
	l.Lock()
	defer l.Unlock()

	if traceLabel == "" {
		traceLabel = "-"
	}
	fmt.Fprintf(l.out, "%s - %s - %s - %s\n", l.componentName, traceLabel, string(severity), fmt.Sprintf(format, a...))
}
