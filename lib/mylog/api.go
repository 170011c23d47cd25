package mylog

import "context"

type Severity string

const (
	SeverityDebug Severity = "DEBUG"
	SeverityInfo  Severity = "INFO"
	SeverityWarn  Severity = "WARN"
	SeverityError Severity = "ERROR"
)

// New creates a logger for the named component. The implementation depends on the environment:
// structured json on Google Cloud, plain text elsewhere.
var New func(componentName string) Logger

type Logger interface {
	// Log writes a single line. The traceLabel groups lines that belong to the same entity,
	// typically the id of the checkout, product or cart being processed.
	Log(c context.Context, traceLabel string, severity Severity, format string, a ...any)
}
