// Package diag collects the non-fatal feedback produced while processing
// a document. Problems found during parsing or layout never abort an
// operation; they are gathered into a [Feedback] bundle and returned next
// to the operation's regular output as a [Pass]. Whether accumulated
// errors should block further processing is the caller's decision.
package diag

import (
	"fmt"

	"github.com/folio-lang/folio/span"
)

type Severity int

const (
	Warning Severity = iota
	Error
)

func (s Severity) String() string {
	switch s {
	case Warning:
		return "warning"
	case Error:
		return "error"
	}
	return "<unknown severity>"
}

func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Severity) UnmarshalText(b []byte) error {
	switch string(b) {
	case "warning":
		*s = Warning
	case "error":
		*s = Error
	default:
		return fmt.Errorf("unrecognized severity %q", b)
	}
	return nil
}

// Diag is one diagnostic message attached to a source span.
type Diag struct {
	Severity Severity  `yaml:"severity" json:"severity"`
	Message  string    `yaml:"message" json:"message"`
	Span     span.Span `yaml:"span" json:"span"`
}

func (d Diag) String() string {
	return fmt.Sprintf("%s: %s (%s)", d.Severity, d.Message, d.Span)
}

func Errorf(s span.Span, format string, args ...any) Diag {
	return Diag{Severity: Error, Message: fmt.Sprintf(format, args...), Span: s}
}

func Warnf(s span.Span, format string, args ...any) Diag {
	return Diag{Severity: Warning, Message: fmt.Sprintf(format, args...), Span: s}
}
