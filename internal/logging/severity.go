package logging

import (
	"log/slog"
	"strings"
)

// Severity selects the log sink for a message id.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityInfo
	SeverityWarn
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarn:
		return "warn"
	case SeverityError:
		return "error"
	default:
		return "none"
	}
}

// ParseSeverity reads the severity from the first dot-separated segment of a
// message id. Anything other than info, warn or error yields SeverityNone.
func ParseSeverity(messageID string) Severity {
	prefix, _, _ := strings.Cut(messageID, ".")
	switch prefix {
	case "info":
		return SeverityInfo
	case "warn":
		return SeverityWarn
	case "error":
		return SeverityError
	default:
		return SeverityNone
	}
}

// Level maps s to a slog level. The bool is false for SeverityNone.
func (s Severity) Level() (slog.Level, bool) {
	switch s {
	case SeverityInfo:
		return slog.LevelInfo, true
	case SeverityWarn:
		return slog.LevelWarn, true
	case SeverityError:
		return slog.LevelError, true
	default:
		return 0, false
	}
}
