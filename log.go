package apvd

import (
	"fmt"
	"io"
)

// LogCategory tags a Log entry, the same three-way split BuildContext
// uses for recast's progress/warning/error messages.
type LogCategory uint8

const (
	LogProgress LogCategory = iota
	LogWarning
	LogError
)

func (c LogCategory) String() string {
	switch c {
	case LogProgress:
		return "PROG"
	case LogWarning:
		return "WARN"
	case LogError:
		return "ERR"
	default:
		return "?"
	}
}

// LogEntry is one recorded message.
type LogEntry struct {
	Category LogCategory
	Message  string
}

// Log is an append-only build/training log, carried on a Model the way
// BuildContext carries recast's build log: a plain slice of messages,
// dumped on demand. No logging dependency is used, matching the corpus.
type Log struct {
	entries []LogEntry
}

// Progress appends a progress message.
func (l *Log) Progress(format string, args ...interface{}) {
	l.entries = append(l.entries, LogEntry{LogProgress, fmt.Sprintf(format, args...)})
}

// Warning appends a warning message.
func (l *Log) Warning(format string, args ...interface{}) {
	l.entries = append(l.entries, LogEntry{LogWarning, fmt.Sprintf(format, args...)})
}

// Error appends an error message.
func (l *Log) Error(format string, args ...interface{}) {
	l.entries = append(l.entries, LogEntry{LogError, fmt.Sprintf(format, args...)})
}

// Entries returns every recorded message, in order.
func (l *Log) Entries() []LogEntry { return l.entries }

// Dump writes every recorded message to w, one per line.
func (l *Log) Dump(w io.Writer) {
	for _, e := range l.entries {
		fmt.Fprintf(w, "%s %s\n", e.Category, e.Message)
	}
}
