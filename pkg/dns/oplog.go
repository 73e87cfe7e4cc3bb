package dns

import (
	"fmt"
	"strings"
	"sync"
)

// OperationLog accumulates human-readable lines describing the provider
// operations performed during one convergence pass. Safe for concurrent use.
type OperationLog struct {
	mu    sync.Mutex
	lines []string
}

// NewOperationLog returns an empty operation log.
func NewOperationLog() *OperationLog {
	return &OperationLog{}
}

// Trace appends one line to the log.
func (l *OperationLog) Trace(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, line)
}

// Tracef appends one formatted line to the log.
func (l *OperationLog) Tracef(format string, args ...any) {
	l.Trace(fmt.Sprintf(format, args...))
}

// Len returns the number of lines logged so far.
func (l *OperationLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.lines)
}

// String returns the log lines joined with newlines.
func (l *OperationLog) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return strings.Join(l.lines, "\n")
}
