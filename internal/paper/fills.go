package paper

import "sync"

// FillRecorder captures executed fills for later inspection.
type FillRecorder interface {
	Record(Fill)
}

// FillLog stores fills in memory, doubling as the dashboard's trade markers.
type FillLog struct {
	mu    sync.Mutex
	fills []Fill
}

// NewFillLog creates an empty log optionally pre-sizing storage.
func NewFillLog(capacity int) *FillLog {
	if capacity < 0 {
		capacity = 0
	}
	return &FillLog{fills: make([]Fill, 0, capacity)}
}

// Record appends a fill to the log.
func (l *FillLog) Record(fill Fill) {
	l.mu.Lock()
	l.fills = append(l.fills, fill)
	l.mu.Unlock()
}

// Snapshot returns a copy of the recorded fills.
func (l *FillLog) Snapshot() []Fill {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Fill, len(l.fills))
	copy(out, l.fills)
	return out
}

// Reset clears all stored fills.
func (l *FillLog) Reset() {
	l.mu.Lock()
	l.fills = l.fills[:0]
	l.mu.Unlock()
}
