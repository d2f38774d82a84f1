package log

import "sync"

// NoopLogger discards everything.
type NoopLogger struct{}

// NewNoopLogger creates a new no-op logger.
func NewNoopLogger() *NoopLogger {
	return &NoopLogger{}
}

func (NoopLogger) Debug(msg string, fields ...Field) {}
func (NoopLogger) Info(msg string, fields ...Field)  {}
func (NoopLogger) Warn(msg string, fields ...Field)  {}
func (NoopLogger) Error(msg string, fields ...Field) {}

// Entry is a log call captured by Recorder.
type Entry struct {
	Level  string
	Msg    string
	Fields []Field
}

// Recorder keeps every entry in memory so tests can assert on them.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Debug(msg string, fields ...Field) { r.add("debug", msg, fields) }
func (r *Recorder) Info(msg string, fields ...Field)  { r.add("info", msg, fields) }
func (r *Recorder) Warn(msg string, fields ...Field)  { r.add("warn", msg, fields) }
func (r *Recorder) Error(msg string, fields ...Field) { r.add("error", msg, fields) }

// Entries returns a copy of the captured entries.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

func (r *Recorder) add(level, msg string, fields []Field) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Level: level, Msg: msg, Fields: fields})
}
