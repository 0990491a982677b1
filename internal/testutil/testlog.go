// Package testlog records logx output for assertions in tests.
package testlog

import (
	"sync"

	"logistics-dispatch/internal/logx"
)

// Entry is one recorded call.
type Entry struct {
	Level  string
	Msg    string
	Fields []logx.Field
}

// Field returns the value of the last field named key.
func (e Entry) Field(key string) (any, bool) {
	for i := len(e.Fields) - 1; i >= 0; i-- {
		if e.Fields[i].Key == key {
			return e.Fields[i].Value, true
		}
	}
	return nil, false
}

// Recorder collects entries from every logger it hands out.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// New returns an empty Recorder.
func New() *Recorder { return &Recorder{} }

// Logger returns a logx.Logger writing into r.
func (r *Recorder) Logger() logx.Logger { return recLogger{r: r} }

// Entries returns a snapshot of what has been logged so far.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Entry(nil), r.entries...)
}

// Messages returns the messages logged at level, in order.
func (r *Recorder) Messages(level string) []string {
	var out []string
	for _, e := range r.Entries() {
		if e.Level == level {
			out = append(out, e.Msg)
		}
	}
	return out
}

func (r *Recorder) record(level, msg string, base, fields []logx.Field) {
	all := make([]logx.Field, 0, len(base)+len(fields))
	all = append(append(all, base...), fields...)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Level: level, Msg: msg, Fields: all})
}

type recLogger struct {
	r    *Recorder
	base []logx.Field
}

func (l recLogger) Debug(msg string, f ...logx.Field) { l.r.record("debug", msg, l.base, f) }
func (l recLogger) Info(msg string, f ...logx.Field)  { l.r.record("info", msg, l.base, f) }
func (l recLogger) Warn(msg string, f ...logx.Field)  { l.r.record("warn", msg, l.base, f) }
func (l recLogger) Error(msg string, f ...logx.Field) { l.r.record("error", msg, l.base, f) }

func (l recLogger) With(f ...logx.Field) logx.Logger {
	base := make([]logx.Field, 0, len(l.base)+len(f))
	return recLogger{r: l.r, base: append(append(base, l.base...), f...)}
}

func (recLogger) Sync() error { return nil }

var _ logx.Logger = recLogger{}
