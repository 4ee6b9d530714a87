// Package toast is the transient notification sink every screen reports
// through. Failures surface here and never crash the console.
package toast

import (
	"fmt"
	"io"
	"sync"
)

// Notifier receives user-facing transient messages.
type Notifier interface {
	Successf(format string, args ...any)
	Errorf(format string, args ...any)
	Infof(format string, args ...any)
}

// Writer emits toasts as single lines on the given writer, typically stderr.
type Writer struct {
	Out io.Writer
}

func (w *Writer) Successf(format string, args ...any) {
	fmt.Fprintf(w.Out, "ok: "+format+"\n", args...)
}

func (w *Writer) Errorf(format string, args ...any) {
	fmt.Fprintf(w.Out, "error: "+format+"\n", args...)
}

func (w *Writer) Infof(format string, args ...any) {
	fmt.Fprintf(w.Out, "info: "+format+"\n", args...)
}

// Entry is one recorded toast.
type Entry struct {
	Level   string
	Message string
}

// Recorder captures toasts for assertions in tests.
type Recorder struct {
	mu      sync.Mutex
	Entries []Entry
}

func (r *Recorder) add(level, format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Entries = append(r.Entries, Entry{Level: level, Message: fmt.Sprintf(format, args...)})
}

func (r *Recorder) Successf(format string, args ...any) { r.add("success", format, args...) }
func (r *Recorder) Errorf(format string, args ...any)   { r.add("error", format, args...) }
func (r *Recorder) Infof(format string, args ...any)    { r.add("info", format, args...) }

// Last returns the most recent entry, or a zero Entry when none exist.
func (r *Recorder) Last() Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Entries) == 0 {
		return Entry{}
	}
	return r.Entries[len(r.Entries)-1]
}

// Nop discards everything.
type Nop struct{}

func (Nop) Successf(string, ...any) {}
func (Nop) Errorf(string, ...any)   {}
func (Nop) Infof(string, ...any)    {}
