// Package diag is the line-oriented diagnostic sink the core writes
// progress, best-so-far cost, and validation-failure messages to.
// Absence of a sink is valid: the default is a silent discard.
package diag

import "fmt"

// Sink accepts line-oriented diagnostic messages. Implementations must
// be safe to call from a single goroutine at a time per planning run;
// the core never calls a Sink concurrently from more than one optimiser
// worker (fan-in happens before Printf is called).
type Sink interface {
	Printf(format string, args ...any)
}

// Discard is the default Sink: it drops every message.
type Discard struct{}

func (Discard) Printf(string, ...any) {}

// orDiscard returns s if non-nil, or Discard{} otherwise, so call sites
// never need a nil check.
func orDiscard(s Sink) Sink {
	if s == nil {
		return Discard{}
	}
	return s
}

// OrDiscard is exported so other packages can normalise a possibly-nil
// Sink they were handed.
func OrDiscard(s Sink) Sink { return orDiscard(s) }

// Printer is a convenience Sink that formats each message with
// fmt.Sprintf and passes the resulting line to Write (e.g. a closure
// over fmt.Println or an io.Writer), mirroring the injected-callback
// idiom used for progress reporting elsewhere in this codebase.
type Printer struct {
	Write func(string)
}

func (p Printer) Printf(format string, args ...any) {
	if p.Write == nil {
		return
	}
	p.Write(fmt.Sprintf(format, args...))
}
