// Package ioadapter defines the external I/O collaborator contract the
// interpreter talks to, plus a queue-backed implementation used
// by the compile_and_run convenience entry point and by tests.
package ioadapter

import "github.com/papagiannakis/glossa/internal/errs"

// Adapter is the external I/O surface the Statement Executor drives for
// ΓΡΑΨΕ (write) and ΔΙΑΒΑΣΕ (read) statements.
type Adapter interface {
	// Write emits one output line; the adapter owns newline handling.
	Write(line string)
	// Read returns one input line, or an error if none is available.
	Read() (string, error)
}

// QueueIO is an Adapter backed by a finite, ordered list of scripted input
// lines; every Write call appends to an in-memory output log. This backs
// the compile_and_run entry point.
type QueueIO struct {
	inputs  []string
	pos     int
	Outputs []string
}

// NewQueueIO builds a QueueIO that will hand out inputs, in order, to
// successive Read calls.
func NewQueueIO(inputs []string) *QueueIO {
	return &QueueIO{inputs: inputs}
}

// Write appends line to the accumulated output.
func (q *QueueIO) Write(line string) {
	q.Outputs = append(q.Outputs, line)
}

// Read pops the next scripted input line, or errors if the queue is
// exhausted.
func (q *QueueIO) Read() (string, error) {
	if q.pos >= len(q.inputs) {
		return "", errs.NewRuntimeError(0, "Απαιτείται είσοδος (ΔΙΑΒΑΣΕ) αλλά δεν δόθηκε επιπλέον τιμή")
	}
	v := q.inputs[q.pos]
	q.pos++
	return v, nil
}
