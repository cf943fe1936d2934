// Package taskqueue runs the deferred side-effecting operations of a
// scaffolding flow strictly in enqueue order, reporting per-task status.
package taskqueue

import (
	"fmt"
)

// Task is one deferred unit of work. Op has its arguments fixed at enqueue
// time through closure capture; anything a later stage needs from the
// operation's outcome must flow through Callback, never by re-reading
// mutable state captured early.
type Task struct {
	// Op performs the work and may return a result string (e.g. a resolved
	// file path) that is handed to Callback on success.
	Op func() (string, error)
	// RunningMsg is shown while the task executes.
	RunningMsg string
	// SuccessMsg and FailMsg are optional; the reporter falls back to
	// RunningMsg when they are empty.
	SuccessMsg string
	FailMsg    string
	// FatalOnError aborts the remaining queue when the task fails.
	FatalOnError bool
	// Callback receives Op's result after a successful run.
	Callback func(result string)
}

// NewTask returns a fatal-by-default task with the given operation and label.
func NewTask(op func() (string, error), runningMsg string) Task {
	return Task{Op: op, RunningMsg: runningMsg, FatalOnError: true}
}

// State is the executor lifecycle state.
type State int

const (
	Idle State = iota
	Running
	Completed
	Aborted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Aborted:
		return "aborted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Handle tracks one announced task until it settles.
type Handle interface {
	Succeed(msg string)
	Fail(msg string)
}

// Reporter is the status side-channel tasks report through.
type Reporter interface {
	Start(label string) Handle
}

// Queue executes tasks first-in first-out. Tasks are never skipped,
// reordered, or retried; a retry, if wanted, is the operation's own business
// before it reports failure.
type Queue struct {
	tasks    []Task
	state    State
	reporter Reporter
}

// New returns an idle queue reporting through r.
func New(r Reporter) *Queue {
	return &Queue{reporter: r}
}

// Add appends a task. Enqueueing after Run has started is a programming
// error and panics.
func (q *Queue) Add(t Task) {
	if q.state != Idle {
		panic("taskqueue: Add called on a " + q.state.String() + " queue")
	}
	q.tasks = append(q.tasks, t)
}

// State returns the current lifecycle state.
func (q *Queue) State() State {
	return q.state
}

// Len returns the number of enqueued tasks.
func (q *Queue) Len() int {
	return len(q.tasks)
}

// Run executes every task in insertion order. A failing task marked fatal
// aborts the run and surfaces its error; a non-fatal failure is reported and
// the run continues. Run may be called once per queue.
func (q *Queue) Run() error {
	if q.state != Idle {
		return fmt.Errorf("taskqueue: Run called on a %s queue", q.state)
	}
	q.state = Running

	for _, t := range q.tasks {
		h := q.reporter.Start(t.RunningMsg)

		result, err := t.Op()
		if err != nil {
			msg := t.FailMsg
			if msg == "" {
				msg = t.RunningMsg
			}
			h.Fail(msg)
			if t.FatalOnError {
				q.state = Aborted
				return fmt.Errorf("%s: %w", msg, err)
			}
			continue
		}

		msg := t.SuccessMsg
		if msg == "" {
			msg = t.RunningMsg
		}
		h.Succeed(msg)
		if t.Callback != nil {
			t.Callback(result)
		}
	}

	q.state = Completed
	return nil
}
