package taskqueue

import (
	"github.com/prxgr4mm3r/swanky-cli/pkg/ui"
)

// SpinnerReporter reports task status through a pterm spinner per task.
type SpinnerReporter struct{}

var _ Reporter = (*SpinnerReporter)(nil)

// NewSpinnerReporter returns the terminal spinner-backed reporter.
func NewSpinnerReporter() *SpinnerReporter {
	return &SpinnerReporter{}
}

func (r *SpinnerReporter) Start(label string) Handle {
	spinner, err := ui.Spin(label)
	if err != nil {
		// Terminal without spinner support; fall back to plain prints.
		ui.Info.Println(label)
		return printHandle{}
	}
	return spinnerHandle{spinner: spinner}
}

type spinnerHandle struct {
	spinner interface {
		Success(...any)
		Fail(...any)
	}
}

func (h spinnerHandle) Succeed(msg string) { h.spinner.Success(msg) }
func (h spinnerHandle) Fail(msg string)    { h.spinner.Fail(msg) }

type printHandle struct{}

func (printHandle) Succeed(msg string) { ui.Success.Println(msg) }
func (printHandle) Fail(msg string)    { ui.Error.Println(msg) }

// nopReporter silences status output; used by tests.
type nopReporter struct{}

type nopHandle struct{}

func (nopHandle) Succeed(string) {}
func (nopHandle) Fail(string)    {}

func (nopReporter) Start(string) Handle { return nopHandle{} }

// NewNopReporter returns a reporter that discards all status output.
func NewNopReporter() Reporter { return nopReporter{} }
