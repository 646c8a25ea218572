package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/vvka-141/dwgate/pkg/dwgate"
)

// ConsoleReporter writes outcome lines as they happen.
// Thread-safe via mutex protection.
type ConsoleReporter struct {
	out io.Writer
	mu  sync.Mutex
}

// NewConsoleReporter creates a reporter that writes to stdout.
func NewConsoleReporter() *ConsoleReporter {
	return NewWriterReporter(os.Stdout)
}

// NewWriterReporter creates a reporter that writes to out.
func NewWriterReporter(out io.Writer) *ConsoleReporter {
	return &ConsoleReporter{out: out}
}

func (r *ConsoleReporter) Section(title string) {
	r.println("")
	r.println(SectionStyle.Render(title))
}

func (r *ConsoleReporter) Step(format string, args ...interface{}) {
	r.println(StepStyle.Render(SymbolArrowRight) + " " + fmt.Sprintf(format, args...))
}

func (r *ConsoleReporter) Pass(description string) {
	r.println(SuccessStyle.Render(SymbolCheck) + " " + description)
}

func (r *ConsoleReporter) Fail(description string) {
	r.println(ErrorStyle.Render(SymbolCross) + " " + description)
}

func (r *ConsoleReporter) Summary(success bool, message string) {
	r.println("")
	if success {
		r.println(SuccessStyle.Bold(true).Render(SymbolCheck + " " + message))
		return
	}
	r.println(ErrorStyle.Bold(true).Render(SymbolCross + " " + message))
}

func (r *ConsoleReporter) println(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.out, line)
}

// NullReporter discards all output. Used by library callers and tests.
type NullReporter struct{}

// NewNullReporter creates a new NullReporter.
func NewNullReporter() *NullReporter {
	return &NullReporter{}
}

func (NullReporter) Section(string)              {}
func (NullReporter) Step(string, ...interface{}) {}
func (NullReporter) Pass(string)                 {}
func (NullReporter) Fail(string)                 {}
func (NullReporter) Summary(bool, string)        {}

var (
	_ dwgate.Reporter = (*ConsoleReporter)(nil)
	_ dwgate.Reporter = NullReporter{}
)
