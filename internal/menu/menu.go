// Package menu implements the interactive text driver around package series.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/bft-labs/maclaurin/pkg/log"
	"github.com/bft-labs/maclaurin/pkg/series"
)

// IterationSource supplies the iteration count for the next evaluation.
type IterationSource interface {
	Iterations() int
}

// StaticIterations is an IterationSource that never changes.
type StaticIterations int

func (s StaticIterations) Iterations() int { return int(s) }

// Recorder receives session events. *metrics.Collector satisfies it.
type Recorder interface {
	Evaluated(fn string)
	DomainError(fn string)
	InputError()
}

type nopRecorder struct{}

func (nopRecorder) Evaluated(string)   {}
func (nopRecorder) DomainError(string) {}
func (nopRecorder) InputError()        {}

// Option configures a Menu.
type Option func(*options)

type options struct {
	iterations IterationSource
	logger     log.Logger
	recorder   Recorder
	trace      bool
}

// WithIterations sets where the iteration count comes from.
// Default: series.DefaultIterations.
func WithIterations(src IterationSource) Option {
	return func(o *options) {
		o.iterations = src
	}
}

// WithLogger sets the logger. Default: no output.
func WithLogger(l log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithRecorder sets the session event recorder.
func WithRecorder(r Recorder) Option {
	return func(o *options) {
		o.recorder = r
	}
}

// WithTrace prints every term and partial sum after the result.
func WithTrace(on bool) Option {
	return func(o *options) {
		o.trace = on
	}
}

// Menu reads choices and arguments from in and writes prompts and results to
// out.
type Menu struct {
	in   *bufio.Scanner
	out  io.Writer
	opts options
}

// New creates a Menu.
func New(in io.Reader, out io.Writer, opts ...Option) *Menu {
	o := options{
		iterations: StaticIterations(series.DefaultIterations),
		logger:     log.NewNoopLogger(),
		recorder:   nopRecorder{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Menu{in: bufio.NewScanner(in), out: out, opts: o}
}

const menuText = `
Menu:
1. Compute cos(x) using the Maclaurin series
2. Compute e^x - 1 using the Maclaurin series
3. Compute sqrt(1 - x) using the Maclaurin series
4. Exit
`

// Run loops until the exit option is chosen, input ends, or ctx is done.
// Bad input and domain errors are reported and the menu is shown again.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(m.out, menuText)
		line, ok, err := m.prompt("Choose an option (1/2/3/4): ")
		if err != nil || !ok {
			return err
		}

		choice, err := ParseChoice(line)
		if err != nil {
			m.opts.recorder.InputError()
			m.opts.logger.Debug("rejected menu choice", log.String("input", line))
			fmt.Fprintln(m.out, "Invalid choice. Try again.")
			continue
		}
		f, ok := choice.Func()
		if !ok {
			fmt.Fprintln(m.out, "Exiting.")
			return nil
		}

		done, err := m.evaluate(f)
		if err != nil || done {
			return err
		}
	}
}

// evaluate handles one function choice. done reports that input ended.
func (m *Menu) evaluate(f series.Func) (done bool, err error) {
	p := "Enter x: "
	if d := f.Domain(); d != series.RealLine {
		p = fmt.Sprintf("Enter x (must be in %s): ", d)
	}
	line, ok, err := m.prompt(p)
	if err != nil || !ok {
		return true, err
	}

	x, err := ParseNumber(line)
	if err != nil {
		m.opts.recorder.InputError()
		m.opts.logger.Debug("rejected number", log.String("input", line))
		fmt.Fprintf(m.out, "Error: %q is not a number\n", line)
		return false, nil
	}

	n := m.opts.iterations.Iterations()
	v, err := series.Evaluate(f, x, n)
	if errors.Is(err, series.ErrOutOfDomain) {
		m.opts.recorder.DomainError(f.String())
		m.opts.logger.Warn("argument out of domain",
			log.String("func", f.String()), log.Float64("x", x), log.Err(err))
		fmt.Fprintf(m.out, "Error: %v\n", err)
		return false, nil
	}
	if err != nil {
		return true, err
	}

	m.opts.recorder.Evaluated(f.String())
	m.opts.logger.Debug("evaluated",
		log.String("func", f.String()),
		log.Float64("x", x),
		log.Int("iterations", n),
		log.Float64("result", v),
	)
	fmt.Fprintf(m.out, "Approximate %s = %s\n", f.Formula(x), formatFloat(v))

	if m.opts.trace {
		m.writeTrace(f, x, n)
	}
	return false, nil
}

func (m *Menu) writeTrace(f series.Func, x float64, n int) {
	terms, err := series.Terms(f, x, n)
	if err != nil {
		return
	}
	var sum float64
	for i, t := range terms {
		sum += t
		fmt.Fprintf(m.out, "  %2d  term %-24s sum %s\n", i+1, formatFloat(t), formatFloat(sum))
	}
	fmt.Fprintf(m.out, "  reference %s\n", formatFloat(f.Reference(x)))
}

// prompt writes p and reads one line. ok is false at end of input.
func (m *Menu) prompt(p string) (line string, ok bool, err error) {
	fmt.Fprint(m.out, p)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", false, fmt.Errorf("read input: %w", err)
		}
		fmt.Fprintln(m.out)
		return "", false, nil
	}
	return m.in.Text(), true, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
