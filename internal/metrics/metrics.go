// Package metrics counts evaluations made during a session.
package metrics

import (
	"fmt"
	"io"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const namespace = "maclaurin"

// Collector owns a private registry so sessions never share counters.
type Collector struct {
	reg          *prometheus.Registry
	evaluations  *prometheus.CounterVec
	domainErrors *prometheus.CounterVec
	inputErrors  prometheus.Counter
}

// New creates a Collector with all counters registered.
func New() *Collector {
	c := &Collector{
		reg: prometheus.NewRegistry(),
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evaluations_total",
			Help:      "Successful series evaluations by function.",
		}, []string{"func"}),
		domainErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "domain_errors_total",
			Help:      "Arguments rejected as out of domain by function.",
		}, []string{"func"}),
		inputErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "input_errors_total",
			Help:      "Menu choices or numbers that failed to parse.",
		}),
	}
	c.reg.MustRegister(c.evaluations, c.domainErrors, c.inputErrors)
	return c
}

// Registry exposes the underlying registry, e.g. for testutil.
func (c *Collector) Registry() *prometheus.Registry {
	return c.reg
}

func (c *Collector) Evaluated(fn string) {
	c.evaluations.WithLabelValues(fn).Inc()
}

func (c *Collector) DomainError(fn string) {
	c.domainErrors.WithLabelValues(fn).Inc()
}

func (c *Collector) InputError() {
	c.inputErrors.Inc()
}

// WriteSummary prints one line per non-zero series, sorted by name.
func (c *Collector) WriteSummary(w io.Writer) error {
	families, err := c.reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			v := m.GetCounter().GetValue()
			if v == 0 {
				continue
			}
			lines = append(lines, fmt.Sprintf("%s%s %g", mf.GetName(), labels(m), v))
		}
	}
	sort.Strings(lines)

	if len(lines) == 0 {
		_, err := fmt.Fprintln(w, "no evaluations")
		return err
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

func labels(m *dto.Metric) string {
	if len(m.GetLabel()) == 0 {
		return ""
	}
	s := "{"
	for i, lp := range m.GetLabel() {
		if i > 0 {
			s += ","
		}
		s += fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue())
	}
	return s + "}"
}
