package experiment

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/sarchlab/tenet/dataflow"
	"github.com/sarchlab/tenet/mapping"
	"github.com/sarchlab/tenet/pearray"
	"github.com/sarchlab/tenet/statement"
)

// Runner loads and analyzes experiments.
type Runner struct {
	builder dataflow.Builder
	params  map[string]int
	lint    bool
}

// NewRunner creates a runner that builds dataflows with b.
func NewRunner(b dataflow.Builder) *Runner {
	return &Runner{builder: b, params: make(map[string]int)}
}

// WithParam overrides a parameter of every statement and mapping.
func (r *Runner) WithParam(name string, value int) *Runner {
	r.params[name] = value
	return r
}

// WithLint enables checking each mapping before it is analyzed.
func (r *Runner) WithLint(enabled bool) *Runner {
	r.lint = enabled
	return r
}

// Build loads the three collaborators of an experiment into a dataflow.
func (r *Runner) Build(e Experiment) (*dataflow.Dataflow, error) {
	var (
		peOpts []pearray.LoadOption
		stOpts []statement.LoadOption
		mpOpts []mapping.LoadOption
	)
	for k, v := range r.params {
		peOpts = append(peOpts, pearray.OverrideParam(k, v))
		stOpts = append(stOpts, statement.OverrideParam(k, v))
		mpOpts = append(mpOpts, mapping.OverrideParam(k, v))
	}

	pe, err := pearray.Load(e.PEArray, peOpts...)
	if err != nil {
		return nil, fmt.Errorf("%s: load PE array: %w", e.Name, err)
	}

	st, err := statement.Load(e.Statement, stOpts...)
	if err != nil {
		return nil, fmt.Errorf("%s: load statement: %w", e.Name, err)
	}

	mpOpts = append(mpOpts, mapping.WithDomain(st.Domain()))
	mp, err := mapping.Load(e.Mapping, mpOpts...)
	if err != nil {
		return nil, fmt.Errorf("%s: load mapping: %w", e.Name, err)
	}

	return r.builder.
		WithStatement(st).
		WithPEArray(pe).
		WithMapping(mp).
		Build(e.Name)
}

// Run analyzes one experiment.
func (r *Runner) Run(e Experiment) (*Result, error) {
	df, err := r.Build(e)
	if err != nil {
		return nil, err
	}

	var issues []dataflow.Issue
	if r.lint {
		issues, err = df.Lint()
		if err != nil {
			return nil, fmt.Errorf("%s: lint: %w", e.Name, err)
		}
		for _, is := range issues {
			slog.Warn("mapping issue",
				"experiment", e.Name, "type", string(is.Type), "message", is.Message)
		}
	}

	res, err := Collect(df)
	if err != nil {
		return nil, err
	}
	res.Issues = issues

	return res, nil
}

// RunAll analyzes every experiment. A failing experiment does not stop the
// others; all failures are joined into the returned error.
func (r *Runner) RunAll(exps []Experiment) (*Summary, error) {
	summary := &Summary{}

	var errs []error
	for _, e := range exps {
		res, err := r.Run(e)
		if err != nil {
			slog.Error("experiment failed", "experiment", e.Name, "error", err)
			errs = append(errs, err)
			continue
		}
		summary.Results = append(summary.Results, res)
	}

	return summary, errors.Join(errs...)
}
