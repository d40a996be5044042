// Package solver drives goals and extracts the bindings of queried variables.
package solver

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"sort"
	"strings"

	"github.com/brunokim/relational/goal"
	"github.com/brunokim/relational/logic"
	"github.com/brunokim/relational/subst"
)

// Solution maps each queried var to its resolved term. Vars that remained unbound
// are mapped to themselves, or to another unbound var they were unified with.
type Solution map[*logic.Var]logic.Term

func (s Solution) vars() []*logic.Var {
	xs := make([]*logic.Var, 0, len(s))
	for x := range s {
		xs = append(xs, x)
	}
	sort.Slice(xs, func(i, j int) bool {
		if xs[i].Name != xs[j].Name {
			return xs[i].Name < xs[j].Name
		}
		return xs[i].ID() < xs[j].ID()
	})
	return xs
}

// String returns the bindings sorted by var name, like "X = 1, Y = [1, 2]".
func (s Solution) String() string {
	xs := s.vars()
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprintf("%v = %v", x, s[x])
	}
	return strings.Join(parts, ", ")
}

// ByName returns the solution keyed by var name. If more than one var share the
// same name, the last created wins.
func (s Solution) ByName() map[string]logic.Term {
	m := make(map[string]logic.Term, len(s))
	for _, x := range s.vars() {
		m[x.Name] = s[x]
	}
	return m
}

func resolve(vars []*logic.Var, s *subst.Subst) Solution {
	solution := make(Solution, len(vars))
	for _, x := range vars {
		solution[x] = s.DeepResolve(x)
	}
	return solution
}

// ---- Options

type config struct {
	logger        *slog.Logger
	debugFilename string
}

// Option configures a query.
type Option func(*config)

// WithLogger sets the logger that receives every outcome at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithDebugFile writes a trace of every outcome to filename, one JSON object per
// line.
func WithDebugFile(filename string) Option {
	return func(c *config) {
		c.debugFilename = filename
	}
}

func newConfig(opts []Option) *config {
	c := &config{logger: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ---- Drivers

// Query returns a lazy iterator of the solutions of g, for the given vars.
//
// Every invocation runs the goal from scratch with an empty substitution and a new
// env, so anonymous vars are tagged from "~.0" on. Stopping the iteration stops the
// search. If ctx is done, its error is yielded once and the iteration ends; the
// context is only checked between outcomes, so a goal that loops forever without
// producing outcomes can't be interrupted.
func Query(ctx context.Context, vars []*logic.Var, g goal.Goal, opts ...Option) iter.Seq2[Solution, error] {
	c := newConfig(opts)
	return func(yield func(Solution, error) bool) {
		if err := ctx.Err(); err != nil {
			yield(nil, err)
			return
		}
		env := goal.NewEnv()
		tr := c.openTrace()
		defer tr.close()
		var step int
		for o := range g(env, subst.New()) {
			if err := ctx.Err(); err != nil {
				yield(nil, err)
				return
			}
			c.logger.DebugContext(ctx, "outcome", "step", step, "outcome", o, "fresh_vars", env.VarCount())
			tr.write(step, o, env)
			step++
			if o.Failed() {
				continue
			}
			if !yield(resolve(vars, o.Subst), nil) {
				return
			}
		}
	}
}

// Run returns at most limit solutions of g, for the given vars. If limit is
// negative, all solutions are returned, and Run does not return if there are
// infinitely many.
func Run(limit int, vars []*logic.Var, g goal.Goal, opts ...Option) []Solution {
	solutions := []Solution{}
	if limit == 0 {
		return solutions
	}
	for solution, err := range Query(context.Background(), vars, g, opts...) {
		if err != nil {
			break
		}
		solutions = append(solutions, solution)
		if len(solutions) == limit {
			break
		}
	}
	return solutions
}

// RunAll returns all solutions of g, for the given vars.
func RunAll(vars []*logic.Var, g goal.Goal, opts ...Option) []Solution {
	return Run(-1, vars, g, opts...)
}
