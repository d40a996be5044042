package main

import (
	"context"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/brunokim/relational/logic"
	"github.com/brunokim/relational/parser"
	"github.com/brunokim/relational/runes"
	"github.com/brunokim/relational/solver"
)

// lineReader is the subset of *readline.Instance used by the REPL.
type lineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
	SaveHistory(content string) error
	Close() error
}

type session struct {
	opts     *options
	registry *parser.Registry
	out      io.Writer
	logger   *slog.Logger
}

func (s *session) consult(filename string) error {
	bs, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	if err := s.registry.Consult(bs); err != nil {
		return err
	}
	s.logger.Info("consulted", "file", filename, "relations", s.registry.Relations())
	return nil
}

func (s *session) solve(ctx context.Context, text string) (iter.Seq2[solver.Solution, error], error) {
	q, g, err := s.registry.Compile(text)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("query", "query", q, "vars", len(q.Vars))
	opts := []solver.Option{solver.WithLogger(s.logger)}
	if s.opts.debugFile != "" {
		opts = append(opts, solver.WithDebugFile(s.opts.debugFile))
	}
	return solver.Query(ctx, q.Vars, g, opts...), nil
}

// runQuery prints all solutions of a query, up to the limit.
func (s *session) runQuery(ctx context.Context, text string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	solutions, err := s.solve(ctx, text)
	if err != nil {
		return wrapExitError(exitFailure, "invalid query", err)
	}
	var n int
	for solution, err := range solutions {
		if s.opts.limit >= 0 && n >= s.opts.limit {
			break
		}
		if err != nil {
			return wrapExitError(exitFailure, "query interrupted", err)
		}
		s.printSolution(solution)
		n++
	}
	if n == 0 {
		fmt.Fprintln(s.out, "false.")
	}
	return nil
}

func (s *session) mainLoop(ctx context.Context, rl lineReader) {
	if s.opts.query != "" {
		s.enumerate(ctx, rl, s.opts.query)
	}
	for {
		text, err := s.readQuery(rl)
		if err != nil {
			return
		}
		s.enumerate(ctx, rl, text)
	}
}

func (s *session) readQuery(rl lineReader) (string, error) {
	rl.SetPrompt("?- ")
	var lines []string
	for {
		line, err := rl.Readline()
		if err != nil {
			return "", err
		}
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		lines = append(lines, line)
		if strings.HasSuffix(line, ".") {
			break
		}
		rl.SetPrompt("|  ")
	}
	text := strings.Join(lines, " ")
	if err := rl.SaveHistory(text); err != nil {
		s.logger.Warn("saving history", "error", err)
	}
	return text, nil
}

// enumerate prints solutions one at a time, while the user asks for more.
func (s *session) enumerate(ctx context.Context, rl lineReader, text string) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	solutions, err := s.solve(ctx, text)
	if err != nil {
		fmt.Fprintln(s.out, "error:", err)
		return
	}
	next, done := iter.Pull2(solutions)
	defer done()
	for n := 0; s.opts.limit < 0 || n < s.opts.limit; n++ {
		solution, err, ok := next()
		if !ok {
			break
		}
		if err != nil {
			fmt.Fprintln(s.out, "error:", err)
			return
		}
		s.printSolution(solution)
		if !s.readCommand(rl) {
			return
		}
	}
	fmt.Fprintln(s.out, "false.")
}

// readCommand returns whether the user asked for the next solution.
func (s *session) readCommand(rl lineReader) bool {
	rl.SetPrompt("")
	for {
		line, err := rl.Readline()
		if err != nil {
			return false
		}
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		if r, ok := runes.Single(line); ok {
			switch r {
			case ';':
				return true
			case '.':
				return false
			}
		}
		fmt.Fprintln(s.out, "Expecting '.' or ';'")
	}
}

// printSolution omits vars that remained unbound.
func (s *session) printSolution(solution solver.Solution) {
	bound := make(solver.Solution, len(solution))
	for x, t := range solution {
		if t == logic.Term(x) {
			continue
		}
		bound[x] = t
	}
	if len(bound) == 0 {
		fmt.Fprintln(s.out, "true")
		return
	}
	fmt.Fprintln(s.out, bound)
}
