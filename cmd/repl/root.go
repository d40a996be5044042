package main

import (
	"fmt"
	"log/slog"

	"github.com/brunokim/relational/parser"

	"github.com/spf13/cobra"
)

type options struct {
	consultFiles []string
	query        string
	interactive  bool
	limit        int
	verbose      bool
	debugFile    string
}

func newRootCommand(openReader func() (lineReader, error)) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Run relational queries",
		Long: `Run relational queries over builtin relations and consulted fact tables.

A query is a comma-separated list of goals ending with '.'. After each solution,
type ';' to look for the next one or '.' to stop.

Example:
  repl --consult family.yaml
  repl --consult family.yaml --interactive=false --query 'parent(ana, X).'`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, openReader)
		},
	}
	cmd.Flags().StringSliceVar(&opts.consultFiles, "consult", nil, "comma-separated YAML fact files to consult, in order")
	cmd.Flags().StringVar(&opts.query, "query", "", "initial query to issue")
	cmd.Flags().BoolVar(&opts.interactive, "interactive", true, "whether the REPL is interactive")
	cmd.Flags().IntVar(&opts.limit, "limit", -1, "maximum number of solutions per query, negative for all")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log every outcome")
	cmd.Flags().StringVar(&opts.debugFile, "debug-file", "", "file to write a JSONL trace of every outcome")
	return cmd
}

func run(cmd *cobra.Command, opts *options, openReader func() (lineReader, error)) error {
	if !opts.interactive && opts.query == "" {
		return newExitError(exitCommandError, "no query provided for non-interactive REPL")
	}
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	s := &session{
		opts:     opts,
		registry: parser.NewRegistry(),
		out:      cmd.OutOrStdout(),
		logger:   logger,
	}
	for _, file := range opts.consultFiles {
		if err := s.consult(file); err != nil {
			return wrapExitError(exitCommandError, fmt.Sprintf("consulting %s", file), err)
		}
	}
	if !opts.interactive {
		return s.runQuery(cmd.Context(), opts.query)
	}
	rl, err := openReader()
	if err != nil {
		return wrapExitError(exitCommandError, "opening terminal", err)
	}
	defer rl.Close()
	s.mainLoop(cmd.Context(), rl)
	return nil
}
