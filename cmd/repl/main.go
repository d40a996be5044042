// Command repl is an interactive shell for relational queries.
package main

import (
	"fmt"
	"os"

	"github.com/chzyer/readline"
)

func main() {
	cmd := newRootCommand(openReadline)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(getExitCode(err))
	}
}

func openReadline() (lineReader, error) {
	return readline.NewEx(&readline.Config{
		Prompt:                 "?- ",
		HistoryFile:            "/tmp/readline-history",
		DisableAutoSaveHistory: true,
	})
}
