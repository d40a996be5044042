package solver

import (
	"encoding/json"
	"io"
	"os"

	"github.com/brunokim/relational/goal"
)

type trace struct {
	w      io.WriteCloser
	enc    *json.Encoder
	config *config
}

type traceEntry struct {
	Step      int             `json:"step"`
	Outcome   string          `json:"outcome"`
	Subst     json.RawMessage `json:"subst,omitempty"`
	FreshVars int             `json:"fresh_vars"`
}

func (c *config) openTrace() *trace {
	if c.debugFilename == "" {
		return nil
	}
	f, err := os.Create(c.debugFilename)
	if err != nil {
		c.logger.Error("failed to open debug file", "file", c.debugFilename, "err", err)
		return nil
	}
	return &trace{w: f, enc: json.NewEncoder(f), config: c}
}

func (tr *trace) write(step int, o goal.Outcome, env *goal.Env) {
	if tr == nil {
		return
	}
	entry := traceEntry{Step: step, Outcome: "no", FreshVars: env.VarCount()}
	if !o.Failed() {
		data, err := o.Subst.MarshalJSON()
		if err != nil {
			tr.config.logger.Error("failed to marshal substitution", "step", step, "err", err)
			return
		}
		entry.Outcome = "yes"
		entry.Subst = data
	}
	if err := tr.enc.Encode(entry); err != nil {
		tr.config.logger.Error("failed to write debug file", "file", tr.config.debugFilename, "err", err)
	}
}

func (tr *trace) close() {
	if tr == nil {
		return
	}
	if err := tr.w.Close(); err != nil {
		tr.config.logger.Error("failed to close debug file", "file", tr.config.debugFilename, "err", err)
	}
}
