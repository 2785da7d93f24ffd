package engine

import (
	"bytes"
	"context"
	"os"
	"os/exec"

	"pickd/internal/config"
	"pickd/internal/log"
)

// Engine ranks candidate entries for a query scoped to a working directory.
// Implementations follow a soft-failure contract: a failed invocation yields
// an empty result set, never an error that ends the picker session.
type Engine interface {
	Query(ctx context.Context, dir, query string) []Entry
}

// Command invokes an external ranking engine as a blocking subprocess. It
// owns no state across calls: each Query spawns one child, waits for it, and
// decodes whatever it wrote to stdout.
type Command struct {
	path string
	args []string
}

// NewCommand returns a gateway for the given engine command. The query is
// appended as the final argument on each invocation.
func NewCommand(path string, args ...string) *Command {
	return &Command{path: path, args: args}
}

// Default returns the gateway for the configured engine command, falling
// back to self-execution of "pickd rank" when none is configured.
func Default(cfg *config.Config) *Command {
	if cfg.Engine.Command != "" {
		return NewCommand(cfg.Engine.Command, cfg.Engine.Args...)
	}
	exe, err := os.Executable()
	if err != nil {
		exe = "pickd"
	}
	return NewCommand(exe, "rank")
}

// Query runs the engine with the working directory as its execution
// directory and the query as its last argument. Start failures and
// unparseable output degrade to an empty result set. A non-zero exit alone
// does not discard output that did parse.
func (c *Command) Query(ctx context.Context, dir, query string) []Entry {
	args := append(append([]string(nil), c.args...), query)
	cmd := exec.CommandContext(ctx, c.path, args...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		log.Debugf("engine %s: %v (stderr: %s)", c.path, err, bytes.TrimSpace(stderr.Bytes()))
	}
	if len(bytes.TrimSpace(out)) == 0 {
		return nil
	}

	entries, perr := decodeEntries(out, dir)
	if perr != nil {
		log.Warnf("engine %s produced unparseable output: %v", c.path, perr)
		return nil
	}
	return entries
}
