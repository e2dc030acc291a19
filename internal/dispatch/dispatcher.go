package dispatch

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Dispatcher maps operations onto scripts in ScriptDir.
type Dispatcher struct {
	ScriptDir string
	Runner    Runner
	Out       io.Writer
	Logger    *zap.Logger
}

// New returns a Dispatcher. A nil runner spawns real processes; nil out
// and logger discard.
func New(scriptDir string, runner Runner, out io.Writer, logger *zap.Logger) *Dispatcher {
	if runner == nil {
		runner = ExecRunner{}
	}
	if out == nil {
		out = io.Discard
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{ScriptDir: scriptDir, Runner: runner, Out: out, Logger: logger}
}

// Dispatch runs op and returns the exit code to propagate. Errors are
// terminal: path resolution and spawn failures abort immediately.
func (d *Dispatcher) Dispatch(ctx context.Context, op Operation) (int, error) {
	switch op := op.(type) {
	case Rebuild:
		path, err := ResolvePath(op.Path)
		if err != nil {
			return 0, err
		}
		label := op.Message
		if op.Label != nil {
			label = *op.Label
		}
		return d.rebuild(ctx, path, op.Host, op.Message, label)
	case Update:
		return d.update(ctx, op)
	case Clean:
		return d.run(ctx, op.script())
	case Audit:
		if op.Key == "" {
			return d.run(ctx, op.script())
		}
		return d.run(ctx, op.script(), op.Key)
	default:
		return 0, fmt.Errorf("unsupported operation %T", op)
	}
}

// rebuild expects path to be resolved already.
func (d *Dispatcher) rebuild(ctx context.Context, path, host, message, label string) (int, error) {
	sanitized := SanitizeLabel(label)

	fmt.Fprintf(d.Out, "path: %q\n", path)
	if host != "" {
		fmt.Fprintf(d.Out, "host: %q\n", host)
	}
	fmt.Fprintf(d.Out, "message: %q\n", message)
	fmt.Fprintf(d.Out, "label: %q\n", sanitized)

	args := []string{path}
	if host != "" {
		args = append(args, host)
	}
	args = append(args, message, sanitized)
	return d.run(ctx, Rebuild{}.script(), args...)
}

// update always cascades into a rebuild once update.sh has run, whatever
// its exit code. The first non-zero code wins.
func (d *Dispatcher) update(ctx context.Context, op Update) (int, error) {
	path, err := ResolvePath(op.Path)
	if err != nil {
		return 0, err
	}
	fmt.Fprintf(d.Out, "path: %q\n", path)

	updateCode, err := d.run(ctx, op.script(), path)
	if err != nil {
		return 0, err
	}
	if updateCode != 0 {
		d.Logger.Warn("update script failed; rebuilding anyway", zap.Int("exit_code", updateCode))
	}

	rebuildCode, err := d.rebuild(ctx, path, op.Host, updateMessage, updateMessage)
	if err != nil {
		return 0, err
	}
	if updateCode != 0 {
		return updateCode, nil
	}
	return rebuildCode, nil
}

func (d *Dispatcher) run(ctx context.Context, name string, args ...string) (int, error) {
	inv := NewInvocation(d.ScriptDir, name, args...)
	d.Logger.Debug("running script", zap.String("script", inv.Script), zap.Strings("args", inv.Args))
	code, err := d.Runner.Run(ctx, inv)
	if err != nil {
		return 0, err
	}
	d.Logger.Debug("script exited", zap.String("script", inv.Script), zap.Int("exit_code", code))
	return code, nil
}
