package repl

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/ardnew/defiro/lang"
	"github.com/ardnew/defiro/log"
	"github.com/ardnew/defiro/pkg"
)

const defaultEditor = "vi"

// editCommand implements [tea.ExecCommand] for the edit-evaluate-retry
// loop. It writes the current bindings as source to a temp file, opens the
// user's editor, and evaluates the result into a new environment. If the
// edited source reports faults, the user is prompted to re-edit; declining
// returns [ErrEditDeclined] and the edit is discarded.
type editCommand struct {
	bindings []lang.Binding
	path     lang.AbsPath
	newEnv   func() *lang.Env
	ctxFunc  func() context.Context
	logger   log.Logger
	env      *lang.Env // result; nil if the edit was cancelled
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
}

// SetStdin sets the stdin reader for the command.
func (c *editCommand) SetStdin(r io.Reader) { c.stdin = r }

// SetStdout sets the stdout writer for the command.
func (c *editCommand) SetStdout(w io.Writer) { c.stdout = w }

// SetStderr sets the stderr writer for the command.
func (c *editCommand) SetStderr(w io.Writer) { c.stderr = w }

// Run executes the edit-evaluate-retry loop.
func (c *editCommand) Run() error {
	ctx := c.ctxFunc()

	var buf bytes.Buffer
	if err := lang.FormatNative(ctx, &buf, c.bindings); err != nil {
		return fmt.Errorf("format bindings: %w", err)
	}

	f, err := os.CreateTemp(os.TempDir(), pkg.Name+"-repl-*"+pkg.Extension)
	if err != nil {
		return err
	}

	tmpPath := f.Name()

	defer os.Remove(tmpPath)

	if err := f.Chmod(0o600); err != nil {
		f.Close()

		return err
	}

	f.Close()

	content := buf.Bytes()

	for {
		if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
			return err
		}

		data, err := runEditor(ctx, c.stdin, c.stdout, c.stderr, tmpPath)
		if err != nil {
			return err
		}

		// An emptied file cancels the edit.
		if len(bytes.TrimSpace(data)) == 0 {
			return nil
		}

		env := c.newEnv()
		lang.Run(ctx, env, string(data), c.path)

		faults := env.Faults()

		c.logger.TraceContext(
			ctx,
			"editor evaluate attempt",
			slog.Int("content_length", len(data)),
			slog.Int("faults", len(faults)),
		)

		if len(faults) == 0 {
			c.env = env

			return nil
		}

		fmt.Fprintln(c.stderr)

		for _, fault := range faults {
			fmt.Fprintln(c.stderr, lang.FormatFault(fault))
		}

		fmt.Fprintf(c.stdout, "Re-edit? [Y/n] ")

		scanner := bufio.NewScanner(c.stdin)
		if !scanner.Scan() {
			return ErrEditDeclined
		}

		response := strings.TrimSpace(strings.ToLower(scanner.Text()))
		if response == "n" || response == "no" {
			return ErrEditDeclined
		}

		content = data
	}
}

// runEditor launches the user's editor on the given file path and returns
// the edited file content.
func runEditor(
	ctx context.Context,
	stdin io.Reader,
	stdout io.Writer,
	stderr io.Writer,
	path string,
) ([]byte, error) {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = defaultEditor
	}

	cmd := exec.CommandContext(ctx, editor, path)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		return nil, err
	}

	return os.ReadFile(path)
}
