package cmd

import (
	"context"

	"github.com/ardnew/defiro/lang"
)

// Fmt evaluates source files and prints the resulting bindings in the
// chosen format.
type Fmt struct {
	Native Native `cmd:"" default:"withargs" help:"Format as native defiro syntax (default)."`
	JSON   JSON   `cmd:""                    help:"Format as JSON."`
	YAML   YAML   `cmd:""                    help:"Format as YAML."`
	Swatch Swatch `cmd:""                    help:"Format as colored swatches."`
}

// Native formats bindings as let statements that evaluate to the same
// bindings.
type Native struct {
	Input `embed:""`
}

// Run executes the native command.
func (f *Native) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	bindings, faults, err := f.evaluate(ctx)
	if err != nil {
		return err
	}

	if err := lang.FormatNative(ctx, streamsFrom(ctx).Out, bindings); err != nil {
		return err
	}

	return f.report(ctx, faults)
}

// JSON formats bindings as a JSON object.
type JSON struct {
	Indent int `default:"2" help:"Indent width for JSON output (0 for a single line)." short:"i"`

	Input `embed:""`
}

// Run executes the json command.
func (j *JSON) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	bindings, faults, err := j.evaluate(ctx)
	if err != nil {
		return err
	}

	err = lang.FormatJSON(ctx, streamsFrom(ctx).Out, bindings, j.Indent)
	if err != nil {
		return ErrJSONMarshal.Wrap(err)
	}

	return j.report(ctx, faults)
}

// YAML formats bindings as a YAML mapping.
type YAML struct {
	Indent int `default:"2" help:"Indent width for YAML output (0 for flow style)." short:"i"`

	Input `embed:""`
}

// Run executes the yaml command.
func (y *YAML) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	bindings, faults, err := y.evaluate(ctx)
	if err != nil {
		return err
	}

	err = lang.FormatYAML(ctx, streamsFrom(ctx).Out, bindings, y.Indent)
	if err != nil {
		return ErrYAMLMarshal.Wrap(err)
	}

	return y.report(ctx, faults)
}

// Swatch prints one colored swatch per binding.
type Swatch struct {
	Input `embed:""`
}

// Run executes the swatch command.
func (s *Swatch) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	bindings, faults, err := s.evaluate(ctx)
	if err != nil {
		return err
	}

	if err := lang.FormatSwatch(ctx, streamsFrom(ctx).Out, bindings); err != nil {
		return err
	}

	return s.report(ctx, faults)
}
