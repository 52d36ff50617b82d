package cmd

import (
	"context"

	"github.com/ardnew/defiro/lang"
)

// Eval evaluates source files and prints the resulting bindings as a
// compact JSON object sorted by name.
type Eval struct {
	Input `embed:""`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	bindings, faults, err := e.evaluate(ctx)
	if err != nil {
		return err
	}

	if err := lang.FormatJSON(ctx, streamsFrom(ctx).Out, bindings, 0); err != nil {
		return ErrJSONMarshal.Wrap(err)
	}

	return e.report(ctx, faults)
}
