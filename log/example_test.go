package log_test

import (
	"log/slog"
	"os"

	"github.com/ardnew/defiro/log"
)

func Example() {
	logger := log.Make(os.Stdout,
		log.WithFormat(log.FormatText),
		log.WithTimeLayout("none"),
		log.WithPretty(false))

	logger.Info("evaluated", slog.String("path", "/themes/main.dfr"), slog.Int("bindings", 12))
	logger.Debug("not shown at the default level")
	// Output:
	// level=INFO msg=evaluated path=/themes/main.dfr bindings=12
}

func Example_levels() {
	logger := log.Make(os.Stdout,
		log.WithLevel(log.LevelTrace),
		log.WithFormat(log.FormatJSON),
		log.WithTimeLayout("none"),
		log.WithPretty(false))

	logger.Trace("lexed", slog.Int("tokens", 7))
	// Output:
	// {"level":"TRACE","msg":"lexed","tokens":7}
}
