// Package profile provides optional runtime profiling backed by
// [github.com/pkg/profile].
//
// Profiling is compiled in only with the "pprof" build tag:
//
//	go build -tags pprof .
//
// Without the tag, [Modes] is empty and [Config.Start] returns a no-op, so
// callers never need their own build constraints.
//
// A [Config] is built from functional options and started once:
//
//	var cfg profile.Config = func() (string, string, bool) { return "", "", false }
//	cfg = profile.WithMode("cpu")(cfg)
//	cfg = profile.WithPath(dir)(cfg)
//	defer cfg.Start().Stop()
//
// Supported modes with the tag are allocs, block, clock, cpu, goroutine,
// heap, mem, mutex, thread and trace.
package profile
