package fiberz

import "log/slog"

// Runtime is the capability a fiber is created with. It is obtained from
// Scheduler.Runtime and carries no behavior of its own; it is the place
// where a driver for many fibers would attach.
type Runtime struct {
	log *slog.Logger
}

func (rt *Runtime) logger() *slog.Logger {
	if rt == nil || rt.log == nil {
		return logger
	}
	return rt.log
}
