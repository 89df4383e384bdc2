package fiberz

import (
	"log/slog"
	"sync/atomic"
)

// Managed is a fiber as seen by the scheduler that owns it.
type Managed interface {
	Handle() Handle
	Close()
}

// Scheduler creates fibers and keeps track of the ones still alive so
// that leaked fibers are caught when the scheduler is closed. It does
// not drive fibers; callers do that with Start, Transfer and Call.
//
// CreateFiber and DestroyFiber may be called from different goroutines.
type Scheduler struct {
	name    string
	log     *slog.Logger
	rt      *Runtime
	fibers  registry
	created atomic.Uint64
}

// NewScheduler returns a scheduler with no live fibers.
func NewScheduler(opts ...Option) *Scheduler {
	o := newOptions(opts)
	log := o.logger.With(slog.String("scheduler", o.name))
	return &Scheduler{
		name: o.name,
		log:  log,
		rt:   &Runtime{log: log},
	}
}

// Runtime returns the runtime fibers of this scheduler are created with.
func (s *Scheduler) Runtime() *Runtime {
	return s.rt
}

// Live returns the number of fibers created and not yet destroyed.
func (s *Scheduler) Live() int {
	return len(s.fibers.snapshot())
}

// CreateFiber creates a fiber running body and registers it with s. The
// fiber must be released with s.DestroyFiber before s is closed.
func CreateFiber[Arg, In, Out, Ret any](s *Scheduler, body Body[Arg, In, Out, Ret]) *Fiber[Arg, In, Out, Ret] {
	f := New(s.rt, body)
	if !s.fibers.addFiber(f.Handle()) {
		violate(s.log, "CreateFiber", "scheduler %q is closed", s.name)
	}
	s.created.Add(1)
	s.log.Debug("fiber created", slog.String("fiber", f.Handle().String()))
	return f
}

// DestroyFiber unregisters f and closes it. f must have been created by
// s with CreateFiber and not destroyed yet.
func (s *Scheduler) DestroyFiber(f Managed) {
	h := f.Handle()
	if !s.fibers.removeFiber(h) {
		violate(s.log, "Scheduler.DestroyFiber", "fiber %s is not owned by scheduler %q", h, s.name)
	}
	s.log.Debug("fiber destroyed", slog.String("fiber", h.String()))
	f.Close()
}

// Close tears the scheduler down. It panics with a *LeakError if any
// fiber created by s has not been destroyed.
func (s *Scheduler) Close() {
	live, closedNow := s.fibers.close()
	if len(live) > 0 {
		err := &LeakError{
			Scheduler: s.name,
			Count:     len(live),
			Handles:   live,
		}
		s.log.Error("fibers leaked", slog.Int("count", err.Count), slog.Any("fibers", live))
		panic(err)
	}
	if closedNow {
		s.log.Debug("scheduler closed", slog.Uint64("created", s.created.Load()))
	}
}
