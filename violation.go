package fiberz

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrContractViolation is wrapped by every panic raised for misuse of a
// fiber, context or scheduler.
var ErrContractViolation = errors.New("fiberz: contract violation")

// ViolationError describes an operation invoked while its precondition
// does not hold.
type ViolationError struct {
	Op     string
	Reason string
}

func (e *ViolationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrContractViolation, e.Op, e.Reason)
}

func (e *ViolationError) Unwrap() error {
	return ErrContractViolation
}

// LeakError is raised by Scheduler.Close when fibers created through the
// scheduler were never destroyed.
type LeakError struct {
	Scheduler string
	Count     int
	Handles   []Handle
}

func (e *LeakError) Error() string {
	ids := make([]string, len(e.Handles))
	for i, h := range e.Handles {
		ids[i] = h.String()
	}
	noun := "fibers"
	if e.Count == 1 {
		noun = "fiber"
	}
	return fmt.Sprintf(
		"%s: scheduler %q closed with %d live %s [%s]",
		ErrContractViolation, e.Scheduler, e.Count, noun, strings.Join(ids, ", "),
	)
}

func (e *LeakError) Unwrap() error {
	return ErrContractViolation
}

func violate(log *slog.Logger, op, format string, args ...any) {
	err := &ViolationError{Op: op, Reason: fmt.Sprintf(format, args...)}
	if log == nil {
		log = slog.Default()
	}
	log.Error("contract violation", slog.String("op", op), slog.String("reason", err.Reason))
	panic(err)
}
