package fiberz

import "github.com/google/uuid"

// Handle identifies a fiber in a scheduler's registry. Handles are never
// reused, so a stale handle can't alias a newer fiber.
type Handle struct {
	id uuid.UUID
}

func newHandle() Handle {
	return Handle{id: uuid.New()}
}

func (h Handle) String() string {
	return h.id.String()
}

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool {
	return h.id == uuid.Nil
}
