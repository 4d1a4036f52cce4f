package lockclient

import (
	"github.com/SystemBuilders/ringlist/internal/lockservice"
	"github.com/oklog/ulid"
)

// Client describes a client that can be used to interact with
// the lockservice. The client offers the user to Acquire a lock,
// Release a lock, and Pounce on any object using its descriptor.
//
// Pouncing queues the caller on a lock that is already held;
// releasing such a lock hands it to the first pouncer in line.
type Client interface {
	// Acquire can be used to acquire a lock on the lockservice.
	Acquire(lockservice.Descriptors) error
	// Release can be used to release a lock on the lockservice.
	Release(lockservice.Descriptors) error
	// CheckAcquired returns the current owner of the lock.
	CheckAcquired(lockservice.Descriptors) (string, error)
	// Pounce queues the owner on an acquired lock with the given priority.
	// Lower priorities are served first.
	Pounce(d lockservice.Descriptors, priority uint) (ulid.ULID, error)
	// Withdraw takes a pouncer off the queue.
	Withdraw(d lockservice.Descriptors, id ulid.ULID) error
	// Pouncers returns the current pouncers on any particular lock.
	Pouncers(lockservice.Descriptors) ([]string, error)
}
