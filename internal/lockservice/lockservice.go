package lockservice

import "github.com/oklog/ulid"

// LockService describes a lock service component that enables
// maintaining a set of locks. This service is a standalone component
// that can be implemented on any server component, distributed or not.
type LockService interface {
	// Acquire allows the service to set a lock on the given descriptors.
	// An error is generated if the same isn't possible for any reason,
	// including already existing locks on the descriptor.
	Acquire(Descriptors) error
	// Release allows the service to release the lock on the given descriptors.
	// An error is generated if the same isn't possible for any reason,
	// including releasing locks on non-acquired descriptors.
	Release(Descriptors) error
	// CheckAcquired checks whether a lock has been acquired on the given descriptor.
	// The function returns true if the lock has been acquired on the component.
	// It also returns the owner of the lock on query.
	CheckAcquired(Descriptors) (string, bool)
	// CheckReleased checks whether a lock has been released (or not acquired) on the
	// given component. Returns true if there are no locks on the descriptor.
	CheckReleased(Descriptors) bool
	// Pounce queues the descriptor's owner for a lock that is already held.
	// Pouncers with a lower priority value are served first, pouncers with
	// the same priority in the order they pounced. Pouncing on a free lock
	// acquires it right away and returns the zero ULID, since no pouncer
	// was queued.
	Pounce(d Descriptors, priority uint) (ulid.ULID, error)
	// Withdraw takes a pouncer off the queue of the lock.
	Withdraw(d Descriptors, id ulid.ULID) error
	// Pouncers returns the owners queued on a lock, in the order they
	// will be served.
	Pouncers(Descriptors) []string
}

// Descriptors describe the type of data that a lock acquiring component must describe.
type Descriptors interface {
	ID() string
	Owner() string
}

// Config describes the configuration for the lockservice to run on.
type Config interface {
	// IP provides the IP address where the server is intended to run.
	IP() string
	// Port provides the port where the server is supposed to run.
	Port() string
}
