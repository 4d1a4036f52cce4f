package lockservice

import (
	"io"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/SystemBuilders/ringlist/internal/ordered"
	"github.com/oklog/ulid"
	"github.com/rs/zerolog"
)

var _ Config = (*SimpleConfig)(nil)

// SimpleConfig implements Config.
type SimpleConfig struct {
	IPAddr   string
	PortAddr string
}

// IP returns the IP address from SimpleConfig
func (scfg *SimpleConfig) IP() string {
	return scfg.IPAddr
}

// Port returns the port from SimpleConfig.
func (scfg *SimpleConfig) Port() string {
	return scfg.PortAddr
}

// NewSimpleConfig returns a new simple configuration
func NewSimpleConfig(IPAddr, PortAddr string) *SimpleConfig {
	return &SimpleConfig{
		IPAddr:   IPAddr,
		PortAddr: PortAddr,
	}
}

// LockRequest is a struct used by the client to
// communicate to the HTTP server acting as a listener.
type LockRequest struct {
	FileID string `json:"FileID"`
	UserID string `json:"UserID"`
}

// PounceRequest asks to be queued on a held lock.
type PounceRequest struct {
	FileID   string `json:"FileID"`
	UserID   string `json:"UserID"`
	Priority uint   `json:"Priority"`
}

// PounceResponse carries the ID identifying a pouncer.
type PounceResponse struct {
	ID ulid.ULID `json:"ID"`
}

// WithdrawRequest takes a pouncer off a queue.
type WithdrawRequest struct {
	FileID string    `json:"FileID"`
	ID     ulid.ULID `json:"ID"`
}

// CheckAcquireRes is the response to a successful acquire check.
type CheckAcquireRes struct {
	Owner string `json:"owner"`
}

var _ Descriptors = (*SimpleDescriptor)(nil)

// SimpleDescriptor implements the Descriptors interface.
// Many descriptors can be added to this struct and the ID
// can be a combination of all those descriptors.
type SimpleDescriptor struct {
	FileID string
	UserID string
}

// ID represents the distinguishable ID of the descriptor.
func (sd *SimpleDescriptor) ID() string {
	return sd.FileID
}

// Owner represents the distinguishable ID of the entity that
// holds the lock for FileID.
func (sd *SimpleDescriptor) Owner() string {
	return sd.UserID
}

// NewSimpleDescriptor returns a new simple descriptor
func NewSimpleDescriptor(FileID, UserID string) *SimpleDescriptor {
	return &SimpleDescriptor{
		FileID: FileID,
		UserID: UserID,
	}
}

// pouncer is an owner waiting in the queue of a lock.
type pouncer struct {
	id    ulid.ULID
	owner string
}

// lock is the state of a single acquired descriptor.
//
// queue is the header of an ordered list whose members are keyed by
// pouncing priority; waiting maps those members back to who they are.
type lock struct {
	owner   string
	queue   *ordered.Node
	waiting map[*ordered.Node]pouncer
}

func newLock(owner string) *lock {
	return &lock{
		owner:   owner,
		queue:   ordered.NewHeader(),
		waiting: make(map[*ordered.Node]pouncer),
	}
}

// each calls fn for every pouncer in serving order, until fn returns false.
func (l *lock) each(fn func(*ordered.Node, pouncer) bool) {
	it := l.queue.Iterator()
	it.Next()
	for it.HasNext() {
		n, _ := it.Next()
		if !fn(n, l.waiting[n]) {
			return
		}
	}
}

var _ LockService = (*SimpleLockService)(nil)

// SimpleLockService is a lock service that implements LockService.
// It uses a golang map to maintain the locks of the descriptors and
// an ordered list per lock to queue its pouncers.
// It can acquire and release locks and has an in-built logger.
//
// All lists are guarded by mu; none of them is touched without it.
type SimpleLockService struct {
	log     zerolog.Logger
	mu      sync.Mutex
	locks   map[string]*lock
	entropy io.Reader
}

// NewSimpleLockService creates and returns a new lock service ready to use.
func NewSimpleLockService(log zerolog.Logger) *SimpleLockService {
	return &SimpleLockService{
		log:     log,
		locks:   make(map[string]*lock),
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}
}

// Acquire function lets a client acquire a lock on an object.
func (ls *SimpleLockService) Acquire(sd Descriptors) error {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	if _, ok := ls.locks[sd.ID()]; ok {
		ls.
			log.
			Debug().
			Str("descriptor", sd.ID()).
			Msg("can't acquire, already been acquired")
		return ErrFileAcquired
	}
	ls.locks[sd.ID()] = newLock(sd.Owner())
	ls.
		log.
		Debug().
		Str("descriptor", sd.ID()).
		Str("owner", sd.Owner()).
		Msg("locked")
	return nil
}

// Release lets a client release a lock on an object.
//
// If anyone is pouncing on the lock, it passes straight to the
// first pouncer in the queue instead of becoming free.
func (ls *SimpleLockService) Release(sd Descriptors) error {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	l, ok := ls.locks[sd.ID()]
	if !ok {
		ls.
			log.
			Debug().
			Str("descriptor", sd.ID()).
			Msg("can't release, hasn't been acquired")
		return ErrCantReleaseFile
	}
	// Only the entity that posseses the lock for this object
	// is allowed to release the lock
	if l.owner != sd.Owner() {
		ls.
			log.
			Debug().
			Str("descriptor", sd.ID()).
			Msg("can't release, unauthorized access")
		return ErrUnauthorizedAccess
	}

	next, ok := l.queue.First()
	if !ok {
		delete(ls.locks, sd.ID())
		ls.
			log.
			Debug().
			Str("descriptor", sd.ID()).
			Msg("released")
		return nil
	}

	p := l.waiting[next]
	next.Remove()
	delete(l.waiting, next)
	l.owner = p.owner
	ls.
		log.
		Debug().
		Str("descriptor", sd.ID()).
		Str("owner", p.owner).
		Str("pouncer", p.id.String()).
		Msg("released to pouncer")
	return nil
}

// CheckAcquired returns the owner and true if the file is acquired.
func (ls *SimpleLockService) CheckAcquired(sd Descriptors) (string, bool) {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	if l, ok := ls.locks[sd.ID()]; ok {
		ls.
			log.
			Debug().
			Str("descriptor", sd.ID()).
			Msg("checkAcquire success")
		return l.owner, true
	}
	ls.
		log.
		Debug().
		Str("descriptor", sd.ID()).
		Msg("checkAcquire failure")
	return "", false
}

// CheckReleased returns true if the file is released.
func (ls *SimpleLockService) CheckReleased(sd Descriptors) bool {
	_, acquired := ls.CheckAcquired(sd)
	return !acquired
}

// Pounce queues the owner of sd on the lock of sd.
//
// Queue ordinals are priority+1, since ordinal 0 belongs to the
// queue's header. Pouncing on a free lock acquires it and returns the
// zero ULID, as there is nothing to withdraw.
func (ls *SimpleLockService) Pounce(sd Descriptors, priority uint) (ulid.ULID, error) {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	l, ok := ls.locks[sd.ID()]
	if !ok {
		ls.locks[sd.ID()] = newLock(sd.Owner())
		ls.
			log.
			Debug().
			Str("descriptor", sd.ID()).
			Str("owner", sd.Owner()).
			Msg("pounced on a free lock, locked")
		return ulid.ULID{}, nil
	}
	if l.owner == sd.Owner() {
		return ulid.ULID{}, ErrAlreadyOwner
	}
	if priority == math.MaxUint {
		return ulid.ULID{}, ErrPriorityOutOfRange
	}

	pouncing := false
	l.each(func(_ *ordered.Node, p pouncer) bool {
		pouncing = p.owner == sd.Owner()
		return !pouncing
	})
	if pouncing {
		return ulid.ULID{}, ErrAlreadyPouncing
	}

	id, err := ulid.New(ulid.Timestamp(time.Now()), ls.entropy)
	if err != nil {
		return ulid.ULID{}, err
	}

	n := ordered.New(priority + 1)
	n.Insert(l.queue)
	l.waiting[n] = pouncer{id: id, owner: sd.Owner()}
	ls.
		log.
		Debug().
		Str("descriptor", sd.ID()).
		Str("owner", sd.Owner()).
		Uint("priority", priority).
		Str("pouncer", id.String()).
		Msg("pounced")
	return id, nil
}

// Withdraw removes the pouncer with the given ID from the queue of sd.
func (ls *SimpleLockService) Withdraw(sd Descriptors, id ulid.ULID) error {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	l, ok := ls.locks[sd.ID()]
	if !ok {
		return ErrPouncerNotFound
	}

	var found *ordered.Node
	l.each(func(n *ordered.Node, p pouncer) bool {
		if p.id == id {
			found = n
		}
		return found == nil
	})
	if found == nil {
		return ErrPouncerNotFound
	}

	found.Remove()
	delete(l.waiting, found)
	ls.
		log.
		Debug().
		Str("descriptor", sd.ID()).
		Str("pouncer", id.String()).
		Msg("withdrawn")
	return nil
}

// Pouncers returns the owners queued on sd in serving order.
func (ls *SimpleLockService) Pouncers(sd Descriptors) []string {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	l, ok := ls.locks[sd.ID()]
	if !ok {
		return nil
	}
	var owners []string
	l.each(func(_ *ordered.Node, p pouncer) bool {
		owners = append(owners, p.owner)
		return true
	})
	return owners
}
