package session

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid"
)

var _ Session = (*SimpleSession)(nil)

// SimpleSession implements a session.
type SimpleSession struct {
	sessionID ulid.ULID
	clientID  ulid.ULID
}

// SessionID returns the sessionID of the SimpleSession.
func (s *SimpleSession) SessionID() ulid.ULID {
	return s.sessionID
}

// ClientID returns the clientID of the SimpleSession.
func (s *SimpleSession) ClientID() ulid.ULID {
	return s.clientID
}

// NewSession returns a new instance of a session with the given parameters.
func NewSession(sessionID, clientID ulid.ULID) Session {
	return &SimpleSession{
		sessionID: sessionID,
		clientID:  clientID,
	}
}

// New returns a session with freshly generated IDs.
func New() Session {
	ms := ulid.Timestamp(time.Now())
	return NewSession(ulid.MustNew(ms, rand.Reader), ulid.MustNew(ms, rand.Reader))
}
