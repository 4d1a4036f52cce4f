package session

import "github.com/oklog/ulid"

// Session captures all necessary parameters necessary to
// describe a session with the lockservice in the lockclient.
type Session interface {
	// SessionID is the unique ID that represents this session.
	SessionID() ulid.ULID
	// ClientID is the ID of the client that will be created when
	// the client is created. It doubles as the lock owner for
	// descriptors that don't name one.
	ClientID() ulid.ULID
}
