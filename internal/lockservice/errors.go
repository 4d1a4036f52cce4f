package lockservice

// Error provides constant error strings to the driver functions.
type Error string

func (e Error) Error() string { return string(e) }

// Constant errors.
// Rule of thumb, all errors start with a small letter and end with no full stop.
const (
	ErrFileAcquired        = Error("file already acquired")
	ErrCantReleaseFile     = Error("file cannot be released, wasn't locked before")
	ErrUnauthorizedAccess  = Error("file cannot be released, unauthorized access")
	ErrCheckAcquireFailure = Error("file is not acquired")
	ErrAlreadyOwner        = Error("owner already holds the lock")
	ErrAlreadyPouncing     = Error("owner is already pouncing on the lock")
	ErrPouncerNotFound     = Error("no such pouncer on the lock")
	ErrPriorityOutOfRange  = Error("pounce priority is out of range")
)

// knownErrors lets transports turn an error string back into its constant.
var knownErrors = []Error{
	ErrFileAcquired,
	ErrCantReleaseFile,
	ErrUnauthorizedAccess,
	ErrCheckAcquireFailure,
	ErrAlreadyOwner,
	ErrAlreadyPouncing,
	ErrPouncerNotFound,
	ErrPriorityOutOfRange,
}

// ParseError returns the constant error whose text is msg.
func ParseError(msg string) (Error, bool) {
	for _, e := range knownErrors {
		if string(e) == msg {
			return e, true
		}
	}
	return "", false
}
