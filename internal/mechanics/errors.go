package mechanics

import "errors"

// Sentinel errors for precondition failures. Resolvers report what went
// wrong; command handlers translate these into narrative text. No resolver
// mutates state after returning one of these.
var (
	ErrDark           = errors.New("no light present")
	ErrNotVisible     = errors.New("object not visible")
	ErrSealed         = errors.New("object sealed in a closed container")
	ErrNothingSpecial = errors.New("nothing special to see")

	ErrNotContainer  = errors.New("not a container")
	ErrLocked        = errors.New("container locked")
	ErrAlreadyOpen   = errors.New("container already open")
	ErrAlreadyClosed = errors.New("container already closed")
	ErrClosed        = errors.New("container closed")
	ErrFull          = errors.New("container full")
	ErrNotInside     = errors.New("item not in container")

	ErrUntakeable     = errors.New("object cannot be taken")
	ErrAlreadyCarried = errors.New("object already carried")
	ErrNotCarried     = errors.New("object not carried")
	ErrTooHeavy       = errors.New("carrying too much weight")

	ErrUnknownObject = errors.New("unknown object")
)
