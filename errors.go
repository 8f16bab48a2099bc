package arena

// Error is an arena error code. The zero value means no error.
//
// Every fallible operation reports failure through its error return and also
// records the code on the arena as its sticky last error (see LastErr).
// Successful calls never clear it.
type Error uint8

const (
	// errNone is the zero code; it is never returned, LastErr maps it to nil.
	errNone Error = iota

	// ErrOutOfMemory means the underlying allocator could not supply memory,
	// or a fixed-size arena was exhausted.
	ErrOutOfMemory

	// ErrInvalidAlignment means a requested alignment was not a power of two.
	ErrInvalidAlignment

	// ErrInvalidSize means a zero or negative size was requested.
	ErrInvalidSize

	// ErrInvalidArena means a nil or destroyed arena was passed.
	ErrInvalidArena

	// ErrArenaNotAllocated means arena construction failed before a usable
	// handle existed (the eager first block could not be acquired).
	ErrArenaNotAllocated

	// ErrAllocationTooLarge means a request exceeded MaxAllocSize.
	ErrAllocationTooLarge
)

// Error returns a human-readable description of the code.
func (e Error) Error() string {
	switch e {
	case errNone:
		return "no error"
	case ErrOutOfMemory:
		return "out of memory"
	case ErrInvalidAlignment:
		return "invalid alignment"
	case ErrInvalidSize:
		return "invalid size"
	case ErrInvalidArena:
		return "invalid arena"
	case ErrArenaNotAllocated:
		return "failed to allocate arena"
	case ErrAllocationTooLarge:
		return "allocation too large"
	default:
		return "unknown error"
	}
}
