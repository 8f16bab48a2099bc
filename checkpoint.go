package arena

// Checkpoint is an opaque snapshot of an arena's allocation cursor. Begin
// takes one, End rewinds to it, discarding every allocation made in between.
// The zero Checkpoint is a valid sentinel: End on it is a no-op.
//
// Checkpoints nest with stack discipline: they must be ended in the reverse
// order they were begun. Ending out of order, or ending the same checkpoint
// twice with intervening allocations, is the caller's bug and leaves the
// arena's bookkeeping undefined. Scope is the misuse-proof form.
type Checkpoint struct {
	block     int
	used      int
	totalUsed int
	valid     bool
}

// Begin snapshots the arena's current position without mutating anything.
// On a nil or destroyed arena it returns the sentinel Checkpoint.
func (a *Arena) Begin() Checkpoint {
	if a == nil || a.blocks == nil {
		return Checkpoint{}
	}
	return Checkpoint{
		block:     a.current,
		used:      a.blocks[a.current].used,
		totalUsed: a.totalUsed,
		valid:     true,
	}
}

// End rewinds the arena to c: the cursor moves back to the snapshotted
// block, that block's offset and the arena's used total are restored.
// Allocations made after the snapshot are discarded, including spills into
// later blocks; those blocks keep their offsets until the block-reuse scan
// passes over them on a later allocation.
func (a *Arena) End(c Checkpoint) {
	if a == nil || a.blocks == nil || !c.valid {
		return
	}
	a.current = c.block
	a.blocks[c.block].used = c.used
	a.totalUsed = c.totalUsed
}

// Scope runs fn inside a checkpoint and rewinds on every exit path,
// including panics. Allocations fn makes from the arena do not survive the
// call.
func (a *Arena) Scope(fn func(*Arena) error) error {
	c := a.Begin()
	defer a.End(c)
	return fn(a)
}
