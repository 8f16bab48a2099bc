package arena

// Resize changes the size of an allocation previously returned by this
// arena. old carries its own length; newSize is the requested length.
//
// If old is the most recent allocation carved from the current block (its
// end coincides with the block's cursor) the resize happens in place when
// the block has room, returning a slice at the same address. Otherwise a
// fresh allocation is made and min(len(old), newSize) bytes are copied; in
// that case the old region stays counted as used (orphaned) unless it was
// the most recent allocation, whose vacated bytes are reclaimed.
func (a *Arena) Resize(old []byte, newSize int) ([]byte, error) {
	if a == nil {
		return nil, ErrInvalidArena
	}
	if a.blocks == nil {
		return nil, a.fail(ErrInvalidArena)
	}
	oldSize := len(old)
	if oldSize == 0 || newSize <= 0 {
		return nil, a.fail(ErrInvalidSize)
	}
	if newSize > MaxAllocSize {
		return nil, a.fail(ErrAllocationTooLarge)
	}

	cur := a.current
	blk := &a.blocks[cur]
	off := blk.used - oldSize
	recent := off >= 0 && &blk.buf[off] == &old[0]

	if !recent {
		// Not the last allocation: the old region cannot be reclaimed.
		fresh, err := a.alloc(newSize, a.cfg.Alignment)
		if err != nil {
			return nil, err
		}
		copy(fresh, old)
		return fresh, nil
	}

	if newSize <= oldSize || off+newSize <= len(blk.buf) {
		blk.used = off + newSize
		a.totalUsed += newSize - oldSize
		return blk.buf[off : off+newSize : off+newSize], nil
	}

	if a.cfg.FixedSize {
		return nil, a.fail(ErrOutOfMemory)
	}

	// Move to a fresh allocation, then give the vacated tail back to the old
	// block. alloc may grow the block slice, so go back through the index.
	fresh, err := a.alloc(newSize, a.cfg.Alignment)
	if err != nil {
		return nil, err
	}
	copy(fresh, old)
	a.blocks[cur].used -= oldSize
	a.totalUsed -= oldSize
	return fresh, nil
}
