package arena

// TotalAllocated returns the sum of all block sizes ever acquired by the
// arena. Zero after Destroy.
func (a *Arena) TotalAllocated() int {
	if a == nil {
		return 0
	}
	return a.totalAllocated
}

// TotalUsed returns the bytes currently counted as live, including
// alignment padding and orphaned resize leftovers.
func (a *Arena) TotalUsed() int {
	if a == nil {
		return 0
	}
	return a.totalUsed
}

// Utilization returns TotalUsed/TotalAllocated, or 0.0 when nothing has
// been allocated.
func (a *Arena) Utilization() float64 {
	if a == nil || a.totalAllocated == 0 {
		return 0
	}
	return float64(a.totalUsed) / float64(a.totalAllocated)
}

// NumBlocks returns the number of blocks in the arena's chain.
func (a *Arena) NumBlocks() int {
	if a == nil {
		return 0
	}
	return len(a.blocks)
}

// BlockSize returns the configured block size.
func (a *Arena) BlockSize() int {
	if a == nil {
		return 0
	}
	return a.cfg.BlockSize
}

// LastErr returns the arena's sticky last error, or nil if no call has
// failed. Failing calls overwrite it; successful calls never clear it.
// A nil arena reports ErrInvalidArena.
func (a *Arena) LastErr() error {
	if a == nil {
		return ErrInvalidArena
	}
	if a.lastErr == errNone {
		return nil
	}
	return a.lastErr
}

// Metrics is a point-in-time snapshot of arena statistics.
type Metrics struct {
	TotalAllocated int     // bytes acquired across all blocks
	TotalUsed      int     // bytes counted as live
	NumBlocks      int     // blocks in the chain
	BlockSize      int     // configured block size
	Utilization    float64 // TotalUsed / TotalAllocated
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() Metrics {
	return Metrics{
		TotalAllocated: a.TotalAllocated(),
		TotalUsed:      a.TotalUsed(),
		NumBlocks:      a.NumBlocks(),
		BlockSize:      a.BlockSize(),
		Utilization:    a.Utilization(),
	}
}

// Thread-safe readings for SafeArena.

// TotalAllocated thread-safely returns the bytes acquired across all blocks.
func (s *SafeArena) TotalAllocated() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.TotalAllocated()
}

// TotalUsed thread-safely returns the bytes counted as live.
func (s *SafeArena) TotalUsed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.TotalUsed()
}

// Utilization thread-safely returns the used-to-allocated ratio.
func (s *SafeArena) Utilization() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Utilization()
}

// NumBlocks thread-safely returns the number of blocks in the chain.
func (s *SafeArena) NumBlocks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.NumBlocks()
}

// BlockSize thread-safely returns the configured block size.
func (s *SafeArena) BlockSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.BlockSize()
}

// LastErr thread-safely returns the sticky last error.
func (s *SafeArena) LastErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.LastErr()
}

// Metrics thread-safely returns a snapshot of arena statistics.
func (s *SafeArena) Metrics() Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}
