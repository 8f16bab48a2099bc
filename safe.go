package arena

import "sync"

// SafeArena is a mutex-guarded wrapper around Arena for concurrent use.
// Whether an arena is guarded is decided at construction and holds for its
// whole lifetime: every mutating operation runs under one coarse lock.
//
// Checkpoint stack discipline is not enforced across goroutines; overlapping
// checkpoints taken from different goroutines on the same arena are outside
// the supported contract.
type SafeArena struct {
	mu sync.Mutex
	a  *Arena
}

// NewSafeArena creates a guarded arena with the default configuration.
func NewSafeArena() (*SafeArena, error) {
	return NewSafeArenaWithConfig(DefaultConfig())
}

// NewSafeArenaWithConfig creates a guarded arena with a custom configuration.
func NewSafeArenaWithConfig(cfg Config) (*SafeArena, error) {
	a, err := NewArenaWithConfig(cfg)
	if err != nil {
		return nil, err
	}
	return &SafeArena{a: a}, nil
}

// Alloc thread-safely allocates size bytes at the default alignment.
func (s *SafeArena) Alloc(size int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Alloc(size)
}

// AllocAligned thread-safely allocates size bytes at an explicit alignment.
func (s *SafeArena) AllocAligned(size, align int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.AllocAligned(size, align)
}

// AllocZeroed thread-safely allocates size zeroed bytes.
func (s *SafeArena) AllocZeroed(size int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.AllocZeroed(size)
}

// Resize thread-safely resizes an allocation from this arena.
func (s *SafeArena) Resize(old []byte, newSize int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Resize(old, newSize)
}

// Copy thread-safely duplicates src into the arena.
func (s *SafeArena) Copy(src []byte) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Copy(src)
}

// CopyString thread-safely duplicates s into the arena.
func (s *SafeArena) CopyString(str string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.CopyString(str)
}

// Begin thread-safely snapshots the arena's position.
func (s *SafeArena) Begin() Checkpoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Begin()
}

// End thread-safely rewinds the arena to c.
func (s *SafeArena) End(c Checkpoint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.End(c)
}

// Scope runs fn inside a checkpoint and rewinds on every exit path. fn
// runs outside the lock; each arena call it makes locks individually.
func (s *SafeArena) Scope(fn func(*SafeArena) error) error {
	c := s.Begin()
	defer s.End(c)
	return fn(s)
}

// Clear thread-safely resets every block for reuse.
func (s *SafeArena) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Clear()
}

// Destroy thread-safely releases every block and makes the arena terminal.
func (s *SafeArena) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Destroy()
}
