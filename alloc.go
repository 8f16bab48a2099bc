package arena

import "unsafe"

// New allocates a zeroed T inside the arena, aligned for T. The pointer is
// valid until the arena is cleared, rewound past it, or destroyed.
func New[T any](a *Arena) (*T, error) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return new(T), nil
	}
	b, err := a.AllocAligned(size, int(unsafe.Alignof(zero)))
	if err != nil {
		return nil, err
	}
	clear(b)
	return (*T)(unsafe.Pointer(&b[0])), nil
}

// MakeSlice allocates a zeroed slice of n elements of type T inside the
// arena, aligned for T.
func MakeSlice[T any](a *Arena, n int) ([]T, error) {
	if a == nil {
		return nil, ErrInvalidArena
	}
	var zero T
	elem := int(unsafe.Sizeof(zero))
	if elem == 0 {
		if n <= 0 {
			return nil, a.fail(ErrInvalidSize)
		}
		return make([]T, n), nil
	}
	if n > MaxAllocSize/elem {
		return nil, a.fail(ErrAllocationTooLarge)
	}
	b, err := a.AllocAligned(elem*n, int(unsafe.Alignof(zero)))
	if err != nil {
		return nil, err
	}
	clear(b)
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n), nil
}

// SafeNew is New against a SafeArena, performed under its lock.
func SafeNew[T any](s *SafeArena) (*T, error) {
	if s == nil {
		return nil, ErrInvalidArena
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return New[T](s.a)
}

// SafeMakeSlice is MakeSlice against a SafeArena, performed under its lock.
func SafeMakeSlice[T any](s *SafeArena, n int) ([]T, error) {
	if s == nil {
		return nil, ErrInvalidArena
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return MakeSlice[T](s.a, n)
}
