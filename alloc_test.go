package arena

import (
	"errors"
	"testing"
	"unsafe"
)

func TestNewTyped(t *testing.T) {
	a := testArena(t, 1024)

	p, err := New[int64](a)
	if err != nil {
		t.Fatalf("New[int64] failed: %v", err)
	}
	if *p != 0 {
		t.Errorf("New[int64] = %d, want zeroed", *p)
	}
	*p = 42
	if *p != 42 {
		t.Errorf("stored value = %d, want 42", *p)
	}
	if uintptr(unsafe.Pointer(p))%unsafe.Alignof(int64(0)) != 0 {
		t.Errorf("New[int64] pointer %p not aligned for int64", p)
	}
}

func TestNewTypedStruct(t *testing.T) {
	type header struct {
		id    uint64
		flags uint32
		tag   [3]byte
	}
	a := testArena(t, 1024)

	h, err := New[header](a)
	if err != nil {
		t.Fatalf("New[header] failed: %v", err)
	}
	if h.id != 0 || h.flags != 0 || h.tag != [3]byte{} {
		t.Errorf("New[header] not zeroed: %+v", *h)
	}
	if a.TotalUsed() < int(unsafe.Sizeof(header{})) {
		t.Errorf("TotalUsed = %d, want at least %d", a.TotalUsed(), unsafe.Sizeof(header{}))
	}
}

func TestNewZeroSized(t *testing.T) {
	a := testArena(t, 1024)

	p, err := New[struct{}](a)
	if err != nil {
		t.Fatalf("New[struct{}] failed: %v", err)
	}
	if p == nil {
		t.Error("New[struct{}] returned nil pointer")
	}
	if a.TotalUsed() != 0 {
		t.Errorf("zero-sized New consumed %d bytes", a.TotalUsed())
	}
}

func TestMakeSlice(t *testing.T) {
	a := testArena(t, 1024)

	s, err := MakeSlice[int32](a, 10)
	if err != nil {
		t.Fatalf("MakeSlice[int32] failed: %v", err)
	}
	if len(s) != 10 {
		t.Errorf("MakeSlice length = %d, want 10", len(s))
	}
	for i, v := range s {
		if v != 0 {
			t.Errorf("element %d = %d, want zeroed", i, v)
		}
	}
	for i := range s {
		s[i] = int32(i * 2)
	}
	if s[9] != 18 {
		t.Errorf("s[9] = %d, want 18", s[9])
	}
}

func TestMakeSliceInvalid(t *testing.T) {
	a := testArena(t, 1024)

	if _, err := MakeSlice[int](a, 0); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("MakeSlice(0) error = %v, want ErrInvalidSize", err)
	}
	if _, err := MakeSlice[int](a, -5); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("MakeSlice(-5) error = %v, want ErrInvalidSize", err)
	}
	if _, err := MakeSlice[int64](a, MaxAllocSize); !errors.Is(err, ErrAllocationTooLarge) {
		t.Errorf("huge MakeSlice error = %v, want ErrAllocationTooLarge", err)
	}
	if _, err := MakeSlice[int](nil, 4); !errors.Is(err, ErrInvalidArena) {
		t.Errorf("MakeSlice(nil arena) error = %v, want ErrInvalidArena", err)
	}
}

func TestSafeTypedHelpers(t *testing.T) {
	s, err := NewSafeArena()
	if err != nil {
		t.Fatalf("NewSafeArena failed: %v", err)
	}
	defer s.Destroy()

	p, err := SafeNew[uint64](s)
	if err != nil {
		t.Fatalf("SafeNew failed: %v", err)
	}
	*p = 7

	sl, err := SafeMakeSlice[byte](s, 32)
	if err != nil {
		t.Fatalf("SafeMakeSlice failed: %v", err)
	}
	if len(sl) != 32 {
		t.Errorf("SafeMakeSlice length = %d, want 32", len(sl))
	}
	if *p != 7 {
		t.Errorf("*p = %d, want 7", *p)
	}

	if _, err := SafeNew[int](nil); !errors.Is(err, ErrInvalidArena) {
		t.Errorf("SafeNew(nil) error = %v, want ErrInvalidArena", err)
	}
}
