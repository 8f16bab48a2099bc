package arena

import "unsafe"

// DefaultBlockSize is the default size of each arena block (64 KiB).
const DefaultBlockSize = 1 << 16

// DefaultAlignment is the default allocation alignment (native pointer width).
const DefaultAlignment = int(unsafe.Sizeof(uintptr(0)))

// MaxAllocSize is the largest single allocation an arena will attempt.
const MaxAllocSize = 1 << 40

// Allocator supplies and releases the raw buffers backing arena blocks.
// Allocate returns a buffer of exactly size bytes or an error; Deallocate
// releases a buffer previously returned by Allocate. Implementations must
// behave as a matched pair.
type Allocator interface {
	Allocate(size int) ([]byte, error)
	Deallocate(buf []byte)
}

// heapAllocator is the default Allocator backed by the Go heap.
type heapAllocator struct{}

func (heapAllocator) Allocate(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func (heapAllocator) Deallocate([]byte) {}

// Config is the policy bundle for an arena. It is copied at construction and
// immutable for the arena's lifetime.
type Config struct {
	// BlockSize is the size of each block, in bytes. Must be nonzero.
	BlockSize int

	// Alignment is the default alignment for allocations. Must be a nonzero
	// power of two.
	Alignment int

	// FixedSize forbids growing the arena beyond its first block.
	FixedSize bool

	// Allocator supplies the block buffers. Nil selects the Go heap.
	Allocator Allocator
}

// DefaultConfig returns a fresh default configuration: 64 KiB blocks,
// pointer-width alignment, growable, heap-backed.
func DefaultConfig() Config {
	return Config{
		BlockSize: DefaultBlockSize,
		Alignment: DefaultAlignment,
		FixedSize: false,
		Allocator: heapAllocator{},
	}
}

// validate checks the configuration and fills in the default allocator.
func (c *Config) validate() error {
	if c.Alignment <= 0 || !isPowerOfTwo(c.Alignment) {
		return ErrInvalidAlignment
	}
	if c.BlockSize <= 0 {
		return ErrInvalidSize
	}
	if c.Allocator == nil {
		c.Allocator = heapAllocator{}
	}
	return nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// alignForward rounds n up to the next multiple of align.
// align must be a power of two.
func alignForward(n, align int) int {
	mask := align - 1
	return (n + mask) &^ mask
}
