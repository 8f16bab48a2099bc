// Package arena implements a block-chained bump allocator (memory arena)
// with checkpoint-based temporary scopes.
//
// # Overview
//
// An arena hands out sequentially carved regions from pre-acquired memory
// blocks and releases them only in bulk: by rewinding to a checkpoint, by
// clearing, or by destroying the arena. There is no per-object free. This
// suits workloads that group allocations by lifetime:
//
//   - Request-scoped allocations in servers
//   - Per-frame or per-pass scratch memory
//   - Parsers and other tree builders with batch teardown
//
// # Basic Usage
//
//	a, err := arena.NewArena()
//	if err != nil {
//		// handle construction failure
//	}
//	defer a.Destroy()
//
//	// Allocate raw bytes
//	buf, _ := a.Alloc(1024)
//
//	// Allocate typed values
//	ptr, _ := arena.New[MyStruct](a)
//	nums, _ := arena.MakeSlice[int](a, 100)
//
//	// Reuse all blocks at once
//	a.Clear()
//
// # Temporary Scopes
//
// Begin snapshots the arena's position; End rewinds to it, discarding every
// allocation made in between. Nested checkpoints must be ended in reverse
// order of beginning. Scope packages the pairing with a defer so the rewind
// happens on every exit path:
//
//	err := a.Scope(func(a *arena.Arena) error {
//		tmp, _ := a.Alloc(4096) // gone after Scope returns
//		return process(tmp)
//	})
//
// # Configuration
//
// DefaultConfig returns 64 KiB blocks, pointer-width alignment, a growable
// chain and heap-backed buffers. Adjust the copy before construction:
//
//	cfg := arena.DefaultConfig()
//	cfg.BlockSize = 1 << 20
//	cfg.FixedSize = true // never grow past the first block
//	a, err := arena.NewArenaWithConfig(cfg)
//
// A custom Allocator can supply block buffers from somewhere other than the
// Go heap; Destroy hands every buffer back to it.
//
// # Errors
//
// Fallible operations return a sentinel error (ErrOutOfMemory,
// ErrInvalidSize, ...) and record it as the arena's sticky last error,
// readable through LastErr. Successful calls never clear it.
//
// # Thread Safety
//
// Arena is not goroutine-safe. SafeArena wraps every operation in one
// coarse mutex; pick it at construction with NewSafeArena:
//
//	s, err := arena.NewSafeArena()
//	defer s.Destroy()
//	buf, _ := s.Alloc(1024)
//	ptr, _ := arena.SafeNew[MyStruct](s)
//
// # Memory Layout
//
// Blocks default to 64 KiB. When the current block cannot hold a request
// the arena reuses a later block in its chain or links in a new one; a
// request larger than the block size gets a block of its own, rounded up to
// a 4096-byte boundary. Blocks persist across Clear and rewinds for reuse
// and are only released by Destroy.
package arena
