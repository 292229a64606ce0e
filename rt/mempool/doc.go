// Package mempool provides fixed-capacity bump-pointer arenas for keeping
// allocation bounded and non-blocking near the audio path.
//
// [Pool] is the mutex-guarded variant for control-context and warm-up
// allocation. [AtomicPool] reserves memory with a single atomic add and is
// safe to reach from a deadline-bound goroutine. Both hand out sub-slices
// of one pre-allocated arena and support only whole-arena Reset; there is
// no per-allocation free. Exhaustion is reported as a nil slice, never as
// an error value or panic, so the hot path stays branch-cheap.
//
// [Make] carves typed slices out of any [Allocator], which lets pre-sized
// containers live entirely inside an arena.
package mempool
