package mempool

import "unsafe"

// Make carves a typed slice of n elements out of a, or returns nil when
// the allocator cannot satisfy the request. The slice shares the arena's
// lifetime: it is valid until the allocator is Reset and must not be
// appended beyond its capacity.
func Make[T any](a Allocator, n int) []T {
	if n <= 0 {
		return nil
	}

	var zero T
	size := int(unsafe.Sizeof(zero))
	align := int(unsafe.Alignof(zero))

	raw := a.Alloc(n*size, align)
	if raw == nil {
		return nil
	}

	return unsafe.Slice((*T)(unsafe.Pointer(&raw[0])), n)
}
