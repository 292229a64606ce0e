// Package ring provides a lock-free single-producer/single-consumer ring
// buffer for moving fixed-size items between two goroutines without
// blocking either side.
//
// Exactly one goroutine may push and exactly one may pop; both operations
// are wait-free and return false instead of suspending when the buffer is
// full or empty. This is the sanctioned channel between a control goroutine
// and a deadline-bound processing goroutine.
package ring
