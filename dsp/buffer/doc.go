// Package buffer provides sample-buffer ownership types for real-time
// processing: a reusable float64 Buffer, a sync.Pool-backed Pool for
// allocation-free steady state, and Multi, a multi-channel buffer manager
// whose channels can be resized from a control goroutine while audio
// processing is quiesced.
package buffer
