// Package buffer provides the fixed-capacity containers used by the
// streaming convolvers: SlidingWindow, a ring with evict-on-overflow
// semantics, and BlockAccumulator, which turns a per-sample stream into
// fixed-size blocks.
//
// Neither type allocates once constructed, so both are safe to drive from a
// real-time audio callback. They are not safe for concurrent use.
package buffer
