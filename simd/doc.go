// Package simd provides the byte and substring search primitives behind the
// prefilters: Memchr, Memchr2, Memchr3 and Memmem.
//
// Portable implementations use SWAR (SIMD within a register), testing eight
// bytes per step with uint64 arithmetic. On amd64 the single-byte search is
// routed to the runtime's vectorised bytes.IndexByte when the CPU reports
// AVX2, as detected through golang.org/x/sys/cpu.
package simd
