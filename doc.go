// Package fenwick provides a fixed-size Fenwick tree over int64 values.
//
// A Fenwick tree, or binary indexed tree, stores partial sums keyed by
// the binary representation of each index. Both point updates and
// prefix sums run in O(log n) time while using O(n) memory, which makes
// it a good fit when updates are interleaved with range queries.
//
// Indices are 1-based: the valid element indices of a tree of size n
// are 1..n, and PrefixSum additionally accepts 0 for the empty prefix.
// Operations that receive an invalid index return an error wrapping
// ErrIndexOutOfRange; RangeSum returns ErrInvalidRange when left > right.
// Use errors.Is to tell them apart.
//
// A Tree is not safe for concurrent use. Callers sharing one must
// serialize access to the whole structure.
package fenwick
