// Package coll provides clone capabilities for collection families:
// slices, owned byte and string copies, hash maps and sets, double-ended
// queues, ordered sets and maps backed by a B-tree, linked lists, and
// binary heaps.
//
// Every collection combinator takes its element capabilities at AnySpeed
// and yields an AnySpeed capability: rebuilding a collection is never
// claimed to be constant- or log-time, whatever the element tier. Map
// combinators clone keys and values independently. Nil slices and maps
// clone to nil.
//
// The one exception to rebuilding is the copy-on-write B-tree clone, which
// is exposed as a Mixed capability precisely because the two trees keep
// sharing nodes until one of them is written.
//
// Importing this package corresponds to the allocation-aware feature gate.
package coll
