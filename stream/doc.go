// Package stream provides the two byte-stream backends the Calvin decoder
// runs on: a random-access stream over an uncompressed byte source, and a
// forward-only stream over a transparently decompressed one.
//
// Both backends implement the Reader interface and produce byte-identical
// decode results for logically identical content. The forward-only backend
// implements SeekTo by consuming and discarding bytes, so it must never be
// asked to seek backward; the traversal order of the decoder guarantees this
// by construction, and a backward request fails with errs.ErrBackwardSeek.
//
// Transport compression is detected from the leading magic bytes of the
// source. Gzip, Zstandard, LZ4 (frame) and XZ containers are recognized;
// anything else is treated as an uncompressed Calvin file.
package stream
