// Package generic reads Calvin (Command Console Generic Data) container
// files: it parses the file header and the recursive data header tree
// eagerly, then walks the data groups and their data sets on demand.
//
// Traversal is driven entirely by the offsets stored in the file. Groups
// are visited in next-group-offset chain order, which may differ from the
// physical layout order, and each data set ends with a seek to its stored
// trailing offset rather than an arithmetic stride. Data groups and data
// sets are released as soon as the caller is done with them, so peak memory
// is bounded by one data set regardless of file size.
//
// Files may be transparently compressed (gzip, zstd, lz4, xz); the stream
// package sniffs the container and supplies a forward-only backend, which
// the forward-marching traversal order never needs to seek backward.
package generic
