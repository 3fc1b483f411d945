// Package section defines the record structures of the Calvin container and
// their readers: the file header, the recursive data header (provenance)
// tree, metadata triplets, data groups, and data sets with their typed
// column tables.
//
// # Container structure
//
// A Calvin file is laid out as (all integers big-endian):
//
//	┌──────────────────────────────────────────────────────┐
//	│ FileHeader (10 bytes)                                │
//	│  - magic (1) = 59, version (1) = 1                   │
//	│  - group count (4), first group offset (4)           │
//	├──────────────────────────────────────────────────────┤
//	│ DataHeader (variable, recursive)                     │
//	│  - ids, timestamp, locale                            │
//	│  - metadata triplets                                 │
//	│  - parent DataHeaders, depth-first                   │
//	├──────────────────────────────────────────────────────┤
//	│ DataGroup ─┬─ DataSet (schema + row-major cells)     │
//	│            └─ DataSet ...                            │
//	│ DataGroup ... (chained by stored next-group offsets) │
//	└──────────────────────────────────────────────────────┘
//
// Groups are chained by stored absolute offsets, not by physical layout
// order, and each data set records the absolute offset just past its rows.
// Readers in this package trust those stored offsets over any computed
// stride, which keeps the traversal correct on files whose physical and
// logical ordering disagree.
package section
