// Package value interprets the raw bytes of a metadata triplet according to
// its MIME type tag.
//
// Nine logical types exist: ASCII text, plain (wide) text, and the seven
// numeric widths. On disk every numeric value sits in a 4-byte big-endian
// container regardless of its logical width; the narrow types are recovered
// from the low-order bytes of that container rather than read at their own
// width.
//
// Two decode modes are provided: Decode returns the narrow native Go value,
// and DecodeToString renders any value as text (numerics in decimal, wide
// text re-encoded to a Go string).
//
// The tag table reproduces the historical affyio mapping verbatim,
// including its known quirk: the text/x-calvin-unsigned-integer-16 tag
// resolves to the signed Int16 type. Fixing that silently would change
// decoded values on real files, so the literal table is kept as documented
// behavior. Unrecognized tags are not fatal: the value decodes with the
// float32 fallback and errs.ErrUnknownMIMEType is returned as a diagnostic.
package value
