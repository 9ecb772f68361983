// Package csvrec decodes tabular byte streams into typed record slices.
//
// Decoding is built on gocsv struct tags. All field values are trimmed of
// surrounding whitespace before type conversion, dates use a single fixed
// ISO format and decimals use base-10 float parsing. Every tagged column
// must be present in the header unless the caller declares it optional;
// empty-value policy stays with the callers, which validate the fields
// their record shape requires non-empty and report the offending source
// row.
package csvrec
