// Package model holds the in-memory transit reference model: the entity
// types shared by every importer and the identifier-indexed collections
// they are stored in.
//
// Collections enforce identifier uniqueness on insert and on merge. This is
// deliberate: identifiers are the join key for every downstream reference,
// and an undetected duplicate would corrupt cross-references silently.
package model
