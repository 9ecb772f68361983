// Package naptan imports NaPTAN stop reference data.
// https://en.wikipedia.org/wiki/NaPTAN
//
// A NaPTAN export is a zip archive holding three CSV entries: stop areas
// (with British National Grid easting/northing, reprojected to WGS84 on
// read), the stop-to-area membership file, and the stops themselves
// (already geographic at source). A stop whose code has no membership
// entry fails the import; stops and areas are only merged into the
// destination model once all three entries were read successfully.
package naptan
