// Package geo converts projected planar coordinates into geographic
// longitude/latitude, keeping the concrete projection library behind a
// narrow interface so importers never depend on it directly.
package geo
