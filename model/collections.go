package model

// Collections is the destination model shared by every importer. Each
// importer builds fresh collections for the files it reads and merges them
// in, so a later pass over another source format composes with earlier
// ones instead of replacing them.
//
// Collections is not internally synchronized; callers must not run two
// imports into the same instance concurrently.
type Collections struct {
	StopAreas  *Collection[*StopArea]
	StopPoints *Collection[*StopPoint]
	Calendars  *Collection[*Calendar]
}

// NewCollections returns an empty destination model.
func NewCollections() *Collections {
	return &Collections{
		StopAreas:  NewCollection[*StopArea](),
		StopPoints: NewCollection[*StopPoint](),
		Calendars:  NewCollection[*Calendar](),
	}
}
