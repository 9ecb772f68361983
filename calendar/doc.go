// Package calendar imports service calendars and their date exceptions.
//
// calendar.txt is required and read strictly: a malformed row or a
// duplicate service_id fails the import. calendar_dates.txt is optional;
// when present, each exception is appended to its service's date sequence.
// An exception referencing an unknown service_id is tolerable noise and is
// logged and dropped rather than failing the run, unlike the strict
// stop-to-area resolution in package naptan.
package calendar
