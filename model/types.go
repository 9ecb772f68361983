package model

import "time"

// Coord is a geographic coordinate on the WGS84 ellipsoid, longitude first.
type Coord struct {
	Lon float64
	Lat float64
}

// ExceptionType marks a calendar date as added to or removed from service.
type ExceptionType int

const (
	ExceptionAdded   ExceptionType = 1
	ExceptionRemoved ExceptionType = 2
)

// CalendarDate is a single exception applied to a service calendar.
type CalendarDate struct {
	Date          time.Time
	ExceptionType ExceptionType
}

// Calendar is the operating pattern of one service, identified by its
// service_id. Dates holds the exceptions applied on top of the weekly
// pattern, in the order they were read.
type Calendar struct {
	ServiceID string
	Monday    bool
	Tuesday   bool
	Wednesday bool
	Thursday  bool
	Friday    bool
	Saturday  bool
	Sunday    bool
	StartDate time.Time
	EndDate   time.Time
	Dates     []CalendarDate
}

func (c *Calendar) ID() string { return c.ServiceID }

// StopArea is a named group of stop points sharing one location.
type StopArea struct {
	Code  string
	Name  string
	Coord Coord
}

func (s *StopArea) ID() string { return s.Code }

// StopPoint is a single boarding position, identified by its ATCO code.
// StopAreaCode references the StopArea the point belongs to.
type StopPoint struct {
	Code         string
	Name         string
	Coord        Coord
	StopAreaCode string
	Platform     string
}

func (s *StopPoint) ID() string { return s.Code }
