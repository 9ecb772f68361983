package calendar

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/theoremus-urban-solutions/transit-model/csvrec"
	"github.com/theoremus-urban-solutions/transit-model/model"
)

// Fixed file names inside a calendar source directory.
const (
	CalendarFile      = "calendar.txt"
	CalendarDatesFile = "calendar_dates.txt"
)

type calendarRecord struct {
	ServiceID string      `csv:"service_id"`
	Monday    bool        `csv:"monday"`
	Tuesday   bool        `csv:"tuesday"`
	Wednesday bool        `csv:"wednesday"`
	Thursday  bool        `csv:"thursday"`
	Friday    bool        `csv:"friday"`
	Saturday  bool        `csv:"saturday"`
	Sunday    bool        `csv:"sunday"`
	StartDate csvrec.Date `csv:"start_date"`
	EndDate   csvrec.Date `csv:"end_date"`
}

type calendarDateRecord struct {
	ServiceID     string        `csv:"service_id"`
	Date          csvrec.Date   `csv:"date"`
	ExceptionType exceptionCode `csv:"exception_type"`
}

// exceptionCode decodes the numeric exception_type column: 1 adds the date
// to service, 2 removes it.
type exceptionCode model.ExceptionType

func (e *exceptionCode) UnmarshalCSV(value string) error {
	switch value {
	case "1":
		*e = exceptionCode(model.ExceptionAdded)
	case "2":
		*e = exceptionCode(model.ExceptionRemoved)
	default:
		return fmt.Errorf("invalid exception_type %q, expected 1 or 2", value)
	}
	return nil
}

// readCalendars decodes the base calendar records into a collection keyed
// by service_id. Any decode or duplicate-identifier error fails the read.
func readCalendars(r io.Reader) (*model.Collection[*model.Calendar], error) {
	records, err := csvrec.ReadAll[calendarRecord](r)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", CalendarFile, err)
	}
	calendars := model.NewCollection[*model.Calendar]()
	for i, record := range records {
		if record.ServiceID == "" {
			return nil, fmt.Errorf("%s row %d: missing service_id", CalendarFile, csvrec.Row(i))
		}
		calendar := &model.Calendar{
			ServiceID: record.ServiceID,
			Monday:    record.Monday,
			Tuesday:   record.Tuesday,
			Wednesday: record.Wednesday,
			Thursday:  record.Thursday,
			Friday:    record.Friday,
			Saturday:  record.Saturday,
			Sunday:    record.Sunday,
			StartDate: record.StartDate.Time,
			EndDate:   record.EndDate.Time,
		}
		if err := calendars.Add(calendar); err != nil {
			return nil, fmt.Errorf("%s row %d: %w", CalendarFile, csvrec.Row(i), err)
		}
	}
	return calendars, nil
}

// applyCalendarDates appends each exception record to its service's date
// sequence. A record referencing an unknown service_id is skipped with a
// warning; a malformed row still fails the read, since a row the decoder
// cannot parse points at a structural problem with the file.
func applyCalendarDates(r io.Reader, calendars *model.Collection[*model.Calendar], warnings *WarningAggregator) error {
	records, err := csvrec.ReadAll[calendarDateRecord](r)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", CalendarDatesFile, err)
	}
	for _, record := range records {
		calendar, ok := calendars.Get(record.ServiceID)
		if !ok {
			warnings.Add(WarningServiceNotFound, record.ServiceID)
			continue
		}
		calendar.Dates = append(calendar.Dates, model.CalendarDate{
			Date:          record.Date.Time,
			ExceptionType: model.ExceptionType(record.ExceptionType),
		})
	}
	return nil
}

// Read imports calendar.txt and, when present, calendar_dates.txt from dir
// and merges the calendars into c. A missing calendar_dates.txt is not an
// error, the exceptions file is optional.
func Read(dir string, c *model.Collections, logger zerolog.Logger) error {
	logger.Info().Str("file", CalendarFile).Msg("reading calendar file")
	f, err := os.Open(filepath.Join(dir, CalendarFile))
	if err != nil {
		return fmt.Errorf("opening %s: %w", CalendarFile, err)
	}
	calendars, err := readCalendars(f)
	f.Close()
	if err != nil {
		return err
	}

	df, err := os.Open(filepath.Join(dir, CalendarDatesFile))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Info().Str("file", CalendarDatesFile).Msg("no calendar exceptions file, skipping")
	case err != nil:
		return fmt.Errorf("opening %s: %w", CalendarDatesFile, err)
	default:
		logger.Info().Str("file", CalendarDatesFile).Msg("reading calendar exceptions file")
		warnings := NewWarningAggregator(logger)
		applyErr := applyCalendarDates(df, calendars, warnings)
		df.Close()
		if applyErr != nil {
			return applyErr
		}
		warnings.LogAll()
	}

	return c.Calendars.Merge(calendars)
}
