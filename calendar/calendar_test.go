package calendar

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/transit-model/model"
)

const calendarContent = `service_id,monday,tuesday,wednesday,thursday,friday,saturday,sunday,start_date,end_date
weekday,1,1,1,1,1,0,0,2020-01-01,2020-12-31
weekend,0,0,0,0,0,1,1,2020-01-01,2020-12-31
`

func TestReadCalendars(t *testing.T) {
	calendars, err := readCalendars(strings.NewReader(calendarContent))
	require.NoError(t, err)
	require.Equal(t, 2, calendars.Len())

	weekday, ok := calendars.Get("weekday")
	require.True(t, ok)
	assert.True(t, weekday.Monday)
	assert.False(t, weekday.Saturday)
	assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), weekday.StartDate)
	assert.Equal(t, time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC), weekday.EndDate)

	weekend, ok := calendars.Get("weekend")
	require.True(t, ok)
	assert.True(t, weekend.Sunday)
	assert.False(t, weekend.Friday)
}

func TestReadCalendars_DuplicateServiceFails(t *testing.T) {
	content := `service_id,monday,tuesday,wednesday,thursday,friday,saturday,sunday,start_date,end_date
weekday,1,1,1,1,1,0,0,2020-01-01,2020-12-31
weekday,1,1,1,1,1,0,0,2020-01-01,2020-12-31
`
	_, err := readCalendars(strings.NewReader(content))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weekday")
}

func TestReadCalendars_MissingServiceIDFails(t *testing.T) {
	content := `service_id,monday,tuesday,wednesday,thursday,friday,saturday,sunday,start_date,end_date
,1,1,1,1,1,0,0,2020-01-01,2020-12-31
`
	_, err := readCalendars(strings.NewReader(content))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "service_id")
}

func TestReadCalendars_MissingDateColumnsFail(t *testing.T) {
	content := `service_id,monday,tuesday,wednesday,thursday,friday,saturday,sunday
weekday,1,1,1,1,1,0,0
`
	_, err := readCalendars(strings.NewReader(content))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start_date")
	assert.Contains(t, err.Error(), "end_date")
}

func TestApplyCalendarDates(t *testing.T) {
	calendars, err := readCalendars(strings.NewReader(calendarContent))
	require.NoError(t, err)

	content := `service_id,date,exception_type
weekday,2020-05-01,2
weekday,2020-05-09,1
unknown,2020-05-01,1
weekend,2020-12-25,2
`
	warnings := NewWarningAggregator(zerolog.Nop())
	require.NoError(t, applyCalendarDates(strings.NewReader(content), calendars, warnings))

	// The orphan record is dropped; valid records stay untouched.
	weekday, _ := calendars.Get("weekday")
	require.Len(t, weekday.Dates, 2)
	assert.Equal(t, model.ExceptionRemoved, weekday.Dates[0].ExceptionType)
	assert.Equal(t, time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC), weekday.Dates[0].Date)
	assert.Equal(t, model.ExceptionAdded, weekday.Dates[1].ExceptionType)

	weekend, _ := calendars.Get("weekend")
	require.Len(t, weekend.Dates, 1)

	assert.Equal(t, 1, warnings.warnings[WarningServiceNotFound].count)
	assert.Equal(t, []string{"unknown"}, warnings.warnings[WarningServiceNotFound].examples)
}

func TestApplyCalendarDates_MalformedRowFails(t *testing.T) {
	calendars, err := readCalendars(strings.NewReader(calendarContent))
	require.NoError(t, err)

	content := `service_id,date,exception_type
weekday,2020-05-01,3
`
	warnings := NewWarningAggregator(zerolog.Nop())
	err = applyCalendarDates(strings.NewReader(content), calendars, warnings)
	require.Error(t, err)
}

func writeCalendarDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestRead(t *testing.T) {
	dir := writeCalendarDir(t, map[string]string{
		CalendarFile: calendarContent,
		CalendarDatesFile: `service_id,date,exception_type
weekday,2020-05-01,2
`,
	})

	collections := model.NewCollections()
	require.NoError(t, Read(dir, collections, zerolog.Nop()))
	require.Equal(t, 2, collections.Calendars.Len())

	weekday, ok := collections.Calendars.Get("weekday")
	require.True(t, ok)
	require.Len(t, weekday.Dates, 1)
}

func TestRead_MissingExceptionsFileIsNotAnError(t *testing.T) {
	dir := writeCalendarDir(t, map[string]string{CalendarFile: calendarContent})

	collections := model.NewCollections()
	require.NoError(t, Read(dir, collections, zerolog.Nop()))
	assert.Equal(t, 2, collections.Calendars.Len())
}

func TestRead_MissingCalendarFileFails(t *testing.T) {
	dir := t.TempDir()

	err := Read(dir, model.NewCollections(), zerolog.Nop())
	require.Error(t, err)
}

func TestRead_MergeCollisionFails(t *testing.T) {
	dir := writeCalendarDir(t, map[string]string{CalendarFile: calendarContent})

	collections := model.NewCollections()
	require.NoError(t, collections.Calendars.Add(&model.Calendar{ServiceID: "weekday"}))

	err := Read(dir, collections, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weekday")
}
