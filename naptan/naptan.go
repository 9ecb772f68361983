package naptan

import (
	"archive/zip"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/theoremus-urban-solutions/transit-model/csvrec"
	"github.com/theoremus-urban-solutions/transit-model/geo"
	"github.com/theoremus-urban-solutions/transit-model/model"
)

// Fixed entry names inside a NaPTAN archive.
const (
	StopAreasFile   = "StopAreas.csv"
	StopsInAreaFile = "StopsInArea.csv"
	StopsFile       = "Stops.csv"
)

type stopAreaRecord struct {
	StopAreaCode string  `csv:"StopAreaCode"`
	Name         string  `csv:"Name"`
	Easting      float64 `csv:"Easting"`
	Northing     float64 `csv:"Northing"`
}

type stopInAreaRecord struct {
	AtcoCode     string `csv:"AtcoCode"`
	StopAreaCode string `csv:"StopAreaCode"`
}

type stopRecord struct {
	AtcoCode  string  `csv:"ATCOCode"`
	Name      string  `csv:"CommonName"`
	Longitude float64 `csv:"Longitude"`
	Latitude  float64 `csv:"Latitude"`
	Indicator string  `csv:"Indicator"`
}

// readStopAreas decodes StopAreas.csv records, projecting each
// easting/northing pair to a geographic coordinate. Any decode, projection
// or duplicate-identifier error fails the whole read.
func readStopAreas(r io.Reader, proj geo.Projector) (*model.Collection[*model.StopArea], error) {
	records, err := csvrec.ReadAll[stopAreaRecord](r)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", StopAreasFile, err)
	}
	areas := model.NewCollection[*model.StopArea]()
	for i, record := range records {
		if record.StopAreaCode == "" {
			return nil, fmt.Errorf("%s row %d: missing StopAreaCode", StopAreasFile, csvrec.Row(i))
		}
		coord, err := proj.Project(record.Easting, record.Northing)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", StopAreasFile, csvrec.Row(i), err)
		}
		area := &model.StopArea{
			Code:  record.StopAreaCode,
			Name:  record.Name,
			Coord: coord,
		}
		if err := areas.Add(area); err != nil {
			return nil, fmt.Errorf("%s row %d: %w", StopAreasFile, csvrec.Row(i), err)
		}
	}
	return areas, nil
}

// readStopsInArea builds the stop code to area code membership mapping.
// Duplicate stop codes overwrite, last record wins: the source file is
// taken as authoritative per its last membership record for a stop.
func readStopsInArea(r io.Reader) (map[string]string, error) {
	records, err := csvrec.ReadAll[stopInAreaRecord](r)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", StopsInAreaFile, err)
	}
	stopsInArea := make(map[string]string, len(records))
	for i, record := range records {
		if record.AtcoCode == "" {
			return nil, fmt.Errorf("%s row %d: missing AtcoCode", StopsInAreaFile, csvrec.Row(i))
		}
		stopsInArea[record.AtcoCode] = record.StopAreaCode
	}
	return stopsInArea, nil
}

// readStops decodes Stops.csv records and resolves each stop's owning area
// through the membership mapping. A stop with no membership entry is
// structurally invalid reference data and fails the whole read.
func readStops(r io.Reader, stopsInArea map[string]string) (*model.Collection[*model.StopPoint], error) {
	records, err := csvrec.ReadAll[stopRecord](r, "Indicator")
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", StopsFile, err)
	}
	stopPoints := model.NewCollection[*model.StopPoint]()
	for i, record := range records {
		areaCode, ok := stopsInArea[record.AtcoCode]
		if !ok {
			return nil, fmt.Errorf("no stop area found for stop point %q", record.AtcoCode)
		}
		stopPoint := &model.StopPoint{
			Code:         record.AtcoCode,
			Name:         record.Name,
			Coord:        model.Coord{Lon: record.Longitude, Lat: record.Latitude},
			StopAreaCode: areaCode,
			Platform:     record.Indicator,
		}
		if err := stopPoints.Add(stopPoint); err != nil {
			return nil, fmt.Errorf("%s row %d: %w", StopsFile, csvrec.Row(i), err)
		}
	}
	return stopPoints, nil
}

// validateStops is an extension point for structural checks spanning the
// two finished collections. No cross-collection invariant is enforced yet.
func validateStops(_ *model.Collection[*model.StopArea], _ *model.Collection[*model.StopPoint]) error {
	return nil
}

// readEntry opens the named archive entry and hands it to read, closing the
// entry when read returns.
func readEntry[T any](zr *zip.ReadCloser, name string, read func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := zr.Open(name)
	if err != nil {
		return zero, fmt.Errorf("opening %s in NaPTAN archive: %w", name, err)
	}
	defer f.Close()
	return read(f)
}

// Read imports the stop reference data of the NaPTAN archive at path and
// merges it into c. The archive is opened once; stop areas, memberships and
// stops are read in that order, each in one pass. Any error is fatal for
// the import and leaves c in whatever state the completed merges produced.
func Read(path string, c *model.Collections, logger zerolog.Logger) error {
	proj, err := geo.NewEPSGProjector(geo.OSGB36)
	if err != nil {
		return err
	}
	zr, err := zip.OpenReader(path)
	if err != nil {
		return fmt.Errorf("opening NaPTAN archive: %w", err)
	}
	defer zr.Close()

	logger.Info().Str("entry", StopAreasFile).Msg("reading NaPTAN entry")
	stopAreas, err := readEntry(zr, StopAreasFile, func(r io.Reader) (*model.Collection[*model.StopArea], error) {
		return readStopAreas(r, proj)
	})
	if err != nil {
		return err
	}

	logger.Info().Str("entry", StopsInAreaFile).Msg("reading NaPTAN entry")
	stopsInArea, err := readEntry(zr, StopsInAreaFile, readStopsInArea)
	if err != nil {
		return err
	}

	logger.Info().Str("entry", StopsFile).Msg("reading NaPTAN entry")
	stopPoints, err := readEntry(zr, StopsFile, func(r io.Reader) (*model.Collection[*model.StopPoint], error) {
		return readStops(r, stopsInArea)
	})
	if err != nil {
		return err
	}

	if err := validateStops(stopAreas, stopPoints); err != nil {
		return err
	}
	if err := c.StopAreas.Merge(stopAreas); err != nil {
		return err
	}
	return c.StopPoints.Merge(stopPoints)
}
