package geo

import (
	"fmt"
	"math"

	"github.com/wroge/wgs84"

	"github.com/theoremus-urban-solutions/transit-model/model"
)

// OSGB36 is the EPSG code of the British National Grid, the projection
// NaPTAN exports use for easting/northing values.
const OSGB36 = 27700

// wgs84Code is the EPSG code of geographic longitude/latitude on WGS84.
const wgs84Code = 4326

// Projector converts a planar easting/northing pair into a geographic
// longitude/latitude coordinate. Implementations are pure functions of
// their input.
type Projector interface {
	Project(easting, northing float64) (model.Coord, error)
}

type epsgProjector struct {
	transform wgs84.Func
	code      int
}

// NewEPSGProjector builds a converter from the given source EPSG code to
// geographic WGS84 coordinates. It fails when the EPSG repository has no
// conversion definition for either side, before any coordinate is
// converted.
func NewEPSGProjector(code int) (Projector, error) {
	epsg := wgs84.EPSG()
	from := epsg.Code(code)
	if from == nil {
		return nil, fmt.Errorf("no conversion definition for EPSG:%d", code)
	}
	to := epsg.Code(wgs84Code)
	if to == nil {
		return nil, fmt.Errorf("no conversion definition for EPSG:%d", wgs84Code)
	}
	return &epsgProjector{transform: wgs84.Transform(from, to), code: code}, nil
}

func (p *epsgProjector) Project(easting, northing float64) (model.Coord, error) {
	lon, lat, _ := p.transform(easting, northing, 0)
	if math.IsNaN(lon) || math.IsNaN(lat) || math.IsInf(lon, 0) || math.IsInf(lat, 0) {
		return model.Coord{}, fmt.Errorf("cannot convert (%v, %v) from EPSG:%d", easting, northing, p.code)
	}
	return model.Coord{Lon: lon, Lat: lat}, nil
}
