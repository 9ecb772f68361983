package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEPSGProjector_UnknownCode(t *testing.T) {
	_, err := NewEPSGProjector(999999)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EPSG:999999")
}

func TestProject_BritishNationalGrid(t *testing.T) {
	proj, err := NewEPSGProjector(OSGB36)
	require.NoError(t, err)

	tests := []struct {
		name     string
		easting  float64
		northing float64
		wantLon  float64
		wantLat  float64
	}{
		{
			name:     "Bristol Bus Station",
			easting:  358929,
			northing: 173523,
			wantLon:  -2.5920,
			wantLat:  51.4600,
		},
		{
			name:     "Temple Meads",
			easting:  359657,
			northing: 172418,
			wantLon:  -2.5813,
			wantLat:  51.4501,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coord, err := proj.Project(tt.easting, tt.northing)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantLon, coord.Lon, 0.01)
			assert.InDelta(t, tt.wantLat, coord.Lat, 0.01)
		})
	}
}

func TestProject_Deterministic(t *testing.T) {
	proj, err := NewEPSGProjector(OSGB36)
	require.NoError(t, err)

	first, err := proj.Project(358929, 173523)
	require.NoError(t, err)
	second, err := proj.Project(358929, 173523)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
