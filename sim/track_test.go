package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := DefaultCatalog()
	require.NoError(t, err)
	return c
}

func TestNewTrack_FromCatalog(t *testing.T) {
	track, err := NewTrack(mustCatalog(t), "spa")
	require.NoError(t, err)

	assert.Equal(t, "Circuit de Spa-Francorchamps", track.Name)
	assert.Equal(t, "Belgium", track.Country)
	assert.Greater(t, track.LengthM, 0.0)
	assert.Equal(t, 3, track.SegmentCount())
}

func TestNewTrack_UnknownCircuit(t *testing.T) {
	track, err := NewTrack(mustCatalog(t), "imaginary")
	require.Error(t, err)
	assert.Nil(t, track)

	var verr *ValidationError
	assert.True(t, errors.As(err, &verr), "want ValidationError, got %T", err)
}

func TestTrack_SegmentLookup(t *testing.T) {
	track, err := NewTrack(mustCatalog(t), "spa")
	require.NoError(t, err)

	seg, err := track.Segment(1)
	require.NoError(t, err)
	assert.Equal(t, 1, seg.Number)
	assert.Greater(t, seg.LengthM, 0.0)

	_, err = track.Segment(99)
	require.Error(t, err)
	var nferr *NotFoundError
	assert.True(t, errors.As(err, &nferr), "want NotFoundError, got %T", err)
}

func TestTrack_DRSZones(t *testing.T) {
	track, err := NewTrack(mustCatalog(t), "spa")
	require.NoError(t, err)

	assert.True(t, track.HasDRS(1))
	assert.False(t, track.HasDRS(2))
	assert.NotEmpty(t, track.DRSZones(1))
	assert.Empty(t, track.DRSZones(2))
}

func TestTrack_SegmentDifficultyBounds(t *testing.T) {
	catalog := mustCatalog(t)
	for _, name := range catalog.CircuitNames() {
		track, err := NewTrack(catalog, name)
		require.NoError(t, err)
		for n := 1; n <= track.SegmentCount(); n++ {
			difficulty, err := track.SegmentDifficulty(n)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, difficulty, 0.5, "%s segment %d", name, n)
			assert.LessOrEqual(t, difficulty, 1.2, "%s segment %d", name, n)
		}
	}
}

func TestTrack_SegmentDifficultyFormula(t *testing.T) {
	// 10 turns over 5km, medium speed, flat:
	// 0.8 + min(0.3, 2*0.1) + 0.1 = 1.1
	track, err := NewCustomTrack("Formula Check", 5000, []Segment{
		{Number: 1, LengthM: 5000, Turns: 10, Category: MediumSpeed},
	})
	require.NoError(t, err)

	difficulty, err := track.SegmentDifficulty(1)
	require.NoError(t, err)
	assert.InDelta(t, 1.1, difficulty, 1e-9)

	baseTime, err := track.SegmentBaseTime(1)
	require.NoError(t, err)
	assert.InDelta(t, track.BaseLapTime*1.1, baseTime, 1e-9)
}

func TestTrack_AverageSpeedEstimate(t *testing.T) {
	tests := []struct {
		name    string
		segment Segment
		want    float64
	}{
		{
			name:    "flat out",
			segment: Segment{Number: 1, LengthM: 2000, Turns: 0, Category: HighSpeed},
			want:    280,
		},
		{
			name:    "reduction capped at 50",
			segment: Segment{Number: 1, LengthM: 1000, Turns: 10, Category: HighSpeed},
			want:    230,
		},
		{
			name:    "floored at 80",
			segment: Segment{Number: 1, LengthM: 1000, Turns: 20, Category: LowSpeed},
			want:    80,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			track, err := NewCustomTrack("Speed Check", tt.segment.LengthM, []Segment{tt.segment})
			require.NoError(t, err)
			speed, err := track.AverageSpeedEstimate(1)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, speed, 1e-9)
		})
	}
}

func TestTrack_Classification(t *testing.T) {
	catalog := mustCatalog(t)

	tests := []struct {
		circuit string
		want    TrackClass
	}{
		{"monza", ClassHighSpeed},
		{"monaco", ClassStreetTechnical},
		{"spa", ClassMixed},
		{"silverstone", ClassMixed},
	}

	for _, tt := range tests {
		t.Run(tt.circuit, func(t *testing.T) {
			track, err := NewTrack(catalog, tt.circuit)
			require.NoError(t, err)
			assert.Equal(t, tt.want, track.Classification())
		})
	}
}

func TestNewCustomTrack(t *testing.T) {
	segments := []Segment{
		{Number: 1, LengthM: 2000, Turns: 5, Category: MediumSpeed},
		{Number: 2, LengthM: 1500, Turns: 3, Category: HighSpeed},
	}
	track, err := NewCustomTrack("Test Track", 3500, segments)
	require.NoError(t, err)

	assert.Equal(t, "Test Track", track.Name)
	assert.Equal(t, "Custom", track.Country)
	assert.Equal(t, 2, track.SegmentCount())
	assert.InDelta(t, 3500.0/70.0, track.BaseLapTime, 1e-9)
	assert.False(t, track.HasDRS(1))
}

func TestNewCustomTrack_Invalid(t *testing.T) {
	_, err := NewCustomTrack("Bad", 0, []Segment{{Number: 1, LengthM: 1000}})
	assert.Error(t, err)

	_, err = NewCustomTrack("Bad", 1000, nil)
	assert.Error(t, err)
}

func TestTrack_Summary(t *testing.T) {
	track, err := NewTrack(mustCatalog(t), "spa")
	require.NoError(t, err)

	summary := track.Summary()
	assert.Equal(t, track.Name, summary.Name)
	assert.Len(t, summary.Segments, track.SegmentCount())
	assert.Equal(t, ClassMixed, summary.Classification)
	assert.Greater(t, summary.TotalTurns, 0)
	assert.Equal(t, 2, summary.DRSZoneCount)

	for _, info := range summary.Segments {
		assert.Greater(t, info.BaseTime, 0.0)
		assert.GreaterOrEqual(t, info.AvgSpeedKmh, 80.0)
	}
}
