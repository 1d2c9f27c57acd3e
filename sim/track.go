package sim

import (
	"math"
	"strconv"
)

// SegmentCategory classifies a track segment by its dominant speed profile.
type SegmentCategory string

const (
	LowSpeed    SegmentCategory = "low_speed"
	MediumSpeed SegmentCategory = "medium_speed"
	HighSpeed   SegmentCategory = "high_speed"
)

// TrackClass is the whole-track classification derived from per-segment
// average speed estimates.
type TrackClass string

const (
	ClassHighSpeed       TrackClass = "High-speed circuit"
	ClassStreetTechnical TrackClass = "Street/Technical circuit"
	ClassMixed           TrackClass = "Mixed circuit"
)

// Classification thresholds in km/h.
const (
	highSpeedClassThreshold = 220.0
	technicalClassThreshold = 140.0
)

// Segment is one portion of a track. Immutable once part of a Track.
type Segment struct {
	Number          int
	LengthM         float64
	Turns           int
	Category        SegmentCategory
	ElevationChange float64
}

// DRSZone binds a named overtake-assist zone to a segment.
type DRSZone struct {
	Segment int
	Name    string
}

// Track is a named circuit composed of an ordered list of segments.
// Constructed once (from the catalog or ad hoc) and immutable thereafter.
type Track struct {
	ID          string
	Name        string
	Country     string
	LengthM     float64
	BaseLapTime float64
	LapRecord   float64
	Difficulty  float64

	segments []Segment
	drsZones []DRSZone
}

// NewTrack builds a Track from a catalog circuit entry. Unknown circuit
// names fail with a ValidationError; no Track is constructed.
func NewTrack(catalog *Catalog, name string) (*Track, error) {
	spec, err := catalog.Circuit(name)
	if err != nil {
		return nil, err
	}

	t := &Track{
		ID:          name,
		Name:        spec.Name,
		Country:     spec.Country,
		LengthM:     spec.LengthM,
		BaseLapTime: spec.BaseLapTime,
		LapRecord:   spec.LapRecord,
		Difficulty:  spec.Difficulty,
	}
	for _, s := range spec.Segments {
		t.segments = append(t.segments, Segment{
			Number:          s.Number,
			LengthM:         s.LengthM,
			Turns:           s.Turns,
			Category:        SegmentCategory(s.Category),
			ElevationChange: s.ElevationChange,
		})
	}
	for _, z := range spec.DRSZones {
		t.drsZones = append(t.drsZones, DRSZone{Segment: z.Segment, Name: z.Name})
	}
	return t, nil
}

// Custom tracks estimate a base lap time from length alone.
const customBaseLapTimeDivisor = 70.0

// NewCustomTrack builds a Track that is not in the catalog from a name,
// total length, and an explicit segment list. Custom tracks carry no DRS
// zones and use a rough length-derived base lap time.
func NewCustomTrack(name string, lengthM float64, segments []Segment) (*Track, error) {
	if lengthM <= 0 {
		return nil, validationErrorf("track length", "must be positive, got %v", lengthM)
	}
	if len(segments) == 0 {
		return nil, validationErrorf("segments", "custom track needs at least one segment")
	}
	return &Track{
		ID:          "custom",
		Name:        name,
		Country:     "Custom",
		LengthM:     lengthM,
		BaseLapTime: lengthM / customBaseLapTimeDivisor,
		Difficulty:  0.8,
		segments:    append([]Segment(nil), segments...),
	}, nil
}

// Segment looks up a segment by number.
func (t *Track) Segment(number int) (Segment, error) {
	for _, s := range t.segments {
		if s.Number == number {
			return s, nil
		}
	}
	return Segment{}, &NotFoundError{Kind: "segment", Name: strconv.Itoa(number)}
}

// SegmentCount reports the number of segments on the track.
func (t *Track) SegmentCount() int {
	return len(t.segments)
}

// HasDRS reports whether any DRS zone is bound to the segment.
func (t *Track) HasDRS(segment int) bool {
	for _, z := range t.drsZones {
		if z.Segment == segment {
			return true
		}
	}
	return false
}

// DRSZones returns the DRS zones bound to the segment.
func (t *Track) DRSZones(segment int) []DRSZone {
	var zones []DRSZone
	for _, z := range t.drsZones {
		if z.Segment == segment {
			zones = append(zones, z)
		}
	}
	return zones
}

// SegmentDifficulty scores a segment in [0.5, 1.2] from its turn density,
// category, and elevation change.
func (t *Track) SegmentDifficulty(segment int) (float64, error) {
	s, err := t.Segment(segment)
	if err != nil {
		return 0, err
	}

	difficulty := 0.8

	turnDensity := float64(s.Turns) / (s.LengthM / 1000)
	difficulty += math.Min(0.3, turnDensity*0.1)

	switch s.Category {
	case LowSpeed:
		difficulty += 0.2
	case MediumSpeed:
		difficulty += 0.1
	case HighSpeed:
		difficulty -= 0.1
	default:
		difficulty += 0.1
	}

	difficulty += math.Abs(s.ElevationChange) * 0.005

	return clamp(difficulty, 0.5, 1.2), nil
}

// SegmentBaseTime estimates a segment's unmodified time by scaling the
// track's base lap time by the segment's length ratio and difficulty.
// This is a ratio-and-scale heuristic, not derived from vehicle dynamics.
func (t *Track) SegmentBaseTime(segment int) (float64, error) {
	s, err := t.Segment(segment)
	if err != nil {
		return 0, err
	}
	difficulty, err := t.SegmentDifficulty(segment)
	if err != nil {
		return 0, err
	}
	return (s.LengthM / t.LengthM) * t.BaseLapTime * difficulty, nil
}

// AverageSpeedEstimate estimates a segment's average speed in km/h from its
// category and turn density, floored at 80.
func (t *Track) AverageSpeedEstimate(segment int) (float64, error) {
	s, err := t.Segment(segment)
	if err != nil {
		return 0, err
	}

	var base float64
	switch s.Category {
	case LowSpeed:
		base = 120
	case MediumSpeed:
		base = 180
	case HighSpeed:
		base = 280
	default:
		base = 180
	}

	turnDensity := float64(s.Turns) / (s.LengthM / 1000)
	reduction := math.Min(50, turnDensity*15)

	return math.Max(80, base-reduction), nil
}

// Classification labels the track from the mean of its per-segment average
// speed estimates.
func (t *Track) Classification() TrackClass {
	if len(t.segments) == 0 {
		return ClassMixed
	}
	var sum float64
	for _, s := range t.segments {
		speed, _ := t.AverageSpeedEstimate(s.Number)
		sum += speed
	}
	avg := sum / float64(len(t.segments))

	switch {
	case avg > highSpeedClassThreshold:
		return ClassHighSpeed
	case avg < technicalClassThreshold:
		return ClassStreetTechnical
	default:
		return ClassMixed
	}
}

// SegmentInfo is the read-only per-segment detail in a TrackSummary.
type SegmentInfo struct {
	Number      int
	LengthM     float64
	Turns       int
	Category    SegmentCategory
	HasDRS      bool
	Difficulty  float64
	BaseTime    float64
	AvgSpeedKmh float64
}

// TrackSummary aggregates per-segment detail for presentation layers.
type TrackSummary struct {
	Name           string
	Country        string
	LengthM        float64
	TotalTurns     int
	Segments       []SegmentInfo
	DRSZoneCount   int
	LapRecord      float64
	BaseLapTime    float64
	Difficulty     float64
	Classification TrackClass
}

// Summary builds the read-only aggregate view of the track.
func (t *Track) Summary() TrackSummary {
	summary := TrackSummary{
		Name:           t.Name,
		Country:        t.Country,
		LengthM:        t.LengthM,
		DRSZoneCount:   len(t.drsZones),
		LapRecord:      t.LapRecord,
		BaseLapTime:    t.BaseLapTime,
		Difficulty:     t.Difficulty,
		Classification: t.Classification(),
	}
	for _, s := range t.segments {
		difficulty, _ := t.SegmentDifficulty(s.Number)
		baseTime, _ := t.SegmentBaseTime(s.Number)
		speed, _ := t.AverageSpeedEstimate(s.Number)
		summary.Segments = append(summary.Segments, SegmentInfo{
			Number:      s.Number,
			LengthM:     s.LengthM,
			Turns:       s.Turns,
			Category:    s.Category,
			HasDRS:      t.HasDRS(s.Number),
			Difficulty:  difficulty,
			BaseTime:    baseTime,
			AvgSpeedKmh: speed,
		})
		summary.TotalTurns += s.Turns
	}
	return summary
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
