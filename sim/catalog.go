package sim

import (
	_ "embed"
	"os"
	"sort"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// Catalog holds the reference tables for circuits, tire compounds, weather
// presets, and track conditions. It is loaded once per process and treated
// as read-only afterwards, so a single *Catalog may be shared freely across
// concurrent evaluations.
type Catalog struct {
	Circuits           map[string]CircuitSpec        `yaml:"circuits"`
	TireCompounds      map[string]CompoundSpec       `yaml:"tire_compounds"`
	TemperatureEffects TemperatureEffects            `yaml:"temperature_effects"`
	WeatherConditions  map[string]WeatherSpec        `yaml:"weather_conditions"`
	TrackConditions    map[string]TrackConditionSpec `yaml:"track_conditions"`
}

// CircuitSpec is the raw catalog entry for one circuit.
type CircuitSpec struct {
	Name        string        `yaml:"name"`
	Country     string        `yaml:"country"`
	LengthM     float64       `yaml:"length"`
	BaseLapTime float64       `yaml:"base_lap_time"`
	LapRecord   float64       `yaml:"lap_record"`
	Difficulty  float64       `yaml:"difficulty"`
	Segments    []SegmentSpec `yaml:"segments"`
	DRSZones    []DRSZoneSpec `yaml:"drs_zones"`
}

// SegmentSpec is the raw catalog entry for one track segment.
type SegmentSpec struct {
	Number          int     `yaml:"number"`
	LengthM         float64 `yaml:"length"`
	Turns           int     `yaml:"turns"`
	Category        string  `yaml:"category"`
	ElevationChange float64 `yaml:"elevation_change"`
}

// DRSZoneSpec binds a named DRS zone to a segment number.
type DRSZoneSpec struct {
	Segment int    `yaml:"segment"`
	Name    string `yaml:"name"`
}

// CompoundSpec is the raw catalog entry for one tire compound.
type CompoundSpec struct {
	GripModifier     float64    `yaml:"grip_modifier"`
	OptimalTempRange [2]float64 `yaml:"optimal_temp_range"`
	PeakLaps         int        `yaml:"peak_performance_laps"`
	DegradationRate  float64    `yaml:"degradation_rate"`
	LifeSpan         int        `yaml:"life_span"`
}

// TemperatureEffects holds the compound-independent cold/overheat bands.
type TemperatureEffects struct {
	Cold       TemperatureBand `yaml:"cold"`
	Overheated TemperatureBand `yaml:"overheated"`
}

// TemperatureBand is one threshold plus the grip lost beyond it.
type TemperatureBand struct {
	TempThreshold float64 `yaml:"temp_threshold"`
	GripLoss      float64 `yaml:"grip_loss"`
}

// WeatherSpec is the raw catalog entry for one weather preset.
type WeatherSpec struct {
	GripModifier       float64  `yaml:"grip_modifier"`
	SpeedModifier      float64  `yaml:"speed_modifier"`
	MistakeProbability float64  `yaml:"mistake_probability"`
	OptimalTires       []string `yaml:"optimal_tires"`
}

// OptimalFor reports whether the compound is in the preset's optimal list.
func (w WeatherSpec) OptimalFor(compound string) bool {
	for _, c := range w.OptimalTires {
		if c == compound {
			return true
		}
	}
	return false
}

// TrackConditionSpec is the raw catalog entry for one track condition.
type TrackConditionSpec struct {
	GripModifier float64 `yaml:"grip_modifier"`
}

// DefaultCatalog parses the catalog bundled with the binary.
func DefaultCatalog() (*Catalog, error) {
	return parseCatalog(defaultCatalogYAML)
}

// LoadCatalog reads and parses a catalog YAML file from disk.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := parseCatalog(data)
	if err != nil {
		return nil, err
	}
	logrus.Infof("Loaded catalog %s: %d circuits, %d compounds, %d weather presets",
		path, len(c.Circuits), len(c.TireCompounds), len(c.WeatherConditions))
	return c, nil
}

func parseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Circuit looks up a circuit by catalog key.
func (c *Catalog) Circuit(name string) (CircuitSpec, error) {
	spec, ok := c.Circuits[name]
	if !ok {
		return CircuitSpec{}, validationErrorf("circuit", "%q not in catalog, available: %v", name, c.CircuitNames())
	}
	return spec, nil
}

// Compound looks up a tire compound by name.
func (c *Catalog) Compound(name string) (CompoundSpec, error) {
	spec, ok := c.TireCompounds[name]
	if !ok {
		return CompoundSpec{}, validationErrorf("tire compound", "%q not in catalog, available: %v", name, c.CompoundNames())
	}
	return spec, nil
}

// Weather looks up a weather preset by name.
func (c *Catalog) Weather(name string) (WeatherSpec, error) {
	spec, ok := c.WeatherConditions[name]
	if !ok {
		return WeatherSpec{}, validationErrorf("weather", "%q not in catalog, available: %v", name, c.WeatherNames())
	}
	return spec, nil
}

// TrackCondition looks up a track condition by name.
func (c *Catalog) TrackCondition(name string) (TrackConditionSpec, error) {
	spec, ok := c.TrackConditions[name]
	if !ok {
		return TrackConditionSpec{}, validationErrorf("track condition", "%q not in catalog, available: %v", name, c.TrackConditionNames())
	}
	return spec, nil
}

// CircuitNames returns the catalog's circuit keys, sorted.
func (c *Catalog) CircuitNames() []string { return sortedKeys(c.Circuits) }

// CompoundNames returns the catalog's compound names, sorted.
func (c *Catalog) CompoundNames() []string { return sortedKeys(c.TireCompounds) }

// WeatherNames returns the catalog's weather preset names, sorted.
func (c *Catalog) WeatherNames() []string { return sortedKeys(c.WeatherConditions) }

// TrackConditionNames returns the catalog's track condition names, sorted.
func (c *Catalog) TrackConditionNames() []string { return sortedKeys(c.TrackConditions) }

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
