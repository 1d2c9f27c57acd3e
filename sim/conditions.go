package sim

// ConditionSet pairs a weather preset with a track condition, both looked
// up once from the catalog. Immutable after construction.
type ConditionSet struct {
	WeatherName        string
	Weather            WeatherSpec
	TrackConditionName string
	TrackCondition     TrackConditionSpec
}

// NewConditionSet resolves the named weather preset and track condition.
// Unknown names fail with a ValidationError.
func NewConditionSet(catalog *Catalog, weather, trackCondition string) (ConditionSet, error) {
	w, err := catalog.Weather(weather)
	if err != nil {
		return ConditionSet{}, err
	}
	tc, err := catalog.TrackCondition(trackCondition)
	if err != nil {
		return ConditionSet{}, err
	}
	return ConditionSet{
		WeatherName:        weather,
		Weather:            w,
		TrackConditionName: trackCondition,
		TrackCondition:     tc,
	}, nil
}
