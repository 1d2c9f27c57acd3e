package sim

import "sort"

// CandidateConfig describes one vehicle configuration to compare. Zero
// values for setup fields fall back to the stock setup (downforce 5, race
// engine mode, auto energy deployment).
type CandidateConfig struct {
	Label      string
	Compound   string
	FuelKg     float64
	Downforce  int
	EngineMode EngineMode
	EnergyMode EnergyMode
}

// ComparisonEntry pairs a candidate with its single-lap result. Index is
// the candidate's position in the input list.
type ComparisonEntry struct {
	Index  int
	Config CandidateConfig
	Result LapResult
}

// CompareConfigurations evaluates one lap (lap number 1) per candidate on
// the engine's track and conditions, each with an independently constructed
// vehicle, and returns the entries sorted ascending by total time. Ties
// keep input order.
func (e *Engine) CompareConfigurations(configs []CandidateConfig) ([]ComparisonEntry, error) {
	entries := make([]ComparisonEntry, 0, len(configs))

	for i, cfg := range configs {
		v, err := NewVehicle(e.catalog, cfg.Compound, cfg.FuelKg)
		if err != nil {
			return nil, err
		}

		downforce := cfg.Downforce
		if downforce == 0 {
			downforce = 5
		}
		engineMode := cfg.EngineMode
		if engineMode == "" {
			engineMode = EngineRace
		}
		energyMode := cfg.EnergyMode
		if energyMode == "" {
			energyMode = EnergyAuto
		}
		v, err = v.WithSetup(downforce, engineMode, energyMode)
		if err != nil {
			return nil, err
		}

		result, _, err := e.SimulateLap(v, 1)
		if err != nil {
			return nil, err
		}
		entries = append(entries, ComparisonEntry{Index: i, Config: cfg, Result: result})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Result.TotalTime < entries[j].Result.TotalTime
	})
	return entries, nil
}

// TireAdvice is the compound recommendation part of SetupAdvice. For dry
// running it pairs a qualifying compound with a race-start compound; in
// other weather it names the preset's first optimal compound.
type TireAdvice struct {
	Qualifying  string
	RaceStart   string
	Recommended string
}

// SetupAdvice is a setup recommendation derived from the track
// classification and the active weather.
type SetupAdvice struct {
	Classification TrackClass
	Downforce      int
	EngineMode     EngineMode
	EnergyMode     EnergyMode
	Tires          TireAdvice
	Rationale      []string
}

// SetupAdvice maps the track classification to a downforce level and picks
// compounds for the active weather. Race engine mode and auto energy
// deployment are always the recommended defaults.
func (e *Engine) SetupAdvice() SetupAdvice {
	advice := SetupAdvice{
		Classification: e.track.Classification(),
		EngineMode:     EngineRace,
		EnergyMode:     EnergyAuto,
	}

	switch advice.Classification {
	case ClassHighSpeed:
		advice.Downforce = 3
		advice.Rationale = append(advice.Rationale, "Low downforce for high-speed circuit")
	case ClassStreetTechnical:
		advice.Downforce = 8
		advice.Rationale = append(advice.Rationale, "High downforce for technical circuit")
	default:
		advice.Downforce = 5
		advice.Rationale = append(advice.Rationale, "Balanced downforce for mixed circuit")
	}

	if e.cond.WeatherName == "dry" {
		advice.Tires = TireAdvice{Qualifying: "soft", RaceStart: "medium"}
	} else if len(e.cond.Weather.OptimalTires) > 0 {
		advice.Tires = TireAdvice{Recommended: e.cond.Weather.OptimalTires[0]}
	}

	return advice
}
