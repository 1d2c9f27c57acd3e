package sim

import (
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Heuristic pipeline constants. These have no physical derivation; they are
// tuning parameters carried over from the calibrated formula set.
const (
	// aeroBlendWeight half-weights drag and cornering on medium-speed
	// segments.
	aeroBlendWeight = 0.5

	// suboptimalTirePenalty multiplies segment time when the compound is
	// not in the weather's optimal list.
	suboptimalTirePenalty = 1.15

	// Driver aggression trades lap time for mistake exposure.
	aggressionTimeGain   = 0.08
	aggressionMistakeMax = 0.15

	// Mistakes cost between 5% and 15% of the segment time.
	mistakeLossMin = 0.05
	mistakeLossMax = 0.15
)

// DRS time benefit in seconds, by segment category.
var drsBenefit = map[SegmentCategory]float64{
	HighSpeed:   0.8,
	MediumSpeed: 0.4,
	LowSpeed:    0.1,
}

// SegmentResult is the outcome of one segment evaluation.
type SegmentResult struct {
	Segment   int
	Time      float64
	BaseTime  float64
	Modifiers map[string]float64
	Warnings  []string
	HasDRS    bool
}

// RunConditions snapshots the inputs a lap was evaluated under.
type RunConditions struct {
	Circuit        string
	Weather        string
	TrackCondition string
	Compound       string
	FuelKg         float64
}

// TimeLossBreakdown approximates where lap time was lost.
type TimeLossBreakdown struct {
	TireDegradation float64
	FuelWeight      float64
	Weather         float64
}

// LapStatistics are derived figures for one lap.
type LapStatistics struct {
	FastestSegment     int
	SlowestSegment     int
	SegmentSpread      float64
	TheoreticalBest    float64
	DeltaToTheoretical float64
	MeanSegmentTime    float64
	TireLifeRemaining  float64
	FuelRemainingKg    float64
	TimeLoss           TimeLossBreakdown
}

// LapResult is the outcome of one full lap evaluation.
type LapResult struct {
	Lap          int
	TotalTime    float64
	SegmentTimes []float64
	Segments     []SegmentResult
	Stats        LapStatistics
	Warnings     []string
	Conditions   RunConditions
}

// Engine evaluates segment and lap times for one track under one condition
// set. The catalog and track are read-only; the only state the engine
// itself carries between calls is its RNG streams.
type Engine struct {
	catalog *Catalog
	track   *Track
	cond    ConditionSet
	opts    SimOptions
	rng     *PartitionedRNG
}

// NewEngine validates the options and builds an engine. The RNG is
// injected so that runs are reproducible under a fixed seed.
func NewEngine(catalog *Catalog, track *Track, cond ConditionSet, opts SimOptions, rng *PartitionedRNG) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Engine{catalog: catalog, track: track, cond: cond, opts: opts, rng: rng}, nil
}

// Track returns the engine's track.
func (e *Engine) Track() *Track { return e.track }

// Conditions returns the engine's condition set.
func (e *Engine) Conditions() ConditionSet { return e.cond }

// SegmentTime evaluates one segment for the given vehicle and lap number.
// The returned Vehicle carries the advanced tire state; callers thread it
// into the next segment.
func (e *Engine) SegmentTime(v Vehicle, segment, lap int) (SegmentResult, Vehicle, error) {
	seg, err := e.track.Segment(segment)
	if err != nil {
		return SegmentResult{}, v, err
	}
	base, err := e.track.SegmentBaseTime(segment)
	if err != nil {
		return SegmentResult{}, v, err
	}

	// Tire state advances before the segment time is computed.
	v = v.AdvanceTireState(lap, seg.Category)

	tire := v.TirePerformance(lap)
	engine := v.EnginePerformance()
	aero := v.AeroBalance()
	fuel := v.FuelEffect(e.track.LengthM)

	// Tire grip dominates.
	t := base / tire.EffectiveGrip

	// Fuel cost is amortized evenly across segments.
	t += fuel.TimePenalty / float64(e.track.SegmentCount())

	// Aero trade-off depends on the segment profile.
	switch seg.Category {
	case HighSpeed:
		t *= aero.DragMultiplier
	case LowSpeed:
		t /= aero.CorneringMultiplier
	default:
		t *= 1.0 + aeroBlendWeight*(aero.DragMultiplier-1.0) - aeroBlendWeight*(aero.CorneringMultiplier-1.0)
	}

	// Power has a small effect, mostly on straights.
	t /= 0.95 + (engine.TotalPower/1000)*0.05

	if e.opts.UseDRS && e.track.HasDRS(segment) {
		benefit, ok := drsBenefit[seg.Category]
		if !ok {
			benefit = drsBenefit[MediumSpeed]
		}
		t -= benefit
	}

	// Weather: grip/speed scaling, compound suitability, mistake exposure.
	var warnings []string
	w := e.cond.Weather
	t /= w.GripModifier * w.SpeedModifier
	if !w.OptimalFor(v.Compound) {
		t *= suboptimalTirePenalty
		warnings = append(warnings, "suboptimal tire compound for "+e.cond.WeatherName+" conditions")
	}
	t += base * w.MistakeProbability * 0.1

	t /= e.cond.TrackCondition.GripModifier

	// Driver: faster with aggression, at higher mistake risk.
	t *= 1.0 - e.opts.Aggression*aggressionTimeGain
	mistakeProb := e.opts.Aggression * aggressionMistakeMax

	modifiers := map[string]float64{
		"tire_grip":         tire.EffectiveGrip,
		"tire_degradation":  tire.Degradation,
		"tire_temperature":  tire.TemperatureEffect,
		"fuel_penalty":      fuel.TimePenalty,
		"downforce_level":   float64(v.Downforce),
		"engine_power":      engine.TotalPower,
		"weather_grip":      w.GripModifier,
		"track_condition":   e.cond.TrackCondition.GripModifier,
		"driver_aggression": e.opts.Aggression,
	}

	// Two independent random streams: variance first, then the mistake
	// trigger. Stream isolation keeps replay exact under a fixed seed.
	if e.opts.Variance > 0 {
		draw := e.rng.ForSubsystem(SubsystemVariance).Float64()*2*e.opts.Variance - e.opts.Variance
		t *= 1.0 + draw
	}
	if e.rng.ForSubsystem(SubsystemMistake).Float64() < mistakeProb {
		span := mistakeLossMin + e.rng.ForSubsystem(SubsystemMistake).Float64()*(mistakeLossMax-mistakeLossMin)
		loss := t * span
		t += loss
		modifiers["driver_mistake"] = loss
		logrus.Debugf("driver mistake on segment %d lap %d: +%.3fs", segment, lap, loss)
	}

	t = math.Max(0, t)

	return SegmentResult{
		Segment:   segment,
		Time:      t,
		BaseTime:  base,
		Modifiers: modifiers,
		Warnings:  warnings,
		HasDRS:    e.track.HasDRS(segment),
	}, v, nil
}

// SimulateLap evaluates every segment in order and aggregates the result.
// The returned Vehicle carries the lap's accumulated tire state.
func (e *Engine) SimulateLap(v Vehicle, lap int) (LapResult, Vehicle, error) {
	if e.track.SegmentCount() == 0 {
		return LapResult{}, v, validationErrorf("track", "%q has no segments", e.track.ID)
	}

	var (
		segments []SegmentResult
		times    []float64
		warnings []string
		total    float64
	)

	for _, s := range e.track.segments {
		res, updated, err := e.SegmentTime(v, s.Number, lap)
		if err != nil {
			return LapResult{}, v, err
		}
		v = updated
		segments = append(segments, res)
		times = append(times, res.Time)
		warnings = append(warnings, res.Warnings...)
		total += res.Time
	}

	result := LapResult{
		Lap:          lap,
		TotalTime:    total,
		SegmentTimes: times,
		Segments:     segments,
		Stats:        e.lapStatistics(v, segments, total),
		Warnings:     dedupe(warnings),
		Conditions: RunConditions{
			Circuit:        e.track.ID,
			Weather:        e.cond.WeatherName,
			TrackCondition: e.cond.TrackConditionName,
			Compound:       v.Compound,
			FuelKg:         v.FuelKg,
		},
	}

	logrus.Debugf("lap %d on %s: %.3fs over %d segments", lap, e.track.ID, total, len(segments))
	return result, v, nil
}

// Stint fuel estimates use the race-mode burn rate regardless of engine
// mode; per-mode range lives in FuelEffect.
const stintFuelBurnKgPerLap = 2.8

func (e *Engine) lapStatistics(v Vehicle, segments []SegmentResult, total float64) LapStatistics {
	times := make([]float64, len(segments))
	bases := make([]float64, len(segments))
	var fuelPenalty float64
	for i, s := range segments {
		times[i] = s.Time
		bases[i] = s.BaseTime
		fuelPenalty += s.Modifiers["fuel_penalty"]
	}

	theoretical := floats.Sum(bases)
	tire := v.TirePerformance(v.CurrentLap)

	return LapStatistics{
		FastestSegment:     floats.MinIdx(times) + 1,
		SlowestSegment:     floats.MaxIdx(times) + 1,
		SegmentSpread:      floats.Max(times) - floats.Min(times),
		TheoreticalBest:    theoretical,
		DeltaToTheoretical: total - theoretical,
		MeanSegmentTime:    stat.Mean(times, nil),
		TireLifeRemaining:  tire.LifeRemaining,
		FuelRemainingKg:    math.Max(0, v.FuelKg-stintFuelBurnKgPerLap*float64(v.CurrentLap)),
		TimeLoss: TimeLossBreakdown{
			TireDegradation: total * (1 - tire.Degradation) * 0.1,
			FuelWeight:      fuelPenalty / float64(len(segments)),
			Weather:         total * (1 - e.cond.Weather.GripModifier) * 0.05,
		},
	}
}

// SimulateStint evaluates n consecutive laps starting at startLap. Tire
// wear and temperature evolve across the stint; the vehicle is not reset
// between laps. Returns the per-lap results and the final vehicle state.
func (e *Engine) SimulateStint(v Vehicle, startLap, n int) ([]LapResult, Vehicle, error) {
	if n < 1 {
		return nil, v, validationErrorf("stint length", "must be at least 1 lap, got %d", n)
	}
	if startLap < 1 {
		return nil, v, validationErrorf("start lap", "must be at least 1, got %d", startLap)
	}

	results := make([]LapResult, 0, n)
	for lap := startLap; lap < startLap+n; lap++ {
		result, updated, err := e.SimulateLap(v, lap)
		if err != nil {
			return nil, v, err
		}
		v = updated
		results = append(results, result)
	}
	return results, v, nil
}

// dedupe removes duplicate warnings, preserving first-seen order.
func dedupe(warnings []string) []string {
	seen := make(map[string]struct{}, len(warnings))
	var out []string
	for _, w := range warnings {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
