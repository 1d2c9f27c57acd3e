package sim

import "math"

// EngineMode selects the power/consumption/reliability trade-off.
type EngineMode string

const (
	EngineQuali        EngineMode = "quali"
	EngineRace         EngineMode = "race"
	EngineConservation EngineMode = "conservation"
)

// EnergyMode selects how aggressively recovered energy is deployed.
type EnergyMode string

const (
	EnergyAuto         EnergyMode = "auto"
	EnergyAggressive   EnergyMode = "aggressive"
	EnergyConservative EnergyMode = "conservative"
)

// Fixed vehicle characteristics.
const (
	baseWeightKg = 798.0  // minimum weight without fuel
	basePowerHP  = 1000.0 // power unit output before mode scaling

	maxFuelKg    = 110.0
	minDownforce = 1
	maxDownforce = 10

	minTireTempC = 60.0
	maxTireTempC = 140.0

	// Fuel time penalty in seconds per kg per km of track.
	fuelPenaltyPerKgPerKm = 0.035
)

type engineModeSpec struct {
	power       float64
	fuelBurn    float64
	reliability float64
	// consumption in kg per lap, for range estimates
	consumptionKgPerLap float64
}

var engineModes = map[EngineMode]engineModeSpec{
	EngineQuali:        {power: 1.08, fuelBurn: 1.5, reliability: 0.95, consumptionKgPerLap: 3.5},
	EngineRace:         {power: 1.0, fuelBurn: 1.0, reliability: 1.0, consumptionKgPerLap: 2.8},
	EngineConservation: {power: 0.92, fuelBurn: 0.85, reliability: 1.05, consumptionKgPerLap: 2.3},
}

type energyModeSpec struct {
	powerBoost     float64
	deploymentTime float64
}

var energyModes = map[EnergyMode]energyModeSpec{
	EnergyAggressive:   {powerBoost: 50, deploymentTime: 0.8},
	EnergyAuto:         {powerBoost: 35, deploymentTime: 0.6},
	EnergyConservative: {powerBoost: 25, deploymentTime: 0.4},
}

// Tire temperature delta per completed segment, by category.
var segmentTempDelta = map[SegmentCategory]float64{
	LowSpeed:    -2,
	MediumSpeed: 0,
	HighSpeed:   +3,
}

// Vehicle is the state of one simulated car. It is a value type: stint
// evolution returns updated copies instead of mutating shared state, so a
// Vehicle must simply not be shared across concurrent stints.
type Vehicle struct {
	Compound   string
	FuelKg     float64
	Downforce  int
	EngineMode EngineMode
	EnergyMode EnergyMode
	CurrentLap int
	TireTempC  float64

	compound CompoundSpec
	tempFX   TemperatureEffects
}

// NewVehicle validates the compound against the catalog and the fuel mass
// against [0, 110] kg, and returns a Vehicle with the default setup
// (downforce 5, race engine mode, auto energy deployment).
func NewVehicle(catalog *Catalog, compound string, fuelKg float64) (Vehicle, error) {
	spec, err := catalog.Compound(compound)
	if err != nil {
		return Vehicle{}, err
	}
	if fuelKg < 0 || fuelKg > maxFuelKg {
		return Vehicle{}, validationErrorf("fuel load", "must be between 0 and %v kg, got %v", maxFuelKg, fuelKg)
	}
	return Vehicle{
		Compound:   compound,
		FuelKg:     fuelKg,
		Downforce:  5,
		EngineMode: EngineRace,
		EnergyMode: EnergyAuto,
		CurrentLap: 1,
		TireTempC:  90,
		compound:   spec,
		tempFX:     catalog.TemperatureEffects,
	}, nil
}

// WithSetup returns a copy of the vehicle with the given setup applied.
// Invalid values fail validation; nothing is silently clamped.
func (v Vehicle) WithSetup(downforce int, engine EngineMode, energy EnergyMode) (Vehicle, error) {
	if downforce < minDownforce || downforce > maxDownforce {
		return Vehicle{}, validationErrorf("downforce", "must be between %d and %d, got %d", minDownforce, maxDownforce, downforce)
	}
	if _, ok := engineModes[engine]; !ok {
		return Vehicle{}, validationErrorf("engine mode", "%q not one of quali, race, conservation", engine)
	}
	if _, ok := energyModes[energy]; !ok {
		return Vehicle{}, validationErrorf("energy deployment", "%q not one of auto, aggressive, conservative", energy)
	}
	v.Downforce = downforce
	v.EngineMode = engine
	v.EnergyMode = energy
	return v, nil
}

// TotalWeightKg is the base car weight plus the current fuel load.
func (v Vehicle) TotalWeightKg() float64 {
	return baseWeightKg + v.FuelKg
}

// TirePerformance is the tire sub-model output for one lap.
type TirePerformance struct {
	BaseGrip          float64
	Degradation       float64
	TemperatureEffect float64
	EffectiveGrip     float64
	LifeRemaining     float64
}

// TirePerformance derives the tire grip state for the given lap number.
// Pure: does not mutate the vehicle.
func (v Vehicle) TirePerformance(lap int) TirePerformance {
	degradation := tireDegradation(lap, v.compound)
	tempEffect := v.temperatureEffect()
	return TirePerformance{
		BaseGrip:          v.compound.GripModifier,
		Degradation:       degradation,
		TemperatureEffect: tempEffect,
		EffectiveGrip:     v.compound.GripModifier * degradation * tempEffect,
		LifeRemaining:     math.Max(0, 1-float64(lap)/float64(v.compound.LifeSpan)),
	}
}

// tireDegradation models warm-up followed by decline: tires come in over
// the first peak laps (capped at full performance), then fall off linearly,
// floored at 70% of peak.
func tireDegradation(lap int, c CompoundSpec) float64 {
	if lap <= c.PeakLaps {
		return math.Min(1.0, 0.95+(float64(lap)/float64(c.PeakLaps))*0.05)
	}
	lapsPastPeak := float64(lap - c.PeakLaps)
	return math.Max(0.7, 1.0-lapsPastPeak*c.DegradationRate)
}

// temperatureEffect is 1.0 inside the compound's optimal band, a fixed loss
// beyond the cold/overheat thresholds, and a linear falloff of 0.05 per 20
// degrees in between.
func (v Vehicle) temperatureEffect() float64 {
	lo, hi := v.compound.OptimalTempRange[0], v.compound.OptimalTempRange[1]

	switch {
	case v.TireTempC >= lo && v.TireTempC <= hi:
		return 1.0
	case v.TireTempC < v.tempFX.Cold.TempThreshold:
		return 1.0 - v.tempFX.Cold.GripLoss
	case v.TireTempC > v.tempFX.Overheated.TempThreshold:
		return 1.0 - v.tempFX.Overheated.GripLoss
	case v.TireTempC < lo:
		return 1.0 - ((lo-v.TireTempC)/20)*0.05
	default:
		return 1.0 - ((v.TireTempC-hi)/20)*0.05
	}
}

// EnginePerformance is the engine sub-model output.
type EnginePerformance struct {
	BasePower      float64
	ModeMultiplier float64
	EffectivePower float64
	EnergyBoost    float64
	TotalPower     float64
	FuelBurnRate   float64
	Reliability    float64
}

// EnginePerformance derives total power from the engine mode multiplier and
// the energy-deployment contribution.
func (v Vehicle) EnginePerformance() EnginePerformance {
	mode := engineModes[v.EngineMode]
	energy := energyModes[v.EnergyMode]

	effective := basePowerHP * mode.power
	boost := energy.powerBoost * energy.deploymentTime
	return EnginePerformance{
		BasePower:      basePowerHP,
		ModeMultiplier: mode.power,
		EffectivePower: effective,
		EnergyBoost:    boost,
		TotalPower:     effective + boost,
		FuelBurnRate:   mode.fuelBurn,
		Reliability:    mode.reliability,
	}
}

// AeroBalance is the aerodynamic sub-model output.
type AeroBalance struct {
	Downforce           int
	CorneringMultiplier float64
	DragMultiplier      float64
	Style               string
}

// AeroBalance derives cornering and drag multipliers from the downforce
// level: more downforce corners better but drags more.
func (v Vehicle) AeroBalance() AeroBalance {
	efficiency := float64(v.Downforce) / 10
	return AeroBalance{
		Downforce:           v.Downforce,
		CorneringMultiplier: 1.0 + efficiency*0.15,
		DragMultiplier:      1.0 + efficiency*0.08,
		Style:               aeroStyle(v.Downforce),
	}
}

func aeroStyle(downforce int) string {
	switch {
	case downforce <= 3:
		return "Low downforce (Monza-style)"
	case downforce <= 7:
		return "Medium downforce (Balanced)"
	default:
		return "High downforce (Monaco-style)"
	}
}

// FuelEffect is the fuel sub-model output for a given track length.
type FuelEffect struct {
	FuelKg             float64
	TotalWeightKg      float64
	TimePenalty        float64
	HandlingMultiplier float64
	LapsRemaining      int
}

// FuelEffect derives the lap time penalty and handling effect of the
// current fuel load. The penalty is linear in fuel mass and track length.
func (v Vehicle) FuelEffect(trackLengthM float64) FuelEffect {
	mode := engineModes[v.EngineMode]
	return FuelEffect{
		FuelKg:             v.FuelKg,
		TotalWeightKg:      v.TotalWeightKg(),
		TimePenalty:        v.FuelKg * (trackLengthM / 1000) * fuelPenaltyPerKgPerKm,
		HandlingMultiplier: 1.0 + v.FuelKg/1000,
		LapsRemaining:      int(v.FuelKg / mode.consumptionKgPerLap),
	}
}

// AdvanceTireState returns a copy of the vehicle with the lap index set and
// the tire temperature shifted by the just-completed segment's category,
// clamped to [60, 140]. Called once per segment before that segment's time
// is computed.
func (v Vehicle) AdvanceTireState(lap int, category SegmentCategory) Vehicle {
	v.CurrentLap = lap
	v.TireTempC = clamp(v.TireTempC+segmentTempDelta[category], minTireTempC, maxTireTempC)
	return v
}
