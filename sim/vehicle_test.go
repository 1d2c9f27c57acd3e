package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustVehicle(t *testing.T, compound string, fuelKg float64) Vehicle {
	t.Helper()
	v, err := NewVehicle(mustCatalog(t), compound, fuelKg)
	require.NoError(t, err)
	return v
}

func TestNewVehicle_Defaults(t *testing.T) {
	v := mustVehicle(t, "medium", 50)

	assert.Equal(t, "medium", v.Compound)
	assert.Equal(t, 50.0, v.FuelKg)
	assert.Equal(t, 5, v.Downforce)
	assert.Equal(t, EngineRace, v.EngineMode)
	assert.Equal(t, EnergyAuto, v.EnergyMode)
	assert.Equal(t, 1, v.CurrentLap)
	assert.Equal(t, 90.0, v.TireTempC)
}

func TestNewVehicle_Validation(t *testing.T) {
	catalog := mustCatalog(t)

	tests := []struct {
		name     string
		compound string
		fuel     float64
	}{
		{"unknown compound", "slick-2000", 50},
		{"negative fuel", "medium", -10},
		{"too much fuel", "medium", 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewVehicle(catalog, tt.compound, tt.fuel)
			require.Error(t, err)
			var verr *ValidationError
			assert.True(t, errors.As(err, &verr), "want ValidationError, got %T", err)
		})
	}
}

func TestVehicle_WithSetup(t *testing.T) {
	v := mustVehicle(t, "medium", 50)

	v, err := v.WithSetup(8, EngineQuali, EnergyAggressive)
	require.NoError(t, err)
	assert.Equal(t, 8, v.Downforce)
	assert.Equal(t, EngineQuali, v.EngineMode)
	assert.Equal(t, EnergyAggressive, v.EnergyMode)
}

func TestVehicle_WithSetup_Validation(t *testing.T) {
	v := mustVehicle(t, "medium", 50)

	tests := []struct {
		name      string
		downforce int
		engine    EngineMode
		energy    EnergyMode
	}{
		{"downforce too low", 0, EngineRace, EnergyAuto},
		{"downforce too high", 11, EngineRace, EnergyAuto},
		{"bad engine mode", 5, "overtake", EnergyAuto},
		{"bad energy mode", 5, EngineRace, "hotlap"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.WithSetup(tt.downforce, tt.engine, tt.energy)
			require.Error(t, err)
			var verr *ValidationError
			assert.True(t, errors.As(err, &verr), "want ValidationError, got %T", err)
		})
	}
}

func TestVehicle_TireDegradation(t *testing.T) {
	v := mustVehicle(t, "medium", 50)
	spec := v.compound

	// Warm-up phase never exceeds full performance.
	for lap := 1; lap <= spec.PeakLaps; lap++ {
		assert.LessOrEqual(t, tireDegradation(lap, spec), 1.0, "lap %d", lap)
	}

	// Non-increasing past peak, floored at 0.7.
	prev := tireDegradation(spec.PeakLaps, spec)
	for lap := spec.PeakLaps + 1; lap <= spec.PeakLaps+60; lap++ {
		d := tireDegradation(lap, spec)
		assert.LessOrEqual(t, d, prev, "lap %d", lap)
		assert.GreaterOrEqual(t, d, 0.7, "lap %d", lap)
		prev = d
	}
}

func TestVehicle_EffectiveGripBounds(t *testing.T) {
	catalog := mustCatalog(t)
	for _, compound := range catalog.CompoundNames() {
		v, err := NewVehicle(catalog, compound, 50)
		require.NoError(t, err)
		base := v.compound.GripModifier
		for lap := 1; lap <= 40; lap++ {
			perf := v.TirePerformance(lap)
			assert.Greater(t, perf.EffectiveGrip, 0.0, "%s lap %d", compound, lap)
			assert.LessOrEqual(t, perf.EffectiveGrip, base*1.05, "%s lap %d", compound, lap)
		}
	}
}

func TestVehicle_TemperatureEffect(t *testing.T) {
	tests := []struct {
		name  string
		tempC float64
		want  float64
	}{
		{"in optimal range", 95, 1.0},
		{"below cold threshold", 65, 0.85},
		{"above overheat threshold", 125, 0.88},
		{"cool but not cold", 81, 1.0 - (4.0/20)*0.05},
		{"warm but not overheated", 111, 1.0 - (6.0/20)*0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// medium optimal range is [85, 105]
			v := mustVehicle(t, "medium", 50)
			v.TireTempC = tt.tempC
			assert.InDelta(t, tt.want, v.temperatureEffect(), 1e-9)
		})
	}
}

func TestVehicle_EnginePerformance(t *testing.T) {
	tests := []struct {
		engine EngineMode
		energy EnergyMode
		want   float64
	}{
		{EngineQuali, EnergyAggressive, 1000*1.08 + 50*0.8},
		{EngineRace, EnergyAuto, 1000*1.0 + 35*0.6},
		{EngineConservation, EnergyConservative, 1000*0.92 + 25*0.4},
	}

	for _, tt := range tests {
		t.Run(string(tt.engine)+"/"+string(tt.energy), func(t *testing.T) {
			v := mustVehicle(t, "medium", 50)
			v, err := v.WithSetup(5, tt.engine, tt.energy)
			require.NoError(t, err)
			perf := v.EnginePerformance()
			assert.InDelta(t, tt.want, perf.TotalPower, 1e-9)
		})
	}
}

func TestVehicle_AeroBalance(t *testing.T) {
	tests := []struct {
		downforce int
		cornering float64
		drag      float64
		style     string
	}{
		{2, 1.03, 1.016, "Low downforce (Monza-style)"},
		{5, 1.075, 1.04, "Medium downforce (Balanced)"},
		{10, 1.15, 1.08, "High downforce (Monaco-style)"},
	}

	for _, tt := range tests {
		v := mustVehicle(t, "medium", 50)
		v, err := v.WithSetup(tt.downforce, EngineRace, EnergyAuto)
		require.NoError(t, err)
		aero := v.AeroBalance()
		assert.InDelta(t, tt.cornering, aero.CorneringMultiplier, 1e-9)
		assert.InDelta(t, tt.drag, aero.DragMultiplier, 1e-9)
		assert.Equal(t, tt.style, aero.Style)
	}
}

func TestVehicle_FuelEffectLinear(t *testing.T) {
	heavy := mustVehicle(t, "medium", 110)
	light := mustVehicle(t, "medium", 20)

	heavyFx := heavy.FuelEffect(5000)
	lightFx := light.FuelEffect(5000)

	assert.Greater(t, heavyFx.TimePenalty, lightFx.TimePenalty)
	assert.InDelta(t, 5.5, heavyFx.TimePenalty/lightFx.TimePenalty, 1e-9)

	// Doubling fuel doubles the penalty.
	double := mustVehicle(t, "medium", 40)
	single := mustVehicle(t, "medium", 20)
	assert.InDelta(t, 2.0, double.FuelEffect(5000).TimePenalty/single.FuelEffect(5000).TimePenalty, 1e-9)
}

func TestVehicle_FuelLapsRemaining(t *testing.T) {
	v := mustVehicle(t, "medium", 28)
	assert.Equal(t, 10, v.FuelEffect(5000).LapsRemaining) // race mode, 2.8 kg/lap

	quali, err := v.WithSetup(5, EngineQuali, EnergyAuto)
	require.NoError(t, err)
	assert.Equal(t, 8, quali.FuelEffect(5000).LapsRemaining) // 28 / 3.5
}

func TestVehicle_AdvanceTireState(t *testing.T) {
	v := mustVehicle(t, "medium", 50)

	updated := v.AdvanceTireState(3, HighSpeed)
	assert.Equal(t, 3, updated.CurrentLap)
	assert.Equal(t, 93.0, updated.TireTempC)
	// Original value untouched.
	assert.Equal(t, 1, v.CurrentLap)
	assert.Equal(t, 90.0, v.TireTempC)

	// Clamped at the hot end.
	hot := v
	for i := 0; i < 50; i++ {
		hot = hot.AdvanceTireState(1, HighSpeed)
	}
	assert.Equal(t, 140.0, hot.TireTempC)

	// Clamped at the cold end.
	cold := v
	for i := 0; i < 50; i++ {
		cold = cold.AdvanceTireState(1, LowSpeed)
	}
	assert.Equal(t, 60.0, cold.TireTempC)
}

func TestVehicle_TotalWeight(t *testing.T) {
	v := mustVehicle(t, "medium", 50)
	assert.Equal(t, 848.0, v.TotalWeightKg())
}
