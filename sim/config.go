package sim

// SimOptions groups the driver and randomness parameters of a run.
type SimOptions struct {
	Aggression float64 // driver aggression in [0, 1]
	UseDRS     bool    // whether DRS zones grant their benefit
	Variance   float64 // half-width of the per-segment random variance draw
}

// DefaultSimOptions returns the stock run parameters: middling aggression,
// DRS available, 2% variance.
func DefaultSimOptions() SimOptions {
	return SimOptions{Aggression: 0.5, UseDRS: true, Variance: 0.02}
}

// Validate checks the option ranges.
func (o SimOptions) Validate() error {
	if o.Aggression < 0 || o.Aggression > 1 {
		return validationErrorf("aggression", "must be between 0.0 and 1.0, got %v", o.Aggression)
	}
	if o.Variance < 0 {
		return validationErrorf("variance", "must not be negative, got %v", o.Variance)
	}
	return nil
}
