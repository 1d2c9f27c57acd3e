package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apexsim/apexsim/sim"
)

func TestParseConfigSpec(t *testing.T) {
	tests := []struct {
		spec    string
		want    sim.CandidateConfig
		wantErr bool
	}{
		{
			spec: "soft:30",
			want: sim.CandidateConfig{Label: "soft:30", Compound: "soft", FuelKg: 30},
		},
		{
			spec: "medium:50:8",
			want: sim.CandidateConfig{Label: "medium:50:8", Compound: "medium", FuelKg: 50, Downforce: 8},
		},
		{spec: "soft", wantErr: true},
		{spec: "soft:abc", wantErr: true},
		{spec: "soft:30:x", wantErr: true},
		{spec: "soft:30:8:extra", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := parseConfigSpec(tt.spec)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
