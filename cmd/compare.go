package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/apexsim/apexsim/sim"
)

var configSpecs []string

// compareCmd ranks explicit vehicle configurations by lap time.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare vehicle configurations on one circuit",
	Long: `Compare vehicle configurations on one circuit.

Each --config is compound:fuel[:downforce], e.g. soft:30 or medium:50:8.`,
	Run: func(cmd *cobra.Command, args []string) {
		s := newSession()

		configs := make([]sim.CandidateConfig, 0, len(configSpecs))
		for _, spec := range configSpecs {
			cfg, err := parseConfigSpec(spec)
			if err != nil {
				logrus.Fatalf("Invalid --config %q: %v", spec, err)
			}
			configs = append(configs, cfg)
		}
		if len(configs) == 0 {
			logrus.Fatalf("No configurations given; use --config compound:fuel[:downforce]")
		}

		entries, err := s.engine.CompareConfigurations(configs)
		if err != nil {
			logrus.Fatalf("Comparison error: %v", err)
		}
		printComparison(entries)
	},
}

func init() {
	addRunFlags(compareCmd)
	compareCmd.Flags().StringSliceVar(&configSpecs, "config", nil, "Candidate configuration compound:fuel[:downforce] (repeatable)")
	rootCmd.AddCommand(compareCmd)
}

func parseConfigSpec(spec string) (sim.CandidateConfig, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return sim.CandidateConfig{}, fmt.Errorf("want compound:fuel[:downforce]")
	}

	fuel, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return sim.CandidateConfig{}, fmt.Errorf("bad fuel %q: %w", parts[1], err)
	}

	cfg := sim.CandidateConfig{Label: spec, Compound: parts[0], FuelKg: fuel}
	if len(parts) == 3 {
		df, err := strconv.Atoi(parts[2])
		if err != nil {
			return sim.CandidateConfig{}, fmt.Errorf("bad downforce %q: %w", parts[2], err)
		}
		cfg.Downforce = df
	}
	return cfg, nil
}

func printComparison(entries []sim.ComparisonEntry) {
	fmt.Println(strings.Repeat("=", 72))
	fmt.Println("CONFIGURATION COMPARISON")
	fmt.Println(strings.Repeat("=", 72))
	fmt.Printf("%-4s %-24s %-12s %s\n", "Rank", "Config", "Lap Time", "Segments")
	fmt.Println(strings.Repeat("-", 72))

	for rank, e := range entries {
		var segs []string
		for _, t := range e.Result.SegmentTimes {
			segs = append(segs, sim.FormatSegmentTime(t))
		}
		fmt.Printf("%-4d %-24s %-12s %s\n",
			rank+1, e.Config.Label, sim.FormatLapTime(e.Result.TotalTime), strings.Join(segs, "  "))
	}
}
