package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// adviseCmd prints setup recommendations for the selected circuit.
var adviseCmd = &cobra.Command{
	Use:   "advise",
	Short: "Suggest a setup for the selected circuit and weather",
	Run: func(cmd *cobra.Command, args []string) {
		s := newSession()
		advice := s.engine.SetupAdvice()

		fmt.Println(strings.Repeat("=", 60))
		fmt.Printf("SETUP ADVICE — %s\n", s.track.Name)
		fmt.Println(strings.Repeat("=", 60))
		fmt.Printf("Classification: %s\n", advice.Classification)
		fmt.Printf("Downforce:      %d/10\n", advice.Downforce)
		fmt.Printf("Engine mode:    %s\n", advice.EngineMode)
		fmt.Printf("Energy deploy:  %s\n", advice.EnergyMode)

		if advice.Tires.Recommended != "" {
			fmt.Printf("Tires:          %s (for %s conditions)\n", advice.Tires.Recommended, weather)
		} else {
			fmt.Printf("Tires:          %s (qualifying), %s (race start)\n",
				advice.Tires.Qualifying, advice.Tires.RaceStart)
		}

		fmt.Println("\nReasoning:")
		for _, r := range advice.Rationale {
			fmt.Printf("  - %s\n", r)
		}
	},
}

func init() {
	addRunFlags(adviseCmd)
	rootCmd.AddCommand(adviseCmd)
}
