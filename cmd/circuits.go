package cmd

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/apexsim/apexsim/sim"
)

// circuitsCmd lists the catalog circuits with their summaries.
var circuitsCmd = &cobra.Command{
	Use:   "circuits",
	Short: "List the circuits in the catalog",
	Run: func(cmd *cobra.Command, args []string) {
		catalog := loadCatalog()

		fmt.Printf("%-12s %-32s %-8s %-9s %s\n", "Key", "Name", "Length", "Segments", "Class")
		fmt.Println(strings.Repeat("-", 88))
		for _, name := range catalog.CircuitNames() {
			track, err := sim.NewTrack(catalog, name)
			if err != nil {
				logrus.Fatalf("Catalog error: %v", err)
			}
			summary := track.Summary()
			fmt.Printf("%-12s %-32s %-8.0f %-9d %s\n",
				name, summary.Name, summary.LengthM, len(summary.Segments), summary.Classification)
		}
	},
}

func init() {
	rootCmd.AddCommand(circuitsCmd)
}
