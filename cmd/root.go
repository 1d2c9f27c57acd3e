package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/apexsim/apexsim/sim"
)

var (
	// Global flags
	logLevel    string // Log verbosity level
	catalogPath string // Optional catalog YAML override
	seed        int64  // Seed for the simulation RNG

	// Simulation flags shared by the run-style subcommands
	circuit        string  // Circuit name from the catalog
	tire           string  // Tire compound name
	fuelKg         float64 // Fuel load in kg
	weather        string  // Weather preset name
	trackCondition string  // Track condition name
	downforce      int     // Downforce level 1-10
	engineMode     string  // quali, race, conservation
	energyMode     string  // auto, aggressive, conservative
	aggression     float64 // Driver aggression 0.0-1.0
	useDRS         bool    // Whether DRS is available
	variance       float64 // Random lap time variance
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "apexsim",
	Short: "Parametric lap time simulator for circuit racing",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Path to a catalog YAML file (default: built-in catalog)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 42, "Seed for the simulation RNG")
}

// addRunFlags registers the simulation parameters shared by the run-style
// subcommands.
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&circuit, "circuit", "", "Circuit name (see 'apexsim circuits')")
	cmd.Flags().StringVar(&tire, "tire", "medium", "Tire compound")
	cmd.Flags().Float64Var(&fuelKg, "fuel", 50, "Fuel load in kg (0-110)")
	cmd.Flags().StringVar(&weather, "weather", "dry", "Weather condition")
	cmd.Flags().StringVar(&trackCondition, "track-condition", "rubbered_in", "Track condition (green, rubbered_in, dusty)")
	cmd.Flags().IntVar(&downforce, "downforce", 5, "Downforce level 1-10")
	cmd.Flags().StringVar(&engineMode, "engine-mode", "race", "Engine mode (quali, race, conservation)")
	cmd.Flags().StringVar(&energyMode, "ers", "auto", "Energy deployment (auto, aggressive, conservative)")
	cmd.Flags().Float64Var(&aggression, "aggression", 0.5, "Driver aggression 0.0-1.0")
	cmd.Flags().BoolVar(&useDRS, "drs", true, "Whether DRS is available")
	cmd.Flags().Float64Var(&variance, "variance", 0.02, "Random lap time variance (0 disables)")
}

// loadCatalog returns the built-in catalog, or the one named by --catalog.
func loadCatalog() *sim.Catalog {
	if catalogPath == "" {
		c, err := sim.DefaultCatalog()
		if err != nil {
			logrus.Fatalf("Built-in catalog failed to parse: %v", err)
		}
		return c
	}
	c, err := sim.LoadCatalog(catalogPath)
	if err != nil {
		logrus.Fatalf("Unable to load catalog %s: %v", catalogPath, err)
	}
	return c
}

// session bundles the validated inputs a run-style subcommand needs.
type session struct {
	catalog *sim.Catalog
	track   *sim.Track
	vehicle sim.Vehicle
	engine  *sim.Engine
}

// newSession builds a session from the shared simulation flags, exiting
// with a fatal log on any validation failure.
func newSession() *session {
	catalog := loadCatalog()

	if circuit == "" {
		logrus.Fatalf("Circuit not provided. Available: %v", catalog.CircuitNames())
	}

	track, err := sim.NewTrack(catalog, circuit)
	if err != nil {
		logrus.Fatalf("Setup error: %v", err)
	}

	vehicle, err := sim.NewVehicle(catalog, tire, fuelKg)
	if err != nil {
		logrus.Fatalf("Setup error: %v", err)
	}
	vehicle, err = vehicle.WithSetup(downforce, sim.EngineMode(engineMode), sim.EnergyMode(energyMode))
	if err != nil {
		logrus.Fatalf("Setup error: %v", err)
	}

	cond, err := sim.NewConditionSet(catalog, weather, trackCondition)
	if err != nil {
		logrus.Fatalf("Setup error: %v", err)
	}

	opts := sim.SimOptions{Aggression: aggression, UseDRS: useDRS, Variance: variance}
	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(seed))
	engine, err := sim.NewEngine(catalog, track, cond, opts, rng)
	if err != nil {
		logrus.Fatalf("Setup error: %v", err)
	}

	return &session{catalog: catalog, track: track, vehicle: vehicle, engine: engine}
}
