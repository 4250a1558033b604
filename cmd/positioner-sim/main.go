// Command positioner-sim runs a closed-loop positioner against a simulated
// plant described by a scenario YAML file and plots the settling trace.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/edaniels/golog"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"go.viam.com/actuator/control"
	"go.viam.com/actuator/positioner"
	"go.viam.com/actuator/sim"
	"go.viam.com/actuator/telemetry"
	"go.viam.com/actuator/units"
)

var (
	scenarioFile string
	duration     time.Duration
	period       time.Duration
	verbose      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "positioner-sim",
		Short: "closed-loop position control against a simulated plant",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
	rootCmd.Flags().StringVarP(&scenarioFile, "scenario", "s", "", "scenario YAML file (required)")
	rootCmd.Flags().DurationVarP(&duration, "duration", "d", 5*time.Second, "simulated run time")
	rootCmd.Flags().DurationVarP(&period, "period", "p", 20*time.Millisecond, "control period")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log each telemetry snapshot")
	if err := rootCmd.MarkFlagRequired("scenario"); err != nil {
		panic(err)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	logger := golog.NewLogger("positioner-sim")

	scenario, err := LoadScenario(scenarioFile)
	if err != nil {
		return err
	}

	unit := scenario.AngleUnit()
	plantCfg := scenario.Plant
	plantCfg.Unit = unit
	plant := sim.NewPlant(plantCfg)

	cfg := positioner.Config{
		Motor:            plant,
		Encoder:          plant,
		Gains:            scenario.Gains,
		Tolerance:        scenario.Tolerance,
		StartingPosition: units.NewAngle(scenario.StartingPosition, unit),
		Unit:             unit,
		Logger:           logger,
	}
	if scenario.Clamp != nil {
		cfg.Clamp = control.ClampToRange(scenario.Clamp.Min, scenario.Clamp.Max)
	}
	if verbose {
		cfg.Sink = telemetry.NewLogSink(logger)
	}

	p, err := positioner.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := p.Close(ctx); err != nil {
			logger.Errorw("close failed", "error", err)
		}
	}()

	if err := plant.SetPosition(ctx, units.NewAngle(scenario.StartingPosition, unit)); err != nil {
		return err
	}
	p.SetSetpoint(units.NewAngle(scenario.Setpoint, unit))

	steps := int(duration / period)
	trace := make([]float64, 0, steps)
	settledAt := -1
	for i := 0; i < steps; i++ {
		if err := p.Tick(ctx); err != nil {
			return err
		}
		plant.Step(period)

		pos, err := plant.Position(ctx)
		if err != nil {
			return err
		}
		trace = append(trace, pos.Value())

		if settledAt < 0 {
			at, err := p.AtPosition(ctx)
			if err != nil {
				return err
			}
			if at {
				settledAt = i
			}
		}
	}

	fmt.Println(asciigraph.Plot(trace,
		asciigraph.Height(15),
		asciigraph.Width(72),
		asciigraph.Caption(fmt.Sprintf("position (%s) vs tick, setpoint %v", unit, scenario.Setpoint)),
	))
	final := trace[len(trace)-1]
	fmt.Printf("final position: %.4f %s (error %.4f)\n", final, unit, scenario.Setpoint-final)
	if settledAt >= 0 {
		fmt.Printf("settled within tolerance after %d ticks (%v)\n", settledAt, time.Duration(settledAt)*period)
	} else {
		fmt.Println("did not settle within tolerance")
	}
	return nil
}
