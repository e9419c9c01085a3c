package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ShapeSpec is one shape entry of a run configuration file (spec §6).
type ShapeSpec struct {
	Kind   string        `yaml:"kind"` // "circle", "xyrr", "xyrrt", "polygon"
	C      []float64     `yaml:"c,omitempty"`
	R      float64       `yaml:"r,omitempty"`
	Rx     float64       `yaml:"rx,omitempty"`
	Ry     float64       `yaml:"ry,omitempty"`
	T      float64       `yaml:"t,omitempty"`
	Verts  [][2]float64  `yaml:"verts,omitempty"`
	Frozen []bool        `yaml:"frozen,omitempty"` // per-coordinate freeze flags, true=frozen
}

// OptimizerSpec selects and configures an optimizer (spec §4.8).
type OptimizerSpec struct {
	Kind         string  `yaml:"kind"` // "gd", "adam", "clipped", "robust"
	Rate         float64 `yaml:"rate"`
	MaxNorm      float64 `yaml:"max_norm,omitempty"`
	WarmupSteps  int     `yaml:"warmup_steps,omitempty"`
	RejectFactor float64 `yaml:"reject_factor,omitempty"`
}

// TraceSpec holds the tiered keyframe intervals (spec §2.10). The run and
// inspect commands do not read it.
type TraceSpec struct {
	Intervals []int `yaml:"intervals"`
}

// RunConfig is the top-level apvd run configuration file (spec §6).
type RunConfig struct {
	Shapes    []ShapeSpec        `yaml:"shapes"`
	Targets   map[string]float64 `yaml:"targets"`
	Optimizer OptimizerSpec      `yaml:"optimizer"`
	Steps     int                `yaml:"steps"`
	Trace     TraceSpec          `yaml:"trace"`
}

func defaultConfig() RunConfig {
	return RunConfig{
		Shapes: []ShapeSpec{
			{Kind: "circle", C: []float64{-0.5, 0}, R: 1},
			{Kind: "circle", C: []float64{0.5, 0}, R: 1},
		},
		Targets: map[string]float64{
			"0-": 2,
			"-1": 2,
			"01": 1,
		},
		Optimizer: OptimizerSpec{Kind: "robust", Rate: 0.01, MaxNorm: 10, WarmupSteps: 20, RejectFactor: 4},
		Steps:     500,
		Trace:     TraceSpec{Intervals: []int{1, 10, 100}},
	}
}

var configCmd = &cobra.Command{
	Use:   "config FILE",
	Short: "create a run configuration file",
	Long: `Create a run configuration file in YAML format, prefilled with a
two-circle example.

If FILE is not provided, 'apvd.yml' is used.`,
	Run: func(cmd *cobra.Command, args []string) {
		path := "apvd.yml"
		if len(args) >= 1 {
			path = args[0]
		}
		if err := fileExists(path); err == nil {
			if !askForConfirmation(fmt.Sprintf("file '%s' already exists, overwrite? [y/N]", path)) {
				fmt.Println("aborted by user")
				return
			}
		}
		check(marshalYAMLFile(path, defaultConfig()))
		fmt.Printf("run configuration written to '%s'\n", path)
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
}
