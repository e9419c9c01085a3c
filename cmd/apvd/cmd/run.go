package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/apvd-go/apvd"
	"github.com/apvd-go/apvd/optim"
)

var runCfgPath string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "fit shapes to target region areas",
	Long: `Run gradient-based optimization so a scene's region areas match
the targets named in the run configuration file, then print the
best step found.`,
	Run: doRun,
}

func init() {
	RootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&runCfgPath, "config", "apvd.yml", "run configuration file")
}

func buildOptimizer(spec OptimizerSpec) (apvd.Optimizer, error) {
	switch spec.Kind {
	case "gd", "":
		return optim.NewGD(spec.Rate), nil
	case "adam":
		return optim.NewAdam(spec.Rate, 0, 0, 0), nil
	case "clipped":
		return optim.NewClipped(optim.NewAdam(spec.Rate, 0, 0, 0), spec.MaxNorm), nil
	case "robust":
		return optim.NewRobust(spec.Rate, spec.WarmupSteps, spec.MaxNorm, spec.RejectFactor), nil
	}
	return nil, fmt.Errorf("apvd: unknown optimizer kind %q", spec.Kind)
}

func doRun(cmd *cobra.Command, args []string) {
	var cfg RunConfig
	check(unmarshalYAMLFile(runCfgPath, &cfg))

	shapes, masks, err := buildScene(cfg)
	check(err)

	tm, err := apvd.NewTargetsMap(len(shapes), cfg.Targets)
	check(err)

	opt, err := buildOptimizer(cfg.Optimizer)
	check(err)

	m := apvd.NewModel(shapes, masks, tm, opt)
	for i := 0; i < cfg.Steps; i++ {
		ok, err := m.Advance()
		check(err)
		if !ok {
			break
		}
	}

	best := m.Best()
	if best == nil {
		fmt.Println("no step completed")
		return
	}
	fmt.Printf("best step: %d, loss %.6f\n", best.Index, best.Loss.Val())
	for _, e := range best.Errors {
		fmt.Printf("  region %s: actual=%.4f target=%.4f class=%d\n", e.Key, e.Actual, e.Target, e.Class)
	}
	m.Log.Dump(os.Stdout)
}
