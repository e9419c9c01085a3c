package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/apvd-go/apvd"
)

var inspectCfgPath string

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "show the initial scene's regions without training",
	Long: `Read a run configuration file, build the scene its starting
shapes induce, and print every region's key and area. Useful for
checking a configuration before spending a training budget on it.`,
	Run: doInspect,
}

func init() {
	RootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVar(&inspectCfgPath, "config", "apvd.yml", "run configuration file")
}

func doInspect(cmd *cobra.Command, args []string) {
	var cfg RunConfig
	check(unmarshalYAMLFile(inspectCfgPath, &cfg))

	shapes, _, err := buildScene(cfg)
	check(err)

	sc, err := apvd.NewScene(shapes)
	check(err)

	fmt.Printf("%d shapes, %d components, %d regions\n", len(sc.Shapes), len(sc.Components), len(sc.Regions))
	for _, r := range sc.Regions {
		fmt.Printf("  region %s: area=%.6f\n", r.Key, r.Area.Val())
	}
}
