package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "apvd",
	Short: "fit area-proportional Venn diagrams",
	Long: `apvd fits a set of shapes (circles, ellipses, polygons) so that
the areas of their overlapping regions match a set of target values,
by gradient-based optimization:
	- describe shapes and target region areas in a YAML run configuration,
	- inspect the starting scene's regions,
	- run the optimizer and print the best step found.
No command reconstructs intermediate steps from a trace.`,
}

// Execute adds all child commands to RootCmd and runs it. This is called
// by main.main(); it only needs to happen once.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
