package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/wkalt/prioq/demo"
	"github.com/wkalt/prioq/util/log"
)

var (
	demoSeed int64
	demoFact string
	demoInts []int
)

func runDemo(ctx context.Context, w io.Writer) error {
	sections := demo.Sections(ctx, demoSeed, demoFact, demoInts)
	log.Infof(ctx, "built %d queues", len(sections))
	if err := demo.Write(w, sections, writeOptions()); err != nil {
		return fmt.Errorf("failed to write demo output: %w", err)
	}
	return nil
}

// demoCmd represents the demo command
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Populate the demonstration queues and drain them in priority order",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := log.AddTags(context.Background(), "command", "demo")
		if err := runDemo(ctx, cmd.OutOrStdout()); err != nil {
			bailf("error: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().Int64VarP(&demoSeed, "seed", "", demo.DefaultSeed, "seed for the random queue")
	demoCmd.Flags().StringVarP(&demoFact, "fact", "", demo.DefaultFact, "text split into characters for the string queues")
	demoCmd.Flags().IntSliceVarP(&demoInts, "ints", "", demo.DefaultInts, "integers for the fixed and reversed queues")
}
