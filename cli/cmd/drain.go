package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wkalt/prioq/demo"
	"github.com/wkalt/prioq/ql"
	"github.com/wkalt/prioq/util/log"
)

var drainSeed int64

func runDrain(ctx context.Context, w io.Writer, expression string) error {
	section, err := ql.Run(ctx, expression, drainSeed)
	if err != nil {
		return err
	}
	if err := demo.Write(w, []demo.Section{section}, writeOptions()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// drainCmd represents the drain command
var drainCmd = &cobra.Command{
	Use:   "drain [expression]",
	Short: "Build a queue from an expression and drain it",
	Long: `Build a queue from an expression and drain it in priority order.

Examples:
  prioq drain 'ints(25, 22, 20, 3, 1) order desc'
  prioq drain 'chars("EDUCATION SHOULD ESCHEW OBFUCATION") unique'
  prioq drain 'random(10, 20)' --seed 47`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := log.AddTags(context.Background(), "command", "drain")
		if err := runDrain(ctx, cmd.OutOrStdout(), strings.Join(args, " ")); err != nil {
			bailf("error: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(drainCmd)

	drainCmd.Flags().Int64VarP(&drainSeed, "seed", "", demo.DefaultSeed, "seed for random sources without an explicit seed")
}
