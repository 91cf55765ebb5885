package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/wkalt/prioq/demo"
	"github.com/wkalt/prioq/util/log"
)

var (
	logLevel     string
	outputFormat string
	outputLabels bool
	useColor     bool
)

var rootCmd = &cobra.Command{
	Use:   "prioq",
	Short: "Build and drain priority queues",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		slog.SetDefault(slog.New(log.NewHandler(cmd.ErrOrStderr(), level, useColor)))
		return nil
	},
	SilenceUsage: true,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func bailf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func writeOptions() demo.WriteOptions {
	return demo.WriteOptions{
		Format: outputFormat,
		Labels: outputLabels,
		Color:  useColor,
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", demo.FormatText, "output format (text, json, table)")
	rootCmd.PersistentFlags().BoolVarP(&outputLabels, "labels", "", false, "print a heading above each queue")
	rootCmd.PersistentFlags().BoolVarP(&useColor, "color", "", false, "colorize headings and log levels")
}
