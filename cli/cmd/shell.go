package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
	"github.com/wkalt/prioq/demo"
	"github.com/wkalt/prioq/ql"
	"github.com/wkalt/prioq/util/log"
)

const (
	shellPrompt         = "prioq # "
	shellContinuePrompt = "... # "
)

const shellHelp = `Enter a queue expression terminated by a semicolon, for example:

  ints(25, 22, 20, 3, 1) order desc;
  chars("EDUCATION SHOULD ESCHEW OBFUCATION") unique;
  random(10, 20, 47);

Expressions may span several lines. Type "exit" or press ^D to quit.`

var shellHistoryFile string

// lineReader is the subset of *readline.Instance the shell loop uses.
type lineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
	SaveHistory(content string) error
}

func printShellError(w io.Writer, err error) {
	fmt.Fprintln(w, "ERROR: "+err.Error())
}

// repl reads expressions from r until EOF and drains each one to w.
func repl(ctx context.Context, r lineReader, w io.Writer) error {
	lines := []string{}
	for {
		line, err := r.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				lines = lines[:0]
				r.SetPrompt(shellPrompt)
				continue
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to read line: %w", err)
		}
		line = strings.TrimSpace(line)

		switch {
		case line == "":
			continue
		case len(lines) == 0 && (line == "help" || line == "\\h"):
			fmt.Fprintln(w, shellHelp)
			continue
		case len(lines) == 0 && (line == "exit" || line == "quit" || line == "\\q"):
			return nil
		}

		lines = append(lines, line)
		if !strings.HasSuffix(line, ";") {
			r.SetPrompt(shellContinuePrompt)
			continue
		}
		expression := strings.Join(lines, " ")
		lines = lines[:0]
		r.SetPrompt(shellPrompt)
		if err := r.SaveHistory(expression); err != nil {
			log.Warnf(ctx, "failed to save history: %v", err)
		}
		section, err := ql.Run(ctx, expression, drainSeed)
		if err != nil {
			printShellError(w, err)
			continue
		}
		if err := demo.Write(w, []demo.Section{section}, writeOptions()); err != nil {
			printShellError(w, err)
		}
	}
}

func runShell(ctx context.Context) error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:                 shellPrompt,
		HistoryFile:            shellHistoryFile,
		DisableAutoSaveHistory: true,
		InterruptPrompt:        "^C",
		EOFPrompt:              "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to start shell: %w", err)
	}
	defer l.Close()
	l.CaptureExitSignal()
	fmt.Fprintln(l.Stdout(), `Type "help" for help.`)
	return repl(ctx, l, l.Stdout())
}

// shellCmd represents the shell command
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactively build and drain queues from expressions",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := log.AddTags(context.Background(), "command", "shell")
		if err := runShell(ctx); err != nil {
			bailf("error: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)

	shellCmd.Flags().StringVarP(
		&shellHistoryFile, "history-file", "",
		filepath.Join(os.TempDir(), "prioq-history.tmp"),
		"file to keep shell history in",
	)
	shellCmd.Flags().Int64VarP(&drainSeed, "seed", "", demo.DefaultSeed, "seed for random sources without an explicit seed")
}
