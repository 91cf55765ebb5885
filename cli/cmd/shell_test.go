package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/chzyer/readline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedReader struct {
	inputs  []any // string or error
	prompts []string
	history []string
	saveErr error
}

func (r *scriptedReader) Readline() (string, error) {
	if len(r.inputs) == 0 {
		return "", io.EOF
	}
	next := r.inputs[0]
	r.inputs = r.inputs[1:]
	if err, ok := next.(error); ok {
		return "", err
	}
	return next.(string), nil
}

func (r *scriptedReader) SetPrompt(prompt string) {
	r.prompts = append(r.prompts, prompt)
}

func (r *scriptedReader) SaveHistory(content string) error {
	r.history = append(r.history, content)
	return r.saveErr
}

func TestRepl(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		assertion string
		inputs    []any
		expected  string
		history   []string
	}{
		{
			"single expression",
			[]any{"ints(3, 1, 2);"},
			"1\n2\n3\n\n",
			[]string{"ints(3, 1, 2);"},
		},
		{
			"expression across lines",
			[]any{"ints(3,", "  1, 2)", "order desc;"},
			"3\n2\n1\n\n",
			[]string{"ints(3, 1, 2) order desc;"},
		},
		{
			"blank lines are skipped",
			[]any{"", "   ", `chars("ba");`},
			"a\nb\n\n",
			[]string{`chars("ba");`},
		},
		{
			"interrupt discards partial input",
			[]any{"ints(9,", readline.ErrInterrupt, "ints(1);"},
			"1\n\n",
			[]string{"ints(1);"},
		},
		{
			"errors are reported and the shell continues",
			[]any{"floats(1);", "ints(2);"},
			"",
			[]string{"floats(1);", "ints(2);"},
		},
		{
			"exit stops reading",
			[]any{"ints(1);", "exit", "ints(2);"},
			"1\n\n",
			[]string{"ints(1);"},
		},
	}
	for _, c := range cases {
		t.Run(c.assertion, func(t *testing.T) {
			resetFlags()
			r := &scriptedReader{inputs: c.inputs}
			buf := &bytes.Buffer{}
			require.NoError(t, repl(ctx, r, buf))
			if c.expected != "" {
				assert.Equal(t, c.expected, buf.String())
			}
			assert.Equal(t, c.history, r.history)
		})
	}
}

func TestReplReportsErrors(t *testing.T) {
	resetFlags()
	r := &scriptedReader{inputs: []any{"floats(1);", "random(1, 0);", "ints(2);"}}
	buf := &bytes.Buffer{}
	require.NoError(t, repl(context.Background(), r, buf))
	out := buf.String()
	assert.Contains(t, out, "ERROR: failed to parse expression")
	assert.Contains(t, out, "ERROR: invalid argument")
	assert.Contains(t, out, "2\n\n")
}

func TestReplPrompts(t *testing.T) {
	resetFlags()
	r := &scriptedReader{inputs: []any{"ints(1,", "2);"}}
	require.NoError(t, repl(context.Background(), r, &bytes.Buffer{}))
	assert.Equal(t, []string{shellContinuePrompt, shellPrompt}, r.prompts)
}

func TestReplHelp(t *testing.T) {
	resetFlags()
	r := &scriptedReader{inputs: []any{"help"}}
	buf := &bytes.Buffer{}
	require.NoError(t, repl(context.Background(), r, buf))
	assert.Contains(t, buf.String(), "queue expression")
}

func TestReplHistoryFailureIsNotFatal(t *testing.T) {
	resetFlags()
	r := &scriptedReader{inputs: []any{"ints(1);"}, saveErr: errors.New("disk full")}
	buf := &bytes.Buffer{}
	require.NoError(t, repl(context.Background(), r, buf))
	assert.Equal(t, "1\n\n", buf.String())
}

func TestReplReadError(t *testing.T) {
	resetFlags()
	r := &scriptedReader{inputs: []any{errors.New("tty gone")}}
	err := repl(context.Background(), r, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tty gone")
}
