package testutils

import (
	"io"
	glog "log"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

/*
General purpose test utilities.
*/

////////////////////////////////////////////////////////////////////////////////

// CaptureOutput runs f with stdout, stderr, and the standard logger redirected
// to a pipe, and returns everything written.
func CaptureOutput(t *testing.T, f func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	stdout := os.Stdout
	stderr := os.Stderr
	os.Stdout = w
	os.Stderr = w
	glog.SetOutput(w)
	done := make(chan []byte, 1)
	go func() {
		out, _ := io.ReadAll(r)
		_ = r.Close()
		done <- out
	}()
	defer func() {
		_ = w.Close()
		os.Stdout = stdout
		os.Stderr = stderr
		glog.SetOutput(stderr)
	}()
	f()
	require.NoError(t, w.Close())
	return string(<-done)
}

// Runes returns the characters of s as single-character strings.
func Runes(s string) []string {
	result := make([]string, 0, len(s))
	for _, r := range s {
		result = append(result, string(r))
	}
	return result
}
