package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command with args and captures its output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	tmp := t.TempDir()
	t.Setenv("HOME", tmp)

	buf := new(bytes.Buffer)
	root := (&RootCommand{}).GetCobraCommand()
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(append(args, "--db-path", filepath.Join(tmp, "unitgraph.db")))

	err := root.Execute()
	return buf.String(), err
}

func TestConvertCommand(t *testing.T) {
	out, err := executeCommand(t, "convert", "26.2", "mi", "km")
	require.NoError(t, err)
	assert.Contains(t, out, "42.164")
	assert.Contains(t, out, "km")
}

func TestConvertToSI(t *testing.T) {
	out, err := executeCommand(t, "convert", "1", "ft", "--si", "--ascii")
	require.NoError(t, err)
	assert.Contains(t, out, "0.3048")
	assert.Contains(t, out, "m")
}

func TestConvertMismatchedDimensions(t *testing.T) {
	_, err := executeCommand(t, "convert", "5", "kg", "m")
	assert.Error(t, err)
}

func TestParseCommand(t *testing.T) {
	out, err := executeCommand(t, "parse", "kg*m/s2", "--ascii")
	require.NoError(t, err)
	assert.Contains(t, out, "Dimension: MLT-2")
	assert.Contains(t, out, "kg*m*s-2")
}

func TestParseInvalidExpression(t *testing.T) {
	_, err := executeCommand(t, "parse", "notaunit")
	assert.Error(t, err)
}

func TestUnitsCommandFiltersByDimension(t *testing.T) {
	_, err := executeCommand(t, "units", "--dimension", "L")
	require.NoError(t, err)
}

func TestConfigShowCommand(t *testing.T) {
	out, err := executeCommand(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "precision:")
	assert.Contains(t, out, "unicode:")
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "unitgraph version")
}

func TestCacheListAfterConvert(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	dbPath := filepath.Join(tmp, "unitgraph.db")

	run := func(args ...string) (string, error) {
		buf := new(bytes.Buffer)
		root := (&RootCommand{}).GetCobraCommand()
		root.SetOut(buf)
		root.SetErr(buf)
		root.SetArgs(append(args, "--db-path", dbPath))
		err := root.Execute()
		return buf.String(), err
	}

	_, err := run("convert", "1", "mi", "km")
	require.NoError(t, err)

	_, err = run("cache", "list", "--dimension", "L")
	require.NoError(t, err)

	out, err := run("cache", "purge", "--dimension", "L")
	require.NoError(t, err)
	assert.Contains(t, out, "Purged")
}
