package cli

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs a fresh root command with args and returns what it wrote to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.Execute()
	return buf.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "retirement", cmd.Use)
	assert.Contains(t, cmd.Long, "fixed annual withdrawal")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := [][]string{
		{"project"},
		{"value"},
		{"init"},
		{"accounts", "list"},
		{"accounts", "add"},
		{"accounts", "update"},
		{"accounts", "remove"},
		{"assumptions", "set"},
		{"assumptions", "show"},
	}

	for _, path := range commands {
		t.Run(path[len(path)-1], func(t *testing.T) {
			subCmd, _, err := cmd.Find(path)
			require.NoError(t, err)
			require.NotNil(t, subCmd)
			assert.Equal(t, path[len(path)-1], subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	levelFlag := cmd.PersistentFlags().Lookup("log-level")
	require.NotNil(t, levelFlag)
	assert.Equal(t, "", levelFlag.DefValue)
}

func TestProjectCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	projectCmd, _, err := cmd.Find([]string{"project"})
	require.NoError(t, err)

	formatFlag := projectCmd.Flags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "console", formatFlag.DefValue)
	assert.Equal(t, "f", formatFlag.Shorthand)

	for _, name := range []string{"config", "db", "scenario", "output", "workers"} {
		assert.NotNil(t, projectCmd.Flags().Lookup(name), name)
	}
}

func TestAccountsCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	addCmd, _, err := cmd.Find([]string{"accounts", "add"})
	require.NoError(t, err)

	dbFlag := addCmd.InheritedFlags().Lookup("db")
	require.NotNil(t, dbFlag)
	assert.NotEmpty(t, dbFlag.DefValue)
	assert.Equal(t, "0", addCmd.Flags().Lookup("balance").DefValue)
}

func TestInvalidLogEncoding(t *testing.T) {
	t.Setenv("RETIREMENT_LOG_ENCODING", "xml")
	_, err := execute(t, "value", "--years", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid logging configuration")
}
