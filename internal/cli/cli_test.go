package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildParserRegistersCommands(t *testing.T) {
	parser, _, cmds := buildParser("test")

	require.NotNil(t, cmds.Report)
	require.NotNil(t, cmds.Insights)
	require.NotNil(t, cmds.Validate)

	names := make([]string, 0, 3)
	for _, c := range parser.Commands() {
		names = append(names, c.Name)
	}
	assert.ElementsMatch(t, []string{"report", "insights", "validate"}, names)
}

func TestRunWithArgsVersion(t *testing.T) {
	var err error
	output := captureOutput(t, func() {
		err = RunWithArgs("1.2.3", []string{"--version"})
	})
	require.NoError(t, err)
	assert.Contains(t, output, "cbctl 1.2.3")
}

func TestRunWithArgsUnknownCommand(t *testing.T) {
	err := RunWithArgs("test", []string{"bogus", "--file", "x.csv"})
	assert.Error(t, err)
}

func TestRunWithArgsReport(t *testing.T) {
	path := fixtureExport(t)

	var err error
	output := captureOutput(t, func() {
		err = RunWithArgs("test", []string{"report", "--file", path, "--from", "2024-06-01", "--to", "2024-06-30"})
	})
	require.NoError(t, err)
	assert.Contains(t, output, "Unique Users")
}
