package commands

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nxthat/nanocl/cmd/nanocl/handlers"
)

func TestApply(t *testing.T) {
	cmd := Apply(&handlers.GlobalOptions{})

	require.NotNil(t, cmd)
	assert.Equal(t, "apply", cmd.Use)
	assert.Equal(t, "Apply a namespace document to the daemon", cmd.Short)
	assert.NotNil(t, cmd.RunE, "Apply command should have RunE function")
}

func TestApply_FileFlag(t *testing.T) {
	cmd := Apply(&handlers.GlobalOptions{})

	flag := cmd.Flags().Lookup("file")
	require.NotNil(t, flag, "file flag should exist")
	assert.Equal(t, "f", flag.Shorthand)
	assert.Equal(t, "", flag.DefValue)

	_, required := flag.Annotations[cobra.BashCompOneRequiredFlag]
	assert.True(t, required, "file flag should be required")
}

func TestApply_OptionalFlags(t *testing.T) {
	cmd := Apply(&handlers.GlobalOptions{})

	textfile := cmd.Flags().Lookup("metrics-textfile")
	require.NotNil(t, textfile)
	assert.Equal(t, "", textfile.DefValue)

	printFlag := cmd.Flags().Lookup("print")
	require.NotNil(t, printFlag)
	assert.Equal(t, "false", printFlag.DefValue)
}

func TestApply_MissingFile(t *testing.T) {
	cmd := Root()
	cmd.SetArgs([]string{"apply"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "file" not set`)
}
