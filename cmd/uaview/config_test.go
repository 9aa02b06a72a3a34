package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/uakit/internal/config"
)

func TestConfigSetAndShow(t *testing.T) {
	resetFlags(t)
	quiet = true

	require.NoError(t, runConfigSet([]string{"default_output", "CSV"}))
	require.NoError(t, runConfigSet([]string{"highlight", `cmd\.exe, powershell`}))

	saved, err := config.Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, config.OutputCSV, saved.DefaultOutput)
	assert.Equal(t, []string{`cmd\.exe`, "powershell"}, saved.Highlight)

	output, err := captureOutput(t, runConfigShow)
	require.NoError(t, err)
	assertContains(t, output, []string{"default_output: csv", "powershell"})

	assert.Error(t, runConfigSet([]string{"colour", "red"}))
	assert.Error(t, runConfigSet([]string{"default_output", "pdf"}))
}

func TestSetupLoadsConfig(t *testing.T) {
	resetFlags(t)
	c := config.DefaultConfig()
	c.ShowUTC = true
	require.NoError(t, c.Save(configPath))

	require.NoError(t, setup(rootCmd, nil))
	assert.True(t, cfg.ShowUTC)
}
