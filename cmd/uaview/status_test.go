package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/uakit/internal/testutil"
)

func TestStatusCommand(t *testing.T) {
	const (
		settings = `Software\Microsoft\Windows\CurrentVersion\Explorer\UserAssist\Settings`
		advanced = `Software\Microsoft\Windows\CurrentVersion\Explorer\Advanced`
	)

	tests := []struct {
		name           string
		build          func(b *hiveBuilder)
		json           bool
		wantContain    []string
		wantNotContain []string
	}{
		{
			name:        "recording on",
			build:       func(b *hiveBuilder) {},
			wantContain: []string{"recording: enabled"},
		},
		{
			name:           "vista switch off",
			build:          func(b *hiveBuilder) { b.add(advanced, dword("Start_TrackProgs", 0)) },
			wantContain:    []string{"recording: disabled", "Start_TrackProgs is not 1"},
			wantNotContain: []string{"NoLog"},
		},
		{
			name:        "xp nolog string",
			build:       func(b *hiveBuilder) { b.add(settings, testutil.String("NoLog", "1")) },
			wantContain: []string{"recording: disabled", "NoLog is 1"},
		},
		{
			name:        "unexpected switch value",
			build:       func(b *hiveBuilder) { b.add(advanced, dword("Start_TrackProgs", 2)) },
			wantContain: []string{"recording: disabled", "Start_TrackProgs is not 1"},
		},
		{
			name:        "switch on",
			build:       func(b *hiveBuilder) { b.add(advanced, dword("Start_TrackProgs", 1)) },
			wantContain: []string{"recording: enabled"},
		},
		{
			name:        "json",
			build:       func(b *hiveBuilder) { b.add(advanced, dword("Start_TrackProgs", 0)) },
			json:        true,
			wantContain: []string{`"recording": false`, `"track_progs_off": true`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			jsonOut = tt.json
			b := newHiveBuilder().add(`Software\Microsoft`)
			tt.build(b)
			path := testutil.WriteHive(t, b.root)

			output, err := captureOutput(t, func() error {
				return runStatus([]string{path})
			})
			require.NoError(t, err)
			if tt.json {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}

func TestStatusNotAHive(t *testing.T) {
	resetFlags(t)
	_, err := captureOutput(t, func() error {
		return runStatus([]string{writeExport(t, legacyExport)})
	})
	require.Error(t, err)
}
