package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/uakit/pkg/userassist"
)

func init() {
	rootCmd.AddCommand(newStatusCmd())
}

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <hive>",
		Short: "Show whether UserAssist recording is enabled in a user hive",
		Long: `The status command reads the settings that turn UserAssist recording off:
UserAssist\Settings\NoLog on Windows XP and 2003, and
Explorer\Advanced\Start_TrackProgs on Windows Vista and later.

Example:
  uaview status NTUSER.DAT
  uaview status NTUSER.DAT --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(args)
		},
	}
	return cmd
}

func runStatus(args []string) error {
	printVerbose("Opening hive: %s\n", args[0])
	t, err := userassist.HiveSource{Path: args[0]}.Tracking()
	if err != nil {
		return fmt.Errorf("failed to read settings: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"recording":       !t.Disabled(),
			"no_log":          t.NoLog,
			"track_progs_off": t.TrackProgsOff,
		})
	}

	if !t.Disabled() {
		fmt.Println("UserAssist recording: enabled")
		return nil
	}
	fmt.Println("UserAssist recording: disabled")
	if t.NoLog {
		fmt.Println(`  UserAssist\Settings\NoLog is 1`)
	}
	if t.TrackProgsOff {
		fmt.Println(`  Explorer\Advanced\Start_TrackProgs is not 1`)
	}
	return nil
}
