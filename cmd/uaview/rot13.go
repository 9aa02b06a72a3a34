package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/uakit/pkg/userassist"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "rot13 <text>...",
		Short: "Encode or decode UserAssist value names",
		Long: `The rot13 command applies the UserAssist name rotation to each argument.
Letters come back upper-cased, so the same command encodes and decodes.

Example:
  uaview rot13 HRZR_EHACNGU
  uaview rot13 "UEME_RUNPATH:C:\Windows\notepad.exe"`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			for _, a := range args {
				fmt.Println(userassist.ROT13(a))
			}
		},
	})
}
