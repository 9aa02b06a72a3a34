package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/uakit/internal/config"
	"github.com/joshuapare/uakit/internal/regtext"
	"github.com/joshuapare/uakit/pkg/report"
	"github.com/joshuapare/uakit/pkg/userassist"
)

const (
	exportFormatReg = "reg"

	// hkcuPrefix roots exported key paths the way regedit writes them.
	hkcuPrefix = `HKEY_CURRENT_USER\`
)

var (
	exportFormat   string
	exportEncoding string
	exportForce    bool
)

func init() {
	cmd := newExportCmd()
	cmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format: reg, csv, html, json (default from extension)")
	cmd.Flags().StringVar(&exportEncoding, "encoding", regtext.EncodingUTF16LE, "Encoding for .reg output: UTF-16LE or UTF-8")
	cmd.Flags().BoolVar(&exportForce, "force", false, "Overwrite an existing output file")
	rootCmd.AddCommand(cmd)
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <file> <output>",
		Short: "Export UserAssist entries to a file",
		Long: `The export command writes the decoded entries of a hive or regedit export
to a report file, or writes the raw entries back out as a .reg file that
regedit and uaview can both read.

Example:
  uaview export NTUSER.DAT report.csv
  uaview export NTUSER.DAT report.html
  uaview export NTUSER.DAT userassist.reg
  uaview export ua.reg out.txt --format json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context(), args)
		},
	}
	return cmd
}

func runExport(ctx context.Context, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	inPath, outPath := args[0], args[1]

	outFormat, err := exportOutputFormat(outPath)
	if err != nil {
		return err
	}
	if !exportForce {
		if _, err := os.Stat(outPath); err == nil {
			return fmt.Errorf("%s exists (use --force to overwrite)", outPath)
		}
	}

	inputs, err := loadInputs(ctx, []string{inPath})
	if err != nil {
		return err
	}
	store := inputs[0].Store

	var data []byte
	if outFormat == exportFormatReg {
		data, err = exportReg(store, exportEncoding)
	} else {
		data, err = exportReport(store, outFormat)
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	printInfo("Exported %d entries to %s\n", store.Len(), outPath)
	return nil
}

func exportOutputFormat(outPath string) (string, error) {
	f := strings.ToLower(exportFormat)
	if f == "" {
		f = strings.TrimPrefix(strings.ToLower(filepath.Ext(outPath)), ".")
		if f == "htm" {
			f = config.OutputHTML
		}
	}
	switch f {
	case exportFormatReg, config.OutputCSV, config.OutputHTML, config.OutputJSON:
		return f, nil
	case "txt", config.OutputText:
		return config.OutputText, nil
	default:
		return "", fmt.Errorf("cannot infer export format from %q (use --format)", outPath)
	}
}

func exportReport(store *userassist.Store, outFormat string) ([]byte, error) {
	tbl, err := buildTable(store)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if outFormat == config.OutputText {
		err = tbl.WriteText(&buf, report.TextOptions{NoColor: true})
	} else {
		err = writeTable(&buf, tbl, outFormat)
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// exportReg writes the stored names and payloads unchanged, one key block
// per group.
func exportReg(store *userassist.Store, enc string) ([]byte, error) {
	w := regtext.NewWriter()
	var current userassist.Group
	started := false
	for _, key := range store.Keys() {
		e, _ := store.Get(key)
		if !started || key.Group != current {
			w.Key(hkcuPrefix + key.Group.CountPath())
			current, started = key.Group, true
		}
		w.Binary(e.Name, e.Data)
	}
	return w.Bytes(enc, true)
}
