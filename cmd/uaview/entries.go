package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/joshuapare/uakit/internal/config"
	"github.com/joshuapare/uakit/internal/logger"
	"github.com/joshuapare/uakit/pkg/report"
	"github.com/joshuapare/uakit/pkg/userassist"
)

var (
	entriesFormat    string
	entriesSort      string
	entriesDesc      bool
	entriesHighlight []string
	entriesUTC       bool
	entriesWatch     bool
)

// watchDebounce batches the burst of events a single save produces.
const watchDebounce = 250 * time.Millisecond

func init() {
	cmd := newEntriesCmd()
	cmd.Flags().StringVarP(&entriesFormat, "format", "f", "", "Output format: text, csv, html, json (default from config)")
	cmd.Flags().StringVar(&entriesSort, "sort", "", "Sort by column name")
	cmd.Flags().BoolVar(&entriesDesc, "desc", false, "Sort descending")
	cmd.Flags().StringSliceVar(&entriesHighlight, "highlight", nil, "Highlight names matching a regular expression")
	cmd.Flags().BoolVar(&entriesUTC, "utc", false, "Show the Last UTC column")
	cmd.Flags().BoolVarP(&entriesWatch, "watch", "w", false, "Re-read inputs when they change")
	rootCmd.AddCommand(cmd)
}

func newEntriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entries [file...]",
		Short: "List the UserAssist entries in hives or regedit exports",
		Long: `The entries command decodes every UserAssist entry found in the given
NTUSER.DAT hives or .reg exports and prints them as a table.

Example:
  uaview entries NTUSER.DAT
  uaview entries NTUSER.DAT --sort count --desc
  uaview entries ua.reg --highlight "cmd\.exe" --format csv
  uaview entries alice.dat bob.dat --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := resolveInputs(args)
			if err != nil {
				return err
			}
			if !entriesWatch {
				return runEntries(cmd.Context(), paths, os.Stdout)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return watchEntries(ctx, paths, os.Stdout)
		},
	}
	return cmd
}

func runEntries(ctx context.Context, paths []string, w io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	inputs, err := loadInputs(ctx, paths)
	if err != nil {
		return err
	}

	outFormat := entriesOutputFormat()
	for i, in := range inputs {
		tbl, err := buildTable(in.Store)
		if err != nil {
			return err
		}
		if len(inputs) > 1 && outFormat == config.OutputText {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "== %s (%s, %d entries) ==\n", in.Path, tbl.Format, len(tbl.Rows))
		}
		if err := writeTable(w, tbl, outFormat); err != nil {
			return err
		}
	}
	if outFormat == config.OutputText {
		for _, in := range inputs {
			if in.Store.Len() == 0 {
				printInfo("No UserAssist entries found in %s\n", in.Path)
			}
		}
	}
	return nil
}

func entriesOutputFormat() string {
	switch {
	case jsonOut:
		return config.OutputJSON
	case entriesFormat != "":
		return strings.ToLower(entriesFormat)
	default:
		return cfg.DefaultOutput
	}
}

func buildTable(store *userassist.Store) (*report.Table, error) {
	tbl := report.Build(store.Entries(), store.FormatKind())
	if !entriesUTC && !cfg.ShowUTC {
		tbl.Hide(report.ColLastUTC)
	}
	highlights := append(append([]string(nil), cfg.Highlight...), entriesHighlight...)
	n, err := tbl.Highlight(highlights)
	if err != nil {
		return nil, err
	}
	printVerbose("Highlighted %d of %d entries\n", n, len(tbl.Rows))
	if entriesSort != "" {
		if err := tbl.SortBy(entriesSort, entriesDesc); err != nil {
			return nil, err
		}
	}
	return tbl, nil
}

func writeTable(w io.Writer, tbl *report.Table, outFormat string) error {
	switch outFormat {
	case config.OutputText:
		return tbl.WriteText(w, report.TextOptions{NoColor: noColor})
	case config.OutputCSV:
		return tbl.WriteCSV(w)
	case config.OutputHTML:
		return tbl.WriteHTML(w)
	case config.OutputJSON:
		return tbl.WriteJSON(w)
	default:
		return fmt.Errorf("unknown output format %q", outFormat)
	}
}

// watchEntries prints the entries, then prints them again each time one of
// the inputs changes, until ctx is done.
func watchEntries(ctx context.Context, paths []string, w io.Writer) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer watcher.Close()

	// Watch directories so editors that replace the file are still seen.
	watched := make(map[string]bool)
	targets := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		targets[abs] = true
		dir := filepath.Dir(abs)
		if watched[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		watched[dir] = true
	}

	render := func() {
		if err := runEntries(ctx, paths, w); err != nil {
			printError("%v\n", err)
		}
	}
	render()

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !targets[event.Name] || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			logger.Debug("input changed", "path", event.Name, "op", event.Op.String())
			pending = time.After(watchDebounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "error", err)
		case <-pending:
			pending = nil
			printVerbose("Reloading at %s\n", time.Now().Format(report.TimeLayout))
			render()
		}
	}
}
