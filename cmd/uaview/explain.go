package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/joshuapare/uakit/pkg/userassist"
)

var (
	explainCopy    bool
	explainClasses string
)

func init() {
	cmd := newExplainCmd()
	cmd.Flags().BoolVar(&explainCopy, "copy", false, "Copy the explanations to the clipboard")
	cmd.Flags().StringVar(&explainClasses, "classes", "", "UsrClass.dat or SOFTWARE hive used to name class identifiers")
	rootCmd.AddCommand(cmd)
}

func newExplainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explain <file> [index-or-name]",
		Short: "Explain what UserAssist entries record",
		Long: `The explain command describes each matching entry in plain language.
An integer selects entries by index; any other text selects entries whose
decoded name contains it, ignoring case.

Example:
  uaview explain NTUSER.DAT
  uaview explain NTUSER.DAT 12
  uaview explain NTUSER.DAT notepad --copy
  uaview explain NTUSER.DAT --classes UsrClass.dat`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplain(cmd.Context(), args, os.Stdout)
		},
	}
	return cmd
}

type explained struct {
	Key         string `json:"key"`
	Index       int    `json:"index"`
	Name        string `json:"name"`
	Explanation string `json:"explanation"`
}

func runExplain(ctx context.Context, args []string, w io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	inputs, err := loadInputs(ctx, args[:1])
	if err != nil {
		return err
	}
	selector := ""
	if len(args) > 1 {
		selector = args[1]
	}

	classes := explainClasses
	if classes == "" {
		classes = cfg.ClassesHive
	}
	classifier, closer, err := newClassifier(classes)
	if err != nil {
		return err
	}
	defer closer.Close()

	var results []explained
	for _, e := range selectEntries(inputs[0].Store.Entries(), selector) {
		results = append(results, explained{
			Key:         e.Key.Group.String(),
			Index:       e.Key.Index,
			Name:        e.ReadableName(),
			Explanation: e.Explain(classifier),
		})
	}
	if len(results) == 0 {
		if selector != "" {
			return fmt.Errorf("no entry matches %q", selector)
		}
		return errors.New("no UserAssist entries found")
	}

	if explainCopy {
		var texts []string
		for _, r := range results {
			texts = append(texts, r.Name+": "+r.Explanation)
		}
		if err := clipboard.WriteAll(strings.Join(texts, "\n")); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		printVerbose("Copied %d explanation(s) to the clipboard\n", len(results))
	}

	if jsonOut {
		return printJSON(results)
	}
	for _, r := range results {
		fmt.Fprintf(w, "%s #%d %s\n  %s\n", r.Key, r.Index, r.Name, strings.ReplaceAll(r.Explanation, "\n", "\n  "))
	}
	return nil
}

// selectEntries filters by index when selector is an integer and by a
// case-insensitive name substring otherwise.
func selectEntries(entries []*userassist.Entry, selector string) []*userassist.Entry {
	if selector == "" {
		return entries
	}
	var out []*userassist.Entry
	if n, err := strconv.Atoi(selector); err == nil {
		for _, e := range entries {
			if e.Key.Index == n {
				out = append(out, e)
			}
		}
		return out
	}
	needle := strings.ToUpper(selector)
	for _, e := range entries {
		if strings.Contains(strings.ToUpper(e.ReadableName()), needle) {
			out = append(out, e)
		}
	}
	return out
}
