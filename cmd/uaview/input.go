package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/joshuapare/uakit/internal/logger"
	"github.com/joshuapare/uakit/pkg/clsid"
	"github.com/joshuapare/uakit/pkg/explain"
	"github.com/joshuapare/uakit/pkg/userassist"
)

// loaded is the store read from one input file.
type loaded struct {
	Path  string
	Store *userassist.Store
}

// resolveInputs falls back to the configured startup input when no paths
// are given.
func resolveInputs(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if cfg.LoadAtStartup && cfg.StartupInput != "" {
		printVerbose("Using startup input: %s\n", cfg.StartupInput)
		return []string{cfg.StartupInput}, nil
	}
	return nil, errors.New("no input given and no startup_input configured")
}

// loadInputs reads every path concurrently. Results keep argument order.
// An input that fails is reported and skipped; the error is returned only
// when no input could be loaded.
func loadInputs(ctx context.Context, paths []string) ([]loaded, error) {
	stores := make([]*userassist.Store, len(paths))
	errs := make([]error, len(paths))
	var g errgroup.Group
	for i, path := range paths {
		g.Go(func() error {
			printVerbose("Loading: %s\n", path)
			store := userassist.NewStore()
			if err := store.Load(ctx, userassist.FileSource{Path: path}); err != nil {
				errs[i] = fmt.Errorf("failed to load %s: %w", path, err)
				return nil
			}
			stores[i] = store
			return nil
		})
	}
	_ = g.Wait()

	var out []loaded
	for i, path := range paths {
		if errs[i] != nil {
			continue
		}
		out = append(out, loaded{Path: path, Store: stores[i]})
	}
	if len(out) == 0 {
		return nil, errors.Join(errs...)
	}
	for _, err := range errs {
		if err != nil {
			logger.Warn("input skipped", "error", err)
			printError("%v\n", err)
		}
	}
	return out, nil
}

// newClassifier builds a classifier backed by the configured classes hive
// and, on Windows, the live registry. The returned closer releases the hive.
func newClassifier(classesHive string) (*explain.Classifier, io.Closer, error) {
	chain := clsid.Chain{clsid.Registry{}}
	var closer io.Closer = nopCloser{}
	if classesHive != "" {
		h, err := clsid.OpenHive(classesHive)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open classes hive: %w", err)
		}
		logger.Debug("classes hive opened", "path", classesHive)
		chain = append(clsid.Chain{h}, chain...)
		closer = h
	}
	return explain.New(chain), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
