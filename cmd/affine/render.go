package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/akeil/affine"
	"github.com/akeil/affine/internal/config"
	"github.com/akeil/affine/internal/fs"
	"github.com/akeil/affine/pkg/render"
)

// series ---------------------------------------------------------------------

func doSeries(ctx context.Context, s config.Settings, in input, outputs []string, state int) error {
	rc, err := setupContext(s)
	if err != nil {
		return err
	}

	states, err := in.compose()
	if err != nil {
		return err
	}

	for _, path := range outputs {
		if _, err := outputKind(path); err != nil {
			return err
		}
	}

	group, ctx := errgroup.WithContext(ctx)
	for _, path := range outputs {
		path := path
		group.Go(func() error {
			return renderSeries(ctx, rc, states, in.specs, state, path)
		})
	}
	return group.Wait()
}

func renderSeries(ctx context.Context, rc *render.Context, states affine.Series, specs []affine.Spec, state int, path string) error {
	kind, err := outputKind(path)
	if err != nil {
		return err
	}

	printProgress("render %v to %q", kind, path)
	err = fs.WriteFile(path, func(f io.Writer) error {
		switch kind {
		case "gif":
			return rc.SeriesGIF(ctx, states, specs, f)
		case "png":
			return rc.SeriesPNG(states, stateIndex(state, states.Len()), f)
		case "pdf":
			return rc.SeriesPDF(states, specs, f)
		}
		return nil
	})
	if err != nil {
		printError("Failed to render %q: %v", path, err)
		return err
	}

	printSuccess("series saved as %q.", path)
	return nil
}

// stateIndex resolves negative indexes relative to the end.
func stateIndex(i, n int) int {
	if i < 0 {
		return n + i
	}
	return i
}

// outputKind selects the renderer from the file extension.
func outputKind(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "gif", "png", "pdf":
		return ext, nil
	default:
		return "", fmt.Errorf("unsupported output %q, use one of .gif, .png, .pdf", path)
	}
}

// catalog --------------------------------------------------------------------

func doCatalog(ctx context.Context, s config.Settings, in input, path string) error {
	rc, err := setupContext(s)
	if err != nil {
		return err
	}

	printProgress("render catalog to %q", path)
	err = fs.WriteFile(path, func(f io.Writer) error {
		return rc.CatalogGIF(ctx, in.matrix, f)
	})
	if err != nil {
		printError("Failed to render catalog: %v", err)
		return err
	}

	printSuccess("catalog saved as %q.", path)
	return nil
}

// common ---------------------------------------------------------------------

func setupContext(s config.Settings) (*render.Context, error) {
	opts, err := s.RenderOptions()
	if err != nil {
		return nil, err
	}
	return render.NewContext(opts)
}
