// Package ingest reads raw activity-log exports from files or stdin.
package ingest

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentReads bounds parallel file handles.
const maxConcurrentReads = 8

// ReadSources reads every named source and concatenates their contents in
// argument order, separated by newlines. The name "-" reads os.Stdin.
// Files are read concurrently; any failure aborts the whole batch.
func ReadSources(ctx context.Context, names []string) (string, error) {
	if len(names) == 0 {
		return "", nil
	}

	chunks := make([]string, len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentReads)

	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			text, err := readSource(name)
			if err != nil {
				return fmt.Errorf("reading %s: %w", name, err)
			}
			chunks[i] = text
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return "", err
	}

	log.Debug().Int("sources", len(names)).Msg("Read activity log sources")
	return strings.Join(chunks, "\n"), nil
}

func readSource(name string) (string, error) {
	if name == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
