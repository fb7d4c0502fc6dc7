// Package fileproc loads source files from disk concurrently. Reading is
// pure I/O and parallelizes well; analysis of the resulting batch stays
// sequential inside the engine.
package fileproc

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/sourcegraph/conc/pool"

	"github.com/scrylabs/scry/pkg/models"
)

// DefaultWorkerMultiplier is applied to NumCPU for the worker count.
const DefaultWorkerMultiplier = 2

// ProgressFunc is called after each file is loaded.
type ProgressFunc func()

// LoadError reports a file that could not be read.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// LoadFiles reads the given paths into SourceFiles, preserving input order.
// The first read failure cancels the remaining loads and is returned.
func LoadFiles(ctx context.Context, paths []string, onProgress ProgressFunc) ([]models.SourceFile, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	files := make([]models.SourceFile, len(paths))
	var mu sync.Mutex
	var firstErr error

	p := pool.New().
		WithMaxGoroutines(runtime.NumCPU() * DefaultWorkerMultiplier).
		WithContext(ctx)

	for i, path := range paths {
		i, path := i, path
		p.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				loadErr := &LoadError{Path: path, Err: err}
				mu.Lock()
				if firstErr == nil {
					firstErr = loadErr
				}
				mu.Unlock()
				return loadErr
			}

			files[i] = models.SourceFile{
				Name:    path,
				Content: string(data),
			}
			if onProgress != nil {
				onProgress()
			}
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		if firstErr != nil {
			return nil, firstErr
		}
		return nil, err
	}

	return files, nil
}
