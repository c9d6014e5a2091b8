package local

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"lintbridge/internal/diag"
)

// Check runs every loaded rule over the source files under args,
// analyzing files in parallel. Delivery to the sink happens after the
// pool drains, in deterministic file order, so the sink never sees
// concurrent calls from this engine.
func (e *Engine) Check(ctx context.Context, args []string) error {
	files, err := e.gatherFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return nil
	}

	jobs := e.jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([][]diag.Diagnostic, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			src, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			results[i] = e.lintFile(path, src)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if e.sink != nil {
		for _, rs := range results {
			for _, d := range rs {
				e.sink.Record(d)
			}
		}
	}
	return nil
}

func (e *Engine) lintFile(path string, src []byte) []diag.Diagnostic {
	var out []diag.Diagnostic
	for _, r := range e.rules {
		r.Lint(path, src, func(d diag.Diagnostic) {
			if !e.Enabled(d.Code) {
				return
			}
			if d.Tool == "" {
				d.Tool = ToolName
			}
			out = append(out, d)
		})
	}
	return out
}

// gatherFiles expands each argument: directories become their contained
// source files, files are taken as-is. The combined list is sorted and
// deduplicated.
func (e *Engine) gatherFiles(args []string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string

	addFile := func(path string) {
		if _, dup := seen[path]; dup {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			addFile(arg)
			continue
		}
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != arg && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if strings.HasSuffix(d.Name(), e.ext) {
				addFile(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	return files, nil
}
