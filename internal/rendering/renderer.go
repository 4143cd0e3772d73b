package rendering

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// yamlExt is the extension of CV source files
const yamlExt = ".yaml"

// Reporter receives progress events for user-facing output
type Reporter interface {
	RenderStarted(file string)
	RenderSucceeded(file string)
	RenderFailed(file string, err error)
	BatchStarted(total int)
	BatchFinished(result *BatchResult)
}

// Options configures a Renderer
type Options struct {
	Dir      string
	Command  string
	Executor Executor
	Reporter Reporter
	Logger   *slog.Logger
}

// Renderer renders CV files found in a single directory
type Renderer struct {
	dir      string
	command  string
	exec     Executor
	reporter Reporter
	logger   *slog.Logger
}

// BatchResult summarizes a RenderAll run
type BatchResult struct {
	RunID     string
	Total     int
	Succeeded []string
	Failed    []string
}

// OK reports whether every file rendered
func (r *BatchResult) OK() bool {
	return len(r.Failed) == 0
}

// Err returns an error describing the failed files, or nil
func (r *BatchResult) Err() error {
	if r.OK() {
		return nil
	}
	return fmt.Errorf("%d of %d CVs failed to render: %s", len(r.Failed), r.Total, strings.Join(r.Failed, ", "))
}

// New creates a Renderer. Missing options fall back to os/exec, a silent
// reporter and a discarding logger.
func New(opts Options) *Renderer {
	r := &Renderer{
		dir:      opts.Dir,
		command:  opts.Command,
		exec:     opts.Executor,
		reporter: opts.Reporter,
		logger:   opts.Logger,
	}
	if r.command == "" {
		r.command = DefaultCommand
	}
	if r.exec == nil {
		r.exec = execRunner{}
	}
	if r.reporter == nil {
		r.reporter = nopReporter{}
	}
	if r.logger == nil {
		r.logger = slog.New(slog.DiscardHandler)
	}
	return r
}

// Dir returns the CV directory
func (r *Renderer) Dir() string {
	return r.dir
}

// NormalizeName appends the .yaml extension when it is missing
func NormalizeName(name string) string {
	if strings.HasSuffix(name, yamlExt) {
		return name
	}
	return name + yamlExt
}

// Resolve normalizes name and checks that the file exists in the CV directory
func (r *Renderer) Resolve(name string) (string, error) {
	file := NormalizeName(name)
	info, err := os.Stat(filepath.Join(r.dir, file))
	if err != nil || info.IsDir() {
		return "", &FileNotFoundError{Name: file, Dir: r.dir}
	}
	return file, nil
}

// List returns the YAML files in the CV directory, sorted by name
func (r *Renderer) List() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(r.dir, "*"+yamlExt))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.dir, err)
	}

	files := make([]string, 0, len(matches))
	for _, m := range matches {
		if info, err := os.Stat(m); err == nil && !info.IsDir() {
			files = append(files, filepath.Base(m))
		}
	}
	sort.Strings(files)
	return files, nil
}

// RenderFile renders one CV. The file is checked before anything is run, and
// the renderer runs from inside the CV directory.
func (r *Renderer) RenderFile(ctx context.Context, name string) error {
	file, err := r.Resolve(name)
	if err != nil {
		return err
	}

	r.reporter.RenderStarted(file)
	err = r.render(ctx, file)
	if err != nil {
		r.reporter.RenderFailed(file, err)
		return err
	}
	r.reporter.RenderSucceeded(file)
	return nil
}

func (r *Renderer) render(ctx context.Context, file string) error {
	start := time.Now()
	var res Result

	err := WithDir(r.dir, func() error {
		var runErr error
		res, runErr = r.exec.Run(ctx, r.command, "render", file)
		return runErr
	})

	logger := r.logger.With("file", file, "command", r.command)
	if err != nil {
		logger.Debug("renderer did not run", "error", err)
		return &RenderError{File: file, ExitCode: -1, Stdout: res.Stdout, Stderr: res.Stderr, Cause: err}
	}

	logger.Debug("renderer finished", "exit_code", res.ExitCode, "duration", time.Since(start))
	if res.ExitCode != 0 {
		return &RenderError{File: file, ExitCode: res.ExitCode, Stdout: res.Stdout, Stderr: res.Stderr}
	}
	return nil
}

// RenderAll renders every YAML file in the CV directory, one after another.
// A failed file does not stop the batch; the result lists every failure.
func (r *Renderer) RenderAll(ctx context.Context) (*BatchResult, error) {
	files, err := r.List()
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s directory", ErrNoFiles, r.dir)
	}

	result := &BatchResult{RunID: uuid.NewString(), Total: len(files)}
	logger := r.logger.With("run_id", result.RunID)
	logger.Debug("batch started", "dir", r.dir, "files", len(files))

	batch := *r
	batch.logger = logger

	r.reporter.BatchStarted(len(files))
	for _, file := range files {
		if ctxErr := ctx.Err(); ctxErr != nil {
			logger.Debug("batch interrupted", "rendered", len(result.Succeeded)+len(result.Failed))
			return result, fmt.Errorf("batch interrupted: %w", ctxErr)
		}

		if err := batch.RenderFile(ctx, file); err != nil {
			result.Failed = append(result.Failed, file)
			continue
		}
		result.Succeeded = append(result.Succeeded, file)
	}

	r.reporter.BatchFinished(result)
	logger.Debug("batch finished", "succeeded", len(result.Succeeded), "failed", len(result.Failed))
	return result, nil
}

// nopReporter discards progress events
type nopReporter struct{}

func (nopReporter) RenderStarted(string)       {}
func (nopReporter) RenderSucceeded(string)     {}
func (nopReporter) RenderFailed(string, error) {}
func (nopReporter) BatchStarted(int)           {}
func (nopReporter) BatchFinished(*BatchResult) {}
