// Package convert turns the raw "000" logs of benchmark runs into point files.
package convert

import (
	"fmt"
	"io"
	"os"

	"github.com/signalnine/benchpoints/internal/points"
	"github.com/signalnine/benchpoints/internal/result"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type Options struct {
	// Sorted processes run directories in lexical order instead of
	// filesystem order.
	Sorted bool
	// KeepGoing records a failing directory and moves on to the next one.
	// Without it the first failure aborts the run.
	KeepGoing bool
}

type Converter struct {
	opts   Options
	logger *zap.Logger
}

func New(logger *zap.Logger, opts Options) *Converter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Converter{opts: opts, logger: logger}
}

// FileAccessError reports a run directory whose input could not be read or
// whose output could not be written.
type FileAccessError struct {
	Dir string
	Err error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("converting %s: %v", e.Dir, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// Convert writes a point file for every entry of baseDir. The returned
// summary covers every directory attempted, including the failing one when
// the run aborts.
func (c *Converter) Convert(baseDir string) (*result.Summary, error) {
	summary := &result.Summary{BaseDir: baseDir}

	names, err := result.ListDirs(baseDir, c.opts.Sorted)
	if err != nil {
		return summary, &FileAccessError{Dir: baseDir, Err: err}
	}
	c.logger.Debug("discovered run directories",
		zap.String("base_dir", baseDir),
		zap.Int("count", len(names)),
		zap.Bool("sorted", c.opts.Sorted),
	)

	var errs error
	for _, name := range names {
		res, err := c.ConvertDir(baseDir, name)
		summary.Add(res)
		if err == nil {
			continue
		}
		if !c.opts.KeepGoing {
			return summary, err
		}
		c.logger.Warn("skipping run directory", zap.String("dir", name), zap.Error(err))
		errs = multierr.Append(errs, err)
	}
	return summary, errs
}

// ConvertDir converts baseDir/name/000 into baseDir/name/000_points. Both
// files are closed before it returns, whether or not it succeeds.
func (c *Converter) ConvertDir(baseDir, name string) (result.DirResult, error) {
	res := result.DirResult{Name: name}
	fail := func(err error) (result.DirResult, error) {
		res.Err = &FileAccessError{Dir: name, Err: err}
		return res, res.Err
	}

	inPath := result.InputPath(baseDir, name)
	outPath := result.OutputPath(baseDir, name)

	in, err := os.Open(inPath)
	if err != nil {
		return fail(err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return fail(err)
	}

	lines, pts, err := ConvertStream(in, out)
	if err != nil {
		out.Close()
		return fail(err)
	}
	if err := out.Close(); err != nil {
		return fail(fmt.Errorf("closing %s: %w", outPath, err))
	}

	res.Lines = lines
	res.Points = pts
	res.Skipped = lines - pts
	c.logger.Info("converted",
		zap.String("dir", name),
		zap.Int("lines", res.Lines),
		zap.Int("points", res.Points),
		zap.Int("skipped", res.Skipped),
	)
	return res, nil
}

// ConvertStream reads log lines from r and writes one "(index,value)" line to
// w for every line ending in an integer. Lines that do not parse are dropped.
func ConvertStream(r io.Reader, w io.Writer) (lines, pts int, err error) {
	pw := points.NewWriter(w)
	lines, err = points.Extract(r, pw.Write)
	if err != nil {
		return lines, pw.Count(), err
	}
	if err := pw.Flush(); err != nil {
		return lines, pw.Count(), fmt.Errorf("writing points: %w", err)
	}
	return lines, pw.Count(), nil
}
