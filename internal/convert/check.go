package convert

import (
	"bytes"
	"errors"
	"io/fs"
	"os"

	"github.com/signalnine/benchpoints/internal/result"
)

type CheckStatus string

const (
	StatusUpToDate      CheckStatus = "up-to-date"
	StatusStale         CheckStatus = "stale"
	StatusMissingOutput CheckStatus = "missing-output"
	StatusUnreadable    CheckStatus = "unreadable"
)

type CheckResult struct {
	Name   string
	Status CheckStatus
	Err    error
}

// Check compares each run directory's points file with what converting its
// input would produce now. Nothing is written.
func (c *Converter) Check(baseDir string) ([]CheckResult, error) {
	names, err := result.ListDirs(baseDir, c.opts.Sorted)
	if err != nil {
		return nil, &FileAccessError{Dir: baseDir, Err: err}
	}
	results := make([]CheckResult, 0, len(names))
	for _, name := range names {
		results = append(results, c.checkDir(baseDir, name))
	}
	return results, nil
}

func (c *Converter) checkDir(baseDir, name string) CheckResult {
	res := CheckResult{Name: name}

	in, err := os.Open(result.InputPath(baseDir, name))
	if err != nil {
		res.Status = StatusUnreadable
		res.Err = &FileAccessError{Dir: name, Err: err}
		return res
	}
	defer in.Close()

	var want bytes.Buffer
	if _, _, err := ConvertStream(in, &want); err != nil {
		res.Status = StatusUnreadable
		res.Err = &FileAccessError{Dir: name, Err: err}
		return res
	}

	got, err := os.ReadFile(result.OutputPath(baseDir, name))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		res.Status = StatusMissingOutput
	case err != nil:
		res.Status = StatusUnreadable
		res.Err = &FileAccessError{Dir: name, Err: err}
	case bytes.Equal(got, want.Bytes()):
		res.Status = StatusUpToDate
	default:
		res.Status = StatusStale
	}
	return res
}
