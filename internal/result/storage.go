package result

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

const (
	// InputName is the raw log each benchmark run leaves in its directory.
	InputName = "000"
	// OutputName is the point file written next to it.
	OutputName = "000_points"
	// DefaultBaseDir is where benchmark runs are collected when nothing else is configured.
	DefaultBaseDir = "./space"
)

// ListDirs returns the names of all entries in baseDir. Entries are returned
// in the order the filesystem reports them unless sorted is set. Nothing is
// filtered: a stray file in baseDir is reported like any run directory.
func ListDirs(baseDir string, sorted bool) ([]string, error) {
	f, err := os.Open(baseDir)
	if err != nil {
		return nil, fmt.Errorf("opening results dir: %w", err)
	}
	defer f.Close()

	// Readdirnames keeps directory order; os.ReadDir would sort.
	names, err := f.Readdirnames(-1)
	if err != nil {
		return nil, fmt.Errorf("listing results dir: %w", err)
	}
	if sorted {
		sort.Strings(names)
	}
	return names, nil
}

func InputPath(baseDir, name string) string {
	return filepath.Join(baseDir, name, InputName)
}

func OutputPath(baseDir, name string) string {
	return filepath.Join(baseDir, name, OutputName)
}
