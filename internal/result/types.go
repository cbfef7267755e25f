package result

// DirResult is the outcome of converting one run directory.
type DirResult struct {
	Name    string `json:"name"`
	Lines   int    `json:"lines"`
	Points  int    `json:"points"`
	Skipped int    `json:"skipped"`
	Err     error  `json:"-"`
}

// Status is "ok" or the error text.
func (d DirResult) Status() string {
	if d.Err != nil {
		return d.Err.Error()
	}
	return "ok"
}

// Summary collects the per-directory results of one conversion run, in the
// order the directories were processed.
type Summary struct {
	BaseDir string      `json:"base_dir"`
	Dirs    []DirResult `json:"dirs"`
}

func (s *Summary) Add(d DirResult) {
	s.Dirs = append(s.Dirs, d)
}

// Totals sums lines and points over all successfully converted directories.
func (s *Summary) Totals() (lines, pts, failed int) {
	for _, d := range s.Dirs {
		if d.Err != nil {
			failed++
			continue
		}
		lines += d.Lines
		pts += d.Points
	}
	return
}
